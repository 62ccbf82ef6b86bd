/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Output is the document printed by the commands.
type Output struct {
	Analysis    interface{}            `json:"analysis"`
	Similarity  map[string]interface{} `json:"similarity,omitempty"`
	Mappings    interface{}            `json:"mappings,omitempty"`
	Version     string                 `json:"version"`
	Fingerprint string                 `json:"fingerprint"`
}

// WriteJSON writes v to w, indented when pretty is set, and returns the
// human readable size written. Char filter mappings contain "=>", which is
// kept as is rather than HTML escaped.
func WriteJSON(w io.Writer, v interface{}, pretty bool) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return "", Wrapf(err, "while encoding output")
	}
	n, err := w.Write(buf.Bytes())
	if err != nil {
		return "", Wrapf(err, "while writing output")
	}
	return humanize.IBytes(uint64(n)), nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// compressedFile closes the compressor before the file under it.
type compressedFile struct {
	io.WriteCloser
	f *os.File
}

func (c *compressedFile) Close() error {
	if err := c.WriteCloser.Close(); err != nil {
		_ = c.f.Close()
		return err
	}
	return c.f.Close()
}

// CreateOutput opens where a command writes its settings: w when path is
// empty or "-", else the file at path, compressed when it ends in ".gz" or
// ".zst".
func CreateOutput(path string, w io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{w}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, Wrapf(err, "while creating %s", path)
	}
	switch {
	case strings.HasSuffix(path, ".gz"):
		return &compressedFile{WriteCloser: gzip.NewWriter(f), f: f}, nil
	case strings.HasSuffix(path, ".zst"):
		enc, err := zstd.NewWriter(f)
		if err != nil {
			_ = f.Close()
			return nil, Wrapf(err, "while creating %s", path)
		}
		return &compressedFile{WriteCloser: enc, f: f}, nil
	}
	return f, nil
}
