/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package filter

import (
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hypermodeinc/analysiscfg/analysis"
	"github.com/hypermodeinc/analysiscfg/analysiscfg/cmd/build"
	"github.com/hypermodeinc/analysiscfg/mapping"
	"github.com/hypermodeinc/analysiscfg/optimize"
	"github.com/hypermodeinc/analysiscfg/x"
)

// Filter is the sub-command invoked when running "analysiscfg filter".
var Filter x.SubCommand

func init() {
	Filter.Cmd = &cobra.Command{
		Use:   "filter",
		Short: "Drop the analysis components a mapping does not use",
		Long: `
Read analysis settings (JSON) from --analysis and mappings (JSON or YAML)
from --mappings, then print both with every analyzer, filter, char filter
and tokenizer no field can reach removed. With --dedup identical components
are merged first and the mappings are rewritten to the surviving analyzer names.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout())
		},
	}
	Filter.EnvPrefix = "ANALYSISCFG"

	flag := Filter.Cmd.Flags()
	x.FillCommonFlags(flag)
	flag.StringP("analysis", "a", "", "File holding the analysis settings.")
	flag.StringP("mappings", "m", "", "File holding the mappings. Defaults to the page mapping.")
	flag.Bool("dedup", true, "Merge identical components before filtering.")
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	return data, errors.Wrapf(err, "while reading %s", path)
}

// Load reads the analysis settings at analysisPath and the mappings at
// mappingsPath. The page mapping is used when mappingsPath is empty.
func Load(analysisPath, mappingsPath string) (*analysis.Tree, mapping.Mappings, error) {
	if analysisPath == "" {
		return nil, nil, errors.New("--analysis is required")
	}
	data, err := readFile(analysisPath)
	if err != nil {
		return nil, nil, err
	}
	tree, err := analysis.Parse(data)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "while parsing %s", analysisPath)
	}

	if mappingsPath == "" {
		glog.V(1).Infof("No mappings given, filtering against the page mapping")
		return tree, mapping.BuildPage(mapping.PageOptions{}), nil
	}
	if data, err = readFile(mappingsPath); err != nil {
		return nil, nil, err
	}
	m, err := mapping.Parse(data)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "while parsing %s", mappingsPath)
	}
	return tree, m, nil
}

func run(w io.Writer) error {
	in, err := build.ReadInputs(&Filter)
	if err != nil {
		return err
	}
	defer in.Report.Sync()

	tree, m, err := Load(Filter.GetStringP("analysis", "a", ""), Filter.GetStringP("mappings", "m", ""))
	if err != nil {
		return err
	}
	before := tree.Analyzers.Len()
	if tree, m, err = optimize.FilterAnalysis(tree, m, Filter.GetBoolP("dedup", "", true)); err != nil {
		return err
	}
	glog.V(1).Infof("Kept %d of %d analyzers", tree.Analyzers.Len(), before)

	out := x.Output{Analysis: tree, Mappings: m}
	if out.Fingerprint, err = build.Fingerprint(tree); err != nil {
		return err
	}
	return build.Write(w, in, "filter", tree, out)
}
