/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package mapping walks index mappings: index type name to a field tree whose
// fields may reference analyzers and nest through "properties" or "fields".
package mapping

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	KeyProperties = "properties"
	KeyFields     = "fields"
)

// AnalyzerKeys are the field keys holding an analyzer name.
var AnalyzerKeys = []string{"analyzer", "search_analyzer", "search_quote_analyzer"}

// ErrMalformed is returned, wrapped with the offending path, when a mapping
// does not have the expected shape.
var ErrMalformed = errors.New("malformed mapping")

// Mappings is an index type name to type mapping tree.
type Mappings map[string]any

// Field is a single field definition inside a mapping.
type Field map[string]any

// Parse decodes mappings from JSON or YAML.
func Parse(data []byte) (Mappings, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "while decoding mappings")
	}
	out := make(Mappings, len(raw))
	for k, v := range raw {
		out[k] = normalize(v)
	}
	return out, nil
}

// normalize turns the map[any]any yaml produces for non-string keys into
// map[string]any.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = normalize(item)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		for i := range val {
			val[i] = normalize(val[i])
		}
		return val
	}
	return v
}

// Clone returns a deep copy.
func (m Mappings) Clone() Mappings {
	if m == nil {
		return nil
	}
	out := make(Mappings, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case Field:
		return Field(cloneValue(map[string]any(val)).(map[string]any))
	case []any:
		out := make([]any, len(val))
		for i := range val {
			out[i] = cloneValue(val[i])
		}
		return out
	case []string:
		return append([]string(nil), val...)
	}
	return v
}

// WalkFunc is called for every field with its dotted path. The field may be
// modified in place.
type WalkFunc func(path string, field Field) error

// Walk visits every field of every type, depth first, types in name order.
// A type without properties, or a "properties" or "fields" value that is not
// an object, fails with ErrMalformed.
func (m Mappings) Walk(fn WalkFunc) error {
	types := make([]string, 0, len(m))
	for name := range m {
		types = append(types, name)
	}
	sort.Strings(types)

	for _, name := range types {
		def, ok := asObject(m[name])
		if !ok {
			return errors.Wrapf(ErrMalformed, "type %q is not an object", name)
		}
		props, ok := def[KeyProperties]
		if !ok {
			return errors.Wrapf(ErrMalformed, "type %q has no %s", name, KeyProperties)
		}
		if err := walkChildren(name+"."+KeyProperties, props, fn); err != nil {
			return err
		}
	}
	return nil
}

func walkChildren(path string, children any, fn WalkFunc) error {
	fields, ok := asObject(children)
	if !ok {
		return errors.Wrapf(ErrMalformed, "%s is not an object", path)
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fieldPath := path + "." + name
		field, ok := asObject(fields[name])
		if !ok {
			return errors.Wrapf(ErrMalformed, "field %s is not an object", fieldPath)
		}
		if err := fn(fieldPath, Field(field)); err != nil {
			return err
		}
		for _, key := range []string{KeyProperties, KeyFields} {
			nested, ok := field[key]
			if !ok {
				continue
			}
			if err := walkChildren(fieldPath+"."+key, nested, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// asObject accepts an empty list as an empty object, since serializers of
// loosely typed languages emit "[]" for empty maps.
func asObject(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case map[string]any:
		return val, true
	case Field:
		return map[string]any(val), true
	case []any:
		if len(val) == 0 {
			return map[string]any{}, true
		}
	}
	return nil, false
}

// Analyzers returns the analyzer names referenced directly by the field,
// keyed by the field key holding them.
func (f Field) Analyzers() map[string]string {
	var out map[string]string
	for _, key := range AnalyzerKeys {
		name, ok := f[key].(string)
		if !ok {
			continue
		}
		if out == nil {
			out = make(map[string]string, len(AnalyzerKeys))
		}
		out[key] = name
	}
	return out
}

// RenameAnalyzers rewrites every analyzer reference through rename. Names
// rename does not know are kept.
func (f Field) RenameAnalyzers(rename func(string) (string, bool)) int {
	var n int
	for key, name := range f.Analyzers() {
		if to, ok := rename(name); ok && to != name {
			f[key] = to
			n++
		}
	}
	return n
}
