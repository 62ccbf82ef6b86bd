/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package analysis

import (
	"encoding/json"

	farm "github.com/dgryski/go-farm"
)

// Canonical serializes a definition with every nested map key-sorted while
// lists keep their order. Two definitions are structurally identical iff
// their canonical forms are equal.
func Canonical(d *Definition) ([]byte, error) {
	return json.Marshal(plain(d))
}

// plain turns ordered maps into regular maps; encoding/json sorts map keys.
func plain(v any) any {
	switch val := v.(type) {
	case *Definition:
		if val == nil || val.fields == nil {
			return map[string]any{}
		}
		out := make(map[string]any, val.Len())
		for pair := val.fields.Oldest(); pair != nil; pair = pair.Next() {
			out[pair.Key] = plain(pair.Value)
		}
		return out
	case *Section:
		out := make(map[string]any, val.Len())
		val.Each(func(name string, def *Definition) {
			out[name] = plain(def)
		})
		return out
	case []any:
		out := make([]any, len(val))
		for i := range val {
			out[i] = plain(val[i])
		}
		return out
	case []string:
		out := make([]any, len(val))
		for i := range val {
			out[i] = val[i]
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = plain(item)
		}
		return out
	default:
		return v
	}
}

// Fingerprint hashes the canonical form of the whole tree. It changes
// whenever the generated settings change, whatever the insertion order.
func Fingerprint(t *Tree) (uint64, error) {
	data, err := json.Marshal(map[string]any{
		KindAnalyzer.String():   plain(t.Section(KindAnalyzer)),
		KindFilter.String():     plain(t.Section(KindFilter)),
		KindCharFilter.String(): plain(t.Section(KindCharFilter)),
		KindTokenizer.String():  plain(t.Section(KindTokenizer)),
	})
	if err != nil {
		return 0, err
	}
	return farm.Fingerprint64(data), nil
}
