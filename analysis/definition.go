/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package analysis

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Keys with a meaning of their own inside an analyzer definition.
const (
	KeyType       = "type"
	KeyTokenizer  = "tokenizer"
	KeyFilter     = "filter"
	KeyCharFilter = "char_filter"
)

// TypeCustom is the analyzer type of hand-assembled analysis chains. Only
// custom analyzers are rewritten by the builders; built-in language
// analyzers are opaque to us.
const TypeCustom = "custom"

// Definition is a single analyzer, token filter, char filter or tokenizer.
// Keys keep their insertion order so that the generated settings are stable
// from one run to the next.
type Definition struct {
	fields *orderedmap.OrderedMap[string, any]
}

// NewDefinition returns a definition made of the given key/value pairs.
// An odd trailing key is ignored.
func NewDefinition(kv ...any) *Definition {
	d := &Definition{fields: orderedmap.New[string, any]()}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		d.Set(key, kv[i+1])
	}
	return d
}

func (d *Definition) init() {
	if d.fields == nil {
		d.fields = orderedmap.New[string, any]()
	}
}

// Get returns the raw value stored under key.
func (d *Definition) Get(key string) (any, bool) {
	if d == nil || d.fields == nil {
		return nil, false
	}
	return d.fields.Get(key)
}

// Has tells whether key is set.
func (d *Definition) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Set stores value under key. An existing key keeps its position.
func (d *Definition) Set(key string, value any) *Definition {
	d.init()
	d.fields.Set(key, value)
	return d
}

// Delete removes key.
func (d *Definition) Delete(key string) {
	if d == nil || d.fields == nil {
		return
	}
	d.fields.Delete(key)
}

// Len returns the number of keys.
func (d *Definition) Len() int {
	if d == nil || d.fields == nil {
		return 0
	}
	return d.fields.Len()
}

// Keys returns the keys in insertion order.
func (d *Definition) Keys() []string {
	if d == nil || d.fields == nil {
		return nil
	}
	keys := make([]string, 0, d.fields.Len())
	for pair := d.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// String returns the value under key if it is a string.
func (d *Definition) String(key string) string {
	v, _ := d.Get(key)
	s, _ := v.(string)
	return s
}

// Strings returns a copy of the list stored under key. Lists decoded from
// JSON come back as []any and are converted here.
func (d *Definition) Strings(key string) []string {
	v, ok := d.Get(key)
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Type returns the definition type, empty when unset.
func (d *Definition) Type() string { return d.String(KeyType) }

// IsCustom tells whether an analyzer may be rewritten: either its type is
// unset or it is "custom".
func (d *Definition) IsCustom() bool {
	if !d.Has(KeyType) {
		return true
	}
	return d.Type() == TypeCustom
}

// Tokenizer returns the tokenizer referenced by an analyzer.
func (d *Definition) Tokenizer() string { return d.String(KeyTokenizer) }

// Filters returns the ordered token filter names of an analyzer.
func (d *Definition) Filters() []string { return d.Strings(KeyFilter) }

// CharFilters returns the ordered char filter names of an analyzer.
func (d *Definition) CharFilters() []string { return d.Strings(KeyCharFilter) }

// HasFilters tells whether the analyzer declares a filter list at all.
func (d *Definition) HasFilters() bool { return d.Has(KeyFilter) }

// SetFilters replaces the filter list.
func (d *Definition) SetFilters(filters []string) *Definition {
	return d.Set(KeyFilter, filters)
}

// SetCharFilters replaces the char filter list.
func (d *Definition) SetCharFilters(filters []string) *Definition {
	return d.Set(KeyCharFilter, filters)
}

// AppendFilter adds a filter at the end of the chain, creating it if needed.
func (d *Definition) AppendFilter(names ...string) *Definition {
	return d.SetFilters(append(d.Filters(), names...))
}

// AppendCharFilter adds a char filter at the end of the list.
func (d *Definition) AppendCharFilter(names ...string) *Definition {
	return d.SetCharFilters(append(d.CharFilters(), names...))
}

// Clone returns a deep copy.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	out := &Definition{fields: orderedmap.New[string, any]()}
	if d.fields == nil {
		return out
	}
	for pair := d.fields.Oldest(); pair != nil; pair = pair.Next() {
		out.fields.Set(pair.Key, cloneValue(pair.Value))
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case *Definition:
		return val.Clone()
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case []any:
		out := make([]any, len(val))
		for i := range val {
			out[i] = cloneValue(val[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// Equal reports whether both definitions are structurally identical, key
// order aside.
func (d *Definition) Equal(o *Definition) bool {
	a, err := Canonical(d)
	if err != nil {
		return false
	}
	b, err := Canonical(o)
	if err != nil {
		return false
	}
	return string(a) == string(b)
}

func (d *Definition) MarshalJSON() ([]byte, error) {
	if d == nil || d.fields == nil || d.fields.Len() == 0 {
		return []byte("{}"), nil
	}
	return d.fields.MarshalJSON()
}

func (d *Definition) UnmarshalJSON(data []byte) error {
	fields := orderedmap.New[string, any]()
	if err := fields.UnmarshalJSON(data); err != nil {
		return err
	}
	d.fields = fields
	return nil
}

var _ json.Marshaler = (*Definition)(nil)
