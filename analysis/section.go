/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package analysis

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Section maps unique component names to their definitions, in insertion
// order.
type Section struct {
	defs *orderedmap.OrderedMap[string, *Definition]
}

// NewSection returns an empty section.
func NewSection() *Section {
	return &Section{defs: orderedmap.New[string, *Definition]()}
}

func (s *Section) init() {
	if s.defs == nil {
		s.defs = orderedmap.New[string, *Definition]()
	}
}

// Get returns the definition registered under name.
func (s *Section) Get(name string) (*Definition, bool) {
	if s == nil || s.defs == nil {
		return nil, false
	}
	return s.defs.Get(name)
}

// Has tells whether name is defined.
func (s *Section) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Set registers def under name. Redefining a name keeps its position.
func (s *Section) Set(name string, def *Definition) {
	s.init()
	if def == nil {
		def = NewDefinition()
	}
	s.defs.Set(name, def)
}

// Delete drops name.
func (s *Section) Delete(name string) {
	if s == nil || s.defs == nil {
		return
	}
	s.defs.Delete(name)
}

// Len returns the number of definitions.
func (s *Section) Len() int {
	if s == nil || s.defs == nil {
		return 0
	}
	return s.defs.Len()
}

// Names returns the defined names in insertion order.
func (s *Section) Names() []string {
	if s == nil || s.defs == nil {
		return nil
	}
	names := make([]string, 0, s.defs.Len())
	for pair := s.defs.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Each calls fn for every definition in insertion order. The definition may
// be modified in place; the section itself must not be.
func (s *Section) Each(fn func(name string, def *Definition)) {
	if s == nil || s.defs == nil {
		return
	}
	for pair := s.defs.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Clone returns a deep copy.
func (s *Section) Clone() *Section {
	out := NewSection()
	s.Each(func(name string, def *Definition) {
		out.Set(name, def.Clone())
	})
	return out
}

func (s *Section) MarshalJSON() ([]byte, error) {
	if s == nil || s.defs == nil || s.defs.Len() == 0 {
		return []byte("{}"), nil
	}
	return s.defs.MarshalJSON()
}

func (s *Section) UnmarshalJSON(data []byte) error {
	defs := orderedmap.New[string, *Definition]()
	if err := defs.UnmarshalJSON(data); err != nil {
		return err
	}
	// "name": null decodes to a nil definition.
	for pair := defs.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			pair.Value = NewDefinition()
		}
	}
	s.defs = defs
	return nil
}
