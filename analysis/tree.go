/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package analysis holds the typed model of a search engine "analysis"
// settings object: four sections of named component definitions, with
// order-preserving maps so generated settings serialize deterministically.
package analysis

import (
	"encoding/json"
	"fmt"
)

// Kind identifies one of the four sections of a Tree.
type Kind int

const (
	KindAnalyzer Kind = iota
	KindFilter
	KindCharFilter
	KindTokenizer
)

// ChildKinds are the sections analyzers reference, in the order they must be
// deduplicated: children before the analyzers that point at them.
var ChildKinds = []Kind{KindTokenizer, KindFilter, KindCharFilter}

func (k Kind) String() string {
	switch k {
	case KindAnalyzer:
		return "analyzer"
	case KindFilter:
		return "filter"
	case KindCharFilter:
		return "char_filter"
	case KindTokenizer:
		return "tokenizer"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Tree is a complete analysis settings object.
type Tree struct {
	Analyzers   *Section `json:"analyzer"`
	Filters     *Section `json:"filter"`
	CharFilters *Section `json:"char_filter"`
	Tokenizers  *Section `json:"tokenizer"`
}

// NewTree returns a tree with four empty sections.
func NewTree() *Tree {
	return &Tree{
		Analyzers:   NewSection(),
		Filters:     NewSection(),
		CharFilters: NewSection(),
		Tokenizers:  NewSection(),
	}
}

// Section returns the section for kind, creating it when missing.
func (t *Tree) Section(kind Kind) *Section {
	ptr := t.sectionPtr(kind)
	if *ptr == nil {
		*ptr = NewSection()
	}
	return *ptr
}

func (t *Tree) sectionPtr(kind Kind) **Section {
	switch kind {
	case KindAnalyzer:
		return &t.Analyzers
	case KindFilter:
		return &t.Filters
	case KindCharFilter:
		return &t.CharFilters
	case KindTokenizer:
		return &t.Tokenizers
	}
	panic(fmt.Sprintf("unknown section %v", kind))
}

// Analyzer is a shortcut for t.Analyzers.Get.
func (t *Tree) Analyzer(name string) (*Definition, bool) {
	return t.Section(KindAnalyzer).Get(name)
}

// Clone returns a deep copy.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	return &Tree{
		Analyzers:   t.Section(KindAnalyzer).Clone(),
		Filters:     t.Section(KindFilter).Clone(),
		CharFilters: t.Section(KindCharFilter).Clone(),
		Tokenizers:  t.Section(KindTokenizer).Clone(),
	}
}

// Parse decodes an analysis settings object. Missing sections come back
// empty.
func Parse(data []byte) (*Tree, error) {
	t := NewTree()
	if err := json.Unmarshal(data, t); err != nil {
		return nil, err
	}
	for _, kind := range []Kind{KindAnalyzer, KindFilter, KindCharFilter, KindTokenizer} {
		t.Section(kind)
	}
	return t, nil
}
