/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package optimize shrinks analysis settings against the mappings that use
// them: structurally identical components are merged and whatever no mapped
// field can reach is dropped.
package optimize

import (
	"sort"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/hypermodeinc/analysiscfg/analysis"
	"github.com/hypermodeinc/analysiscfg/mapping"
)

// Aliases maps every analyzer name to the name of the definition it is
// identical to. Analyzers without a twin map to themselves.
type Aliases map[string]string

// FindUsedAnalyzersInMappings returns the analyzers referenced by any field
// of m, sub-fields and nested properties included.
func FindUsedAnalyzersInMappings(m mapping.Mappings) (*analysis.Set, error) {
	used := analysis.NewSet()
	err := m.Walk(func(_ string, field mapping.Field) error {
		for _, name := range field.Analyzers() {
			used.Add(name)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "while looking for used analyzers")
	}
	return used, nil
}

// FilterUnusedAnalysisChain drops the analyzers not in used, then the
// tokenizers, filters and char filters no remaining analyzer references.
// Analyzers reference their components directly so a single pass is enough.
func FilterUnusedAnalysisChain(t *analysis.Tree, used *analysis.Set) *analysis.Tree {
	reachable := map[analysis.Kind]*analysis.Set{
		analysis.KindAnalyzer:   analysis.NewSet().Union(used),
		analysis.KindFilter:     analysis.NewSet(),
		analysis.KindCharFilter: analysis.NewSet(),
		analysis.KindTokenizer:  analysis.NewSet(),
	}
	t.Analyzers.Each(func(name string, def *analysis.Definition) {
		if !used.Contains(name) {
			return
		}
		reachable[analysis.KindFilter].AddAll(def.Filters())
		reachable[analysis.KindCharFilter].AddAll(def.CharFilters())
		if tok := def.Tokenizer(); tok != "" {
			reachable[analysis.KindTokenizer].Add(tok)
		}
	})

	for kind, keep := range reachable {
		section := t.Section(kind)
		var drop []string
		section.Each(func(name string, _ *analysis.Definition) {
			if !keep.Contains(name) {
				drop = append(drop, name)
			}
		})
		for _, name := range drop {
			section.Delete(name)
		}
		if len(drop) > 0 {
			glog.V(2).Infof("Dropped %d unused %s definitions", len(drop), kind)
		}
	}
	return t
}

// DeduplicateAnalysisConfig merges identical tokenizers, filters and char
// filters, rewriting the analyzers to use the surviving names. Analyzers made
// identical that way are not merged: the returned aliases must be pushed
// into the mappings first.
func DeduplicateAnalysisConfig(t *analysis.Tree) Aliases {
	for _, kind := range analysis.ChildKinds {
		aliases := groupIdentical(t.Section(kind))
		renamed := 0
		for from, to := range aliases {
			if from != to {
				t.Section(kind).Delete(from)
				renamed++
			}
		}
		if renamed == 0 {
			continue
		}
		glog.V(2).Infof("Merged %d duplicate %s definitions", renamed, kind)
		t.Analyzers.Each(func(_ string, def *analysis.Definition) {
			rewriteReferences(def, kind, aliases)
		})
	}
	return groupIdentical(t.Analyzers)
}

// groupIdentical maps each name of s to the smallest name whose definition
// is structurally identical.
func groupIdentical(s *analysis.Section) Aliases {
	names := s.Names()
	sort.Strings(names)

	aliases := make(Aliases, len(names))
	winners := make(map[string]string, len(names))
	for _, name := range names {
		def, _ := s.Get(name)
		key, err := analysis.Canonical(def)
		if err != nil {
			// Not serializable, so it cannot be proven identical to anything.
			glog.Warningf("Cannot compare %s: %v", name, err)
			aliases[name] = name
			continue
		}
		winner, ok := winners[string(key)]
		if !ok {
			winner = name
			winners[string(key)] = name
		}
		aliases[name] = winner
	}
	return aliases
}

func rewriteReferences(def *analysis.Definition, kind analysis.Kind, aliases Aliases) {
	switch kind {
	case analysis.KindTokenizer:
		if to, ok := aliases[def.Tokenizer()]; ok && def.Has(analysis.KeyTokenizer) {
			def.Set(analysis.KeyTokenizer, to)
		}
	case analysis.KindFilter:
		if def.Has(analysis.KeyFilter) {
			def.SetFilters(rename(def.Filters(), aliases))
		}
	case analysis.KindCharFilter:
		if def.Has(analysis.KeyCharFilter) {
			def.SetCharFilters(rename(def.CharFilters(), aliases))
		}
	}
}

func rename(names []string, aliases Aliases) []string {
	for i, name := range names {
		if to, ok := aliases[name]; ok {
			names[i] = to
		}
	}
	return names
}

// PushAnalyzerAliasesIntoMappings rewrites every analyzer reference of m
// through aliases. m is modified and returned.
func PushAnalyzerAliasesIntoMappings(m mapping.Mappings, aliases Aliases) (mapping.Mappings, error) {
	var renamed int
	err := m.Walk(func(_ string, field mapping.Field) error {
		renamed += field.RenameAnalyzers(func(name string) (string, bool) {
			to, ok := aliases[name]
			return to, ok
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "while pushing analyzer aliases")
	}
	glog.V(2).Infof("Renamed %d analyzer references in mappings", renamed)
	return m, nil
}

// FilterAnalysis returns copies of t and m where, optionally, duplicates are
// merged and then everything the mappings do not use is dropped. Merging
// first lets an unused analyzer collapse into a used one.
func FilterAnalysis(t *analysis.Tree, m mapping.Mappings, deduplicate bool) (
	*analysis.Tree, mapping.Mappings, error) {

	t = t.Clone()
	m = m.Clone()
	if deduplicate {
		aliases := DeduplicateAnalysisConfig(t)
		var err error
		if m, err = PushAnalyzerAliasesIntoMappings(m, aliases); err != nil {
			return nil, nil, err
		}
	}
	used, err := FindUsedAnalyzersInMappings(m)
	if err != nil {
		return nil, nil, err
	}
	return FilterUnusedAnalysisChain(t, used), m, nil
}
