/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package builder

import (
	"github.com/golang/glog"

	"github.com/hypermodeinc/analysiscfg/analysis"
)

// BuildLanguageConfigs merges the given analyzers of every language into
// base, which is modified and returned. Each analyzer is copied as
// "{lang}_{analyzer}" along with the components it needs.
//
// Char filters and tokenizers have language specific names; token filters do
// not (lowercase differs between Greek and Turkish). A language filter that
// clashes with a different shared definition is renamed "{lang}_{filter}" in
// that language's analyzers before they are copied.
func (b *Builder) BuildLanguageConfigs(base *analysis.Tree, languages, analyzers []string) *analysis.Tree {
	built := make(map[string]*analysis.Tree, len(languages))
	implicit := analysis.NewSection()
	implicitFilters(base, analyzers, implicit)
	for _, lang := range languages {
		if _, ok := built[lang]; ok {
			continue
		}
		t := b.BuildConfig(lang)
		built[lang] = t
		implicitFilters(t, analyzers, implicit)
	}

	done := make(map[string]bool, len(languages))
	for _, lang := range languages {
		if done[lang] {
			continue
		}
		done[lang] = true
		t := built[lang]
		t.Filters = resolveFilters(t, base.Filters, implicit, lang)
		for _, name := range analyzers {
			mergeAnalyzer(base, t, name, lang)
		}
	}
	return base
}

// implicitFilters records the filters the analyzers use without defining
// them. Those are built-in filters configured by their type alone. The first
// definition recorded wins.
func implicitFilters(t *analysis.Tree, analyzers []string, into *analysis.Section) {
	for _, name := range analyzers {
		def, ok := t.Analyzers.Get(name)
		if !ok {
			continue
		}
		for _, f := range def.Filters() {
			if t.Filters.Has(f) || into.Has(f) {
				continue
			}
			into.Set(f, analysis.NewDefinition(analysis.KeyType, f))
		}
	}
}

// resolveFilters returns the filters of t that base lacks. Filters whose name
// is taken by a different definition are renamed throughout t's analyzers.
func resolveFilters(t *analysis.Tree, shared, implicit *analysis.Section, lang string) *analysis.Section {
	out := analysis.NewSection()
	t.Filters.Each(func(name string, def *analysis.Definition) {
		existing, ok := shared.Get(name)
		if !ok {
			existing, ok = implicit.Get(name)
		}
		switch {
		case !ok:
			out.Set(name, def)
		case !existing.Equal(def):
			renamed := lang + "_" + name
			glog.V(2).Infof("Filter %s of %s differs from the shared one, renamed to %s",
				name, lang, renamed)
			renameFilter(t, name, renamed)
			out.Set(renamed, def)
		}
	})
	return out
}

func renameFilter(t *analysis.Tree, from, to string) {
	t.Analyzers.Each(func(_ string, def *analysis.Definition) {
		if !def.HasFilters() {
			return
		}
		filters := def.Filters()
		for i, f := range filters {
			if f == from {
				filters[i] = to
			}
		}
		def.SetFilters(filters)
	})
}

// mergeAnalyzer copies analyzer name of lang into base, with the filters,
// char filters and tokenizer base does not define yet.
func mergeAnalyzer(base, lang *analysis.Tree, name, prefix string) {
	def, ok := lang.Analyzers.Get(name)
	if !ok {
		glog.Warningf("Analyzer %s is not defined for %s, not merged", name, prefix)
		return
	}
	base.Analyzers.Set(prefix+"_"+name, def.Clone())

	for _, f := range def.Filters() {
		if shared, ok := lang.Filters.Get(f); ok && !base.Filters.Has(f) {
			base.Filters.Set(f, shared.Clone())
		}
	}
	// Char filters are namespaced by language already.
	for _, cf := range def.CharFilters() {
		if base.CharFilters.Has(cf) {
			continue
		}
		if own, ok := lang.CharFilters.Get(cf); ok {
			base.CharFilters.Set(cf, own.Clone())
		}
	}
	if tok := def.Tokenizer(); tok != "" && !base.Tokenizers.Has(tok) {
		if own, ok := lang.Tokenizers.Get(tok); ok {
			base.Tokenizers.Set(tok, own.Clone())
		}
	}
}
