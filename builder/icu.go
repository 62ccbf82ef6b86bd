/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package builder

import (
	"slices"

	"github.com/golang/glog"

	"github.com/hypermodeinc/analysiscfg/analysis"
)

// useICUNormalizer replaces lowercase with ICU normalization in every
// analyzer. Language specific lowercasing (Greek, Irish, Turkish) is kept and
// runs first.
func useICUNormalizer(t *analysis.Tree) {
	keepLowercase := false
	if def, ok := t.Filters.Get(fLowercase); ok {
		keepLowercase = def.Has("language")
	}
	t.Analyzers.Each(func(_ string, def *analysis.Definition) {
		if !def.HasFilters() {
			return
		}
		filters := def.Filters()
		out := make([]string, 0, len(filters)+1)
		for _, f := range filters {
			if f != fLowercase {
				out = append(out, f)
				continue
			}
			if keepLowercase {
				out = append(out, fLowercase)
			}
			out = append(out, fICUNormalizer)
		}
		def.SetFilters(out)
	})
}

// EnableICUTokenizer swaps the standard tokenizer for the ICU one in custom
// analyzers.
func (b *Builder) EnableICUTokenizer(t *analysis.Tree) *analysis.Tree {
	t.Analyzers.Each(func(name string, def *analysis.Definition) {
		if !def.IsCustom() || def.Tokenizer() != tokStandard {
			return
		}
		def.Set(analysis.KeyTokenizer, tokICU)
		glog.V(3).Infof("Analyzer %s now uses %s", name, tokICU)
	})
	return t
}

// EnableICUFolding replaces ASCII folding with ICU folding in custom
// analyzers and forces the preserving variant onto plain.
func (b *Builder) EnableICUFolding(t *analysis.Tree, lang string) *analysis.Tree {
	folding := analysis.NewDefinition(analysis.KeyType, fICUFolding)
	if filter := b.ICUSetFilter(lang); filter != "" {
		folding.Set("unicodeSetFilter", filter)
	}
	t.Filters.Set(fICUFolding, folding)
	// Preserved tokens are normalized even when no lowercase ran before.
	t.Filters.Set(fNFKC, analysis.NewDefinition(
		analysis.KeyType, fICUNormalizer,
		"name", "nfkc"))
	t.Filters.Set(fRemoveEmpty, minLength(1))

	t.Analyzers.Each(func(_ string, def *analysis.Definition) {
		if !def.IsCustom() || !def.HasFilters() {
			return
		}
		filters := def.Filters()
		if slices.Contains(filters, fAsciiFolding) {
			filters = switchToICUFolding(filters)
		}
		if slices.Contains(filters, fAsciiPreserve) {
			filters = switchToICUFoldingPreserve(filters, false)
		}
		def.SetFilters(filters)
	})

	if plain, ok := t.Analyzers.Get(analyzerPlain); ok {
		plain.SetFilters(switchToICUFoldingPreserve(plain.Filters(), true))
	}
	return t
}

// switchToICUFolding replaces the first asciifolding.
func switchToICUFolding(filters []string) []string {
	idx := slices.Index(filters, fAsciiFolding)
	if idx < 0 {
		return filters
	}
	return slices.Replace(filters, idx, idx+1, fICUFolding, fRemoveEmpty)
}

// switchToICUFoldingPreserve replaces asciifolding_preserve with the ICU
// filters that fold while keeping the original token. With add, the group is
// appended when asciifolding_preserve is absent and nothing folds yet.
func switchToICUFoldingPreserve(filters []string, add bool) []string {
	idx := slices.Index(filters, fAsciiPreserve)
	if idx < 0 {
		if !add || slices.Contains(filters, fICUFolding) {
			return filters
		}
		idx = len(filters)
		filters = append(filters, fAsciiPreserve)
	}

	group := make([]string, 0, 5)
	// Without a normalizer in front, unnormalized text would be preserved.
	if lc := slices.Index(filters, fICUNormalizer); lc < 0 || lc > idx {
		group = append(group, fNFKC)
	}
	group = append(group, fRecorder, fICUFolding, fPreserve, fRemoveEmpty)
	return slices.Replace(filters, idx, idx+1, group...)
}
