/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package builder

import (
	"slices"

	"github.com/hypermodeinc/analysiscfg/analysis"
)

// FixASCIIFolding removes the duplicates preserve_original emits for tokens
// folding left unchanged (LUCENE-7468). A unique filter goes right after
// asciifolding_preserve, or after the ICU group that replaced it, in every
// custom analyzer. The filter is only registered when some analyzer uses it.
func (b *Builder) FixASCIIFolding(t *analysis.Tree) *analysis.Tree {
	needed := false
	t.Analyzers.Each(func(_ string, def *analysis.Definition) {
		if !def.IsCustom() || !def.HasFilters() {
			return
		}
		filters := def.Filters()
		at := preserveGroupEnd(filters)
		if at < 0 {
			return
		}
		needed = true
		if at+1 < len(filters) && filters[at+1] == fDedup {
			return
		}
		def.SetFilters(slices.Insert(filters, at+1, fDedup))
	})
	if needed {
		t.Filters.Set(fDedup, analysis.NewDefinition(
			analysis.KeyType, "unique",
			"only_on_same_position", true))
	}
	return t
}

// preserveGroupEnd returns the position of the last filter of the group that
// preserves original tokens, or -1.
func preserveGroupEnd(filters []string) int {
	if idx := slices.Index(filters, fAsciiPreserve); idx >= 0 {
		return idx
	}
	idx := slices.Index(filters, fPreserve)
	if idx >= 0 && idx+1 < len(filters) && filters[idx+1] == fRemoveEmpty {
		return idx + 1
	}
	return -1
}
