/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package optimize

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hypermodeinc/analysiscfg/analysis"
	"github.com/hypermodeinc/analysiscfg/builder"
	"github.com/hypermodeinc/analysiscfg/mapping"
)

func load(t *testing.T, file string, into any) {
	data, err := os.ReadFile(filepath.Join("testdata", file))
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(data, into))
}

func treeOf(t *testing.T, m map[string]any) *analysis.Tree {
	data, err := json.Marshal(m)
	require.NoError(t, err)
	tree, err := analysis.Parse(data)
	require.NoError(t, err)
	return tree
}

func mappingsOf(t *testing.T, s string) mapping.Mappings {
	m, err := mapping.Parse([]byte(s))
	require.NoError(t, err)
	return m
}

var usedAnalyzers = []struct {
	name     string
	expected []string
	mappings string
}{
	{"empty", []string{}, `{}`},
	{"type with no properties", []string{}, `{"example_type": {"properties": []}}`},
	{"field analyzer", []string{"hello"},
		`{"example_type": {"properties": {"title": {"analyzer": "hello"}}}}`},
	{"field search analyzer", []string{"world"},
		`{"example_type": {"properties": {"title": {"search_analyzer": "world"}}}}`},
	{"field search quote analyzer", []string{"quoted"},
		`{"example_type": {"properties": {"title": {"search_quote_analyzer": "quoted"}}}}`},
	{"subfield analyzer", []string{"analysis"},
		`{"example_type": {"properties": {"title": {"fields": {"my_subfield": {"analyzer": "analysis"}}}}}}`},
	{"subfield search analyzer", []string{"chains"},
		`{"example_type": {"properties": {"title": {"fields": {"my_subfield": {"search_analyzer": "chains"}}}}}}`},
	{"subproperty analyzer", []string{"could be"},
		`{"example_type": {"properties": {"title": {"properties": {"my_subfield": {"analyzer": "could be"}}}}}}`},
	{"subproperty search analyzer", []string{"filtered"},
		`{"example_type": {"properties": {"title": {"properties": {"my_subfield": {"search_analyzer": "filtered"}}}}}}`},
	{"exact match subfield", []string{"keyword", "text"},
		`{"page": {"properties": {"title": {"analyzer": "text", "fields": {"exact": {"analyzer": "keyword"}}}}}}`},
	{"properties with sub fields",
		[]string{"aa_plain", "aa_plain_search", "ab_plain", "ab_plain_search", "text", "text_search"},
		labelsMapping},
}

const labelsMapping = `{
  "my_type": {
    "properties": {
      "title": {"analyzer": "text", "search_analyzer": "text_search"},
      "labels": {
        "properties": {
          "aa": {
            "type": "text",
            "index": false,
            "fields": {"plain": {"analyzer": "aa_plain", "search_analyzer": "aa_plain_search"}}
          },
          "ab": {
            "type": "text",
            "index": false,
            "fields": {"plain": {"analyzer": "ab_plain", "search_analyzer": "ab_plain_search"}}
          }
        }
      }
    }
  }
}`

func TestFindUsedAnalyzersInMappings(t *testing.T) {
	for _, tc := range usedAnalyzers {
		t.Run(tc.name, func(t *testing.T) {
			used, err := FindUsedAnalyzersInMappings(mappingsOf(t, tc.mappings))
			require.NoError(t, err)
			require.Equal(t, tc.expected, used.Values())
		})
	}
}

func TestFindUsedAnalyzersRejectsMalformedMappings(t *testing.T) {
	_, err := FindUsedAnalyzersInMappings(mappingsOf(t, `{"page": {"dynamic": false}}`))
	require.True(t, errors.Is(err, mapping.ErrMalformed))

	_, err = PushAnalyzerAliasesIntoMappings(mappingsOf(t, `{"page": {"properties": 1}}`), nil)
	require.True(t, errors.Is(err, mapping.ErrMalformed))
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func TestPushAnalyzerAliasesIntoMappings(t *testing.T) {
	for _, tc := range usedAnalyzers {
		t.Run(tc.name, func(t *testing.T) {
			aliases := make(Aliases, len(tc.expected))
			expected := analysis.NewSet()
			for _, name := range tc.expected {
				aliases[name] = reverse(name)
				expected.Add(reverse(name))
			}
			updated, err := PushAnalyzerAliasesIntoMappings(mappingsOf(t, tc.mappings), aliases)
			require.NoError(t, err)
			used, err := FindUsedAnalyzersInMappings(updated)
			require.NoError(t, err)
			require.Equal(t, expected.Values(), used.Values())
		})
	}
}

func TestFilterUnusedAnalysisChain(t *testing.T) {
	var cases []struct {
		Name     string              `yaml:"name"`
		Used     []string            `yaml:"used"`
		Analysis map[string]any      `yaml:"analysis"`
		Expected map[string][]string `yaml:"expected"`
	}
	load(t, "filter_unused.yaml", &cases)
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			out := FilterUnusedAnalysisChain(treeOf(t, tc.Analysis), analysis.NewSet(tc.Used...))
			for _, kind := range []analysis.Kind{analysis.KindAnalyzer, analysis.KindFilter,
				analysis.KindCharFilter, analysis.KindTokenizer} {
				want := tc.Expected[kind.String()]
				if len(want) == 0 {
					require.Zero(t, out.Section(kind).Len(), kind.String())
					continue
				}
				require.Equal(t, want, out.Section(kind).Names(), kind.String())
			}
		})
	}
}

func TestDeduplicateAnalysisConfig(t *testing.T) {
	var cases []struct {
		Name     string         `yaml:"name"`
		Analysis map[string]any `yaml:"analysis"`
		Aliases  Aliases        `yaml:"aliases"`
	}
	load(t, "deduplicate.yaml", &cases)
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			aliases := DeduplicateAnalysisConfig(treeOf(t, tc.Analysis))
			if len(tc.Aliases) == 0 {
				require.Empty(t, aliases)
				return
			}
			require.Equal(t, tc.Aliases, aliases)
		})
	}
}

func TestDeduplicationIsStable(t *testing.T) {
	tree := analysis.NewTree()
	tree.Analyzers.Set("b", analysis.NewDefinition("foo", "bar"))
	tree.Analyzers.Set("a", analysis.NewDefinition("foo", "bar"))
	require.Equal(t, Aliases{"a": "a", "b": "a"}, DeduplicateAnalysisConfig(tree))
}

func TestDeduplicateRewritesChildren(t *testing.T) {
	tree := treeOf(t, map[string]any{
		"analyzer": map[string]any{
			"a": map[string]any{"tokenizer": "tok_b", "filter": []any{"f_b", "lowercase"}},
		},
		"tokenizer": map[string]any{
			"tok_a": map[string]any{"type": "pattern"},
			"tok_b": map[string]any{"type": "pattern"},
		},
		"filter": map[string]any{
			"f_a": map[string]any{"type": "stop"},
			"f_b": map[string]any{"type": "stop"},
		},
	})
	DeduplicateAnalysisConfig(tree)
	a, _ := tree.Analyzer("a")
	require.Equal(t, "tok_a", a.Tokenizer())
	require.Equal(t, []string{"f_a", "lowercase"}, a.Filters())
	require.Equal(t, []string{"tok_a"}, tree.Tokenizers.Names())
	require.Equal(t, []string{"f_a"}, tree.Filters.Names())
}

func TestFilterAnalysis(t *testing.T) {
	tree := treeOf(t, map[string]any{
		"filter":      map[string]any{"icu_normalizer": map[string]any{}},
		"char_filter": map[string]any{"word_break_helper": map[string]any{}},
		"tokenizer":   map[string]any{},
		"analyzer": map[string]any{
			"aa_plain": map[string]any{
				"type": "custom", "tokenizer": "standard",
				"char_filter": []any{"word_break_helper"}, "filter": []any{"icu_normalizer"},
			},
			"aa_plain_search": map[string]any{"tokenizer": "snowball"},
			"ab_plain": map[string]any{
				"type": "custom", "tokenizer": "standard",
				"char_filter": []any{"word_break_helper"}, "filter": []any{"icu_normalizer"},
			},
			"ab_plain_search": map[string]any{"tokenizer": "snowball"},
			"text":            map[string]any{"tokenizer": "whitespace"},
			"text_search":     map[string]any{"tokenizer": "whitespace"},
		},
	})
	m := mappingsOf(t, labelsMapping)
	before := m.Clone()

	outTree, outMappings, err := FilterAnalysis(tree, m, true)
	require.NoError(t, err)
	require.Equal(t, before, m)
	require.Equal(t, 6, tree.Analyzers.Len())

	require.Equal(t, []string{"aa_plain", "aa_plain_search", "text"}, outTree.Analyzers.Names())
	require.Equal(t, []string{"icu_normalizer"}, outTree.Filters.Names())
	require.Equal(t, []string{"word_break_helper"}, outTree.CharFilters.Names())

	fields := map[string]map[string]string{}
	require.NoError(t, outMappings.Walk(func(path string, f mapping.Field) error {
		fields[path] = f.Analyzers()
		return nil
	}))
	require.Equal(t, map[string]string{"analyzer": "text", "search_analyzer": "text"},
		fields["my_type.properties.title"])
	for _, label := range []string{"aa", "ab"} {
		require.Equal(t, map[string]string{"analyzer": "aa_plain", "search_analyzer": "aa_plain_search"},
			fields["my_type.properties.labels.properties."+label+".fields.plain"])
	}
}

// Checks the invariants of FilterAnalysis on the full English settings and
// the page mapping.
func TestFilterAnalysisOnGeneratedSettings(t *testing.T) {
	b := builder.New("en", []string{"analysis-icu", "extra"}, nil)
	full := b.BuildConfig("")
	page := mapping.BuildPage(mapping.PageOptions{Similarity: b.Similarity()})

	tree, m, err := FilterAnalysis(full, page, true)
	require.NoError(t, err)
	require.Less(t, tree.Analyzers.Len(), full.Analyzers.Len())

	used, err := FindUsedAnalyzersInMappings(m)
	require.NoError(t, err)
	referenced := map[analysis.Kind]*analysis.Set{
		analysis.KindFilter:     analysis.NewSet(),
		analysis.KindCharFilter: analysis.NewSet(),
		analysis.KindTokenizer:  analysis.NewSet(),
	}
	tree.Analyzers.Each(func(name string, def *analysis.Definition) {
		require.True(t, used.Contains(name), "analyzer %s is not used", name)
		referenced[analysis.KindFilter].AddAll(def.Filters())
		referenced[analysis.KindCharFilter].AddAll(def.CharFilters())
		referenced[analysis.KindTokenizer].Add(def.Tokenizer())
	})
	for kind, names := range referenced {
		for _, name := range tree.Section(kind).Names() {
			require.True(t, names.Contains(name), "%s %s is not referenced", kind, name)
		}
	}
	// Already canonical: nothing left to merge.
	again := tree.Clone()
	for from, to := range DeduplicateAnalysisConfig(again) {
		require.Equal(t, from, to)
	}
	require.Equal(t, tree.Filters.Len(), again.Filters.Len())
}

func TestAliasesLeaveNoStaleReference(t *testing.T) {
	b := builder.New("en", nil, nil)
	tree := b.BuildConfig("")
	m := mapping.BuildPage(mapping.PageOptions{})
	aliases := DeduplicateAnalysisConfig(tree)
	m, err := PushAnalyzerAliasesIntoMappings(m, aliases)
	require.NoError(t, err)

	stale := analysis.NewSet()
	for from, to := range aliases {
		if from != to {
			stale.Add(from)
		}
	}
	used, err := FindUsedAnalyzersInMappings(m)
	require.NoError(t, err)
	for _, name := range used.Values() {
		require.False(t, stale.Contains(name), name)
	}
}
