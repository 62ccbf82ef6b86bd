/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package builder

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/hypermodeinc/analysiscfg/analysis"
	"github.com/hypermodeinc/analysiscfg/config"
)

// Every plugin that unlocks a language analyzer.
var languagePlugins = []string{
	"analysis-stempel", "analysis-kuromoji",
	"analysis-smartcn", "analysis-hebrew",
	"analysis-ukrainian", "analysis-stconvert",
	"extra-analysis-serbian", "extra-analysis-slovak",
	"extra-analysis-esperanto", "analysis-nori",
	"extra-analysis-homoglyph",
}

type treeCase struct {
	Name     string         `yaml:"name"`
	Input    map[string]any `yaml:"input"`
	Expected map[string]any `yaml:"expected"`
}

func loadCases(t *testing.T, file string) []treeCase {
	data, err := os.ReadFile(filepath.Join("testdata", file))
	require.NoError(t, err)
	var cases []treeCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)
	return cases
}

func treeOf(t *testing.T, m map[string]any) *analysis.Tree {
	data, err := json.Marshal(m)
	require.NoError(t, err)
	tree, err := analysis.Parse(data)
	require.NoError(t, err)
	return tree
}

// plain turns v into what encoding/json decodes it to, so fixtures and
// results compare with cmp.
func plain(t *testing.T, v any) any {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var out any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func newBuilder(t *testing.T, lang string, plugins []string, values map[string]any) *Builder {
	cfg, err := config.New(values)
	require.NoError(t, err)
	return New(lang, plugins, cfg)
}

func analyzer(t *testing.T, tree *analysis.Tree, name string) *analysis.Definition {
	def, ok := tree.Analyzer(name)
	require.True(t, ok, "analyzer %s is missing", name)
	return def
}

func TestDefaultLanguage(t *testing.T) {
	b := New("xx", nil, nil)
	require.Equal(t, "xx", b.DefaultLanguage())
	require.False(t, b.IsIcuAvailable())
	require.Equal(t, "default", b.DefaultTextAnalyzerType("xx"))

	tree := b.BuildConfig("")
	text := analyzer(t, tree, "text")
	require.Equal(t, []string{"type", "tokenizer", "filter"}, text.Keys())
	require.Equal(t, "standard", text.Tokenizer())
	require.Equal(t, []string{"lowercase"}, text.Filters())
	require.True(t, text.Equal(analyzer(t, tree, "text_search")))
	require.False(t, tree.Filters.Has("icu_normalizer"))
}

func TestBuiltinLanguageAnalyzer(t *testing.T) {
	tree := New("de", nil, nil).BuildConfig("de")
	text := analyzer(t, tree, "text")
	require.Equal(t, "german", text.Type())
	require.Equal(t, []string{"word_break_helper"}, text.CharFilters())
	require.False(t, text.IsCustom())
}

func TestEnglishWithoutPlugins(t *testing.T) {
	tree := New("en", nil, nil).BuildConfig("en")

	text := analyzer(t, tree, "text")
	require.Equal(t, "standard", text.Tokenizer())
	filters := text.Filters()
	require.Equal(t, []string{"kstem", "custom_stem"}, filters[len(filters)-2:])
	require.True(t, text.Equal(analyzer(t, tree, "text_search")))

	tree.Analyzers.Each(func(name string, def *analysis.Definition) {
		for _, f := range def.Filters() {
			require.False(t, strings.HasPrefix(f, "icu_"), "%s uses %s", name, f)
		}
		require.NotEqual(t, "icu_tokenizer", def.Tokenizer(), name)
	})
	for _, name := range tree.Filters.Names() {
		require.False(t, strings.HasPrefix(name, "icu_"), name)
	}

	require.Equal(t, []string{"lowercase", "asciifolding_preserve", "dedup_asciifolding"},
		analyzer(t, tree, "plain").Filters())
	require.Equal(t, []string{"lowercase"}, analyzer(t, tree, "plain_search").Filters())
	require.True(t, tree.Filters.Has("dedup_asciifolding"))
}

func TestEnglishWithIcuFolding(t *testing.T) {
	b := newBuilder(t, "en", []string{"analysis-icu", "extra"},
		map[string]any{config.KeyIcuFolding: "yes"})
	tree := b.BuildConfig("en")

	require.Equal(t, []string{
		"icu_normalizer",
		"preserve_original_recorder",
		"icu_folding",
		"preserve_original",
		"remove_empty",
		"dedup_asciifolding",
	}, analyzer(t, tree, "plain").Filters())
	require.Equal(t, []string{
		"aggressive_splitting",
		"possessive_english",
		"icu_normalizer",
		"stop",
		"icu_folding",
		"remove_empty",
		"kstem",
		"custom_stem",
	}, analyzer(t, tree, "text").Filters())

	folding, ok := tree.Filters.Get("icu_folding")
	require.True(t, ok)
	require.False(t, folding.Has("unicodeSetFilter"))
	for _, name := range []string{"icu_normalizer", "icu_nfkc_normalization", "remove_empty", "dedup_asciifolding"} {
		require.True(t, tree.Filters.Has(name), name)
	}
	// English is not on the ICU tokenizer list.
	require.Equal(t, "standard", analyzer(t, tree, "text").Tokenizer())
}

func TestIcuNormalizerKeepsLanguageLowercase(t *testing.T) {
	tree := New("el", []string{"analysis-icu"}, nil).BuildConfig("el")
	lc, ok := tree.Filters.Get("lowercase")
	require.True(t, ok)
	require.Equal(t, "greek", lc.String("language"))
	require.Equal(t, []string{"lowercase", "icu_normalizer", "greek_stop", "greek_stemmer", "greek_length"},
		analyzer(t, tree, "text").Filters())
	require.Equal(t, []string{"lowercase", "icu_normalizer"}, analyzer(t, tree, "plain").Filters())

	tree = New("de", []string{"analysis-icu"}, nil).BuildConfig("de")
	require.Equal(t, []string{"icu_normalizer"}, analyzer(t, tree, "plain").Filters())
	require.Equal(t, []string{"icu_normalizer", "aggressive_splitting", "asciifolding_preserve", "dedup_asciifolding"},
		analyzer(t, tree, "short_text").Filters())
}

func TestLanguageLowercase(t *testing.T) {
	for lang, want := range map[string]string{"ga": "irish", "tr": "turkish", "el": "greek"} {
		tree := New(lang, nil, nil).BuildConfig(lang)
		lc, ok := tree.Filters.Get("lowercase")
		require.True(t, ok)
		require.Equal(t, want, lc.String("language"), lang)
	}
	// Irish and Turkish keep the built-in analyzer.
	tree := New("tr", nil, nil).BuildConfig("tr")
	require.Equal(t, "turkish", analyzer(t, tree, "text").Type())
}

func TestOverridesAreRegistered(t *testing.T) {
	for _, typ := range []string{
		"bosnian", "croatian", "serbian", "serbo-croatian",
		"chinese", "chinese_surrogate_fix", "english", "esperanto",
		"french", "greek", "hebrew", "indonesian", "malay", "irish",
		"italian", "japanese", "korean", "mirandese", "polish",
		"russian", "slovak", "swedish", "turkish",
	} {
		require.Contains(t, overrides, typ)
	}
	require.NotContains(t, overrides, "german")
}

func TestTextSearchIsACopyOfText(t *testing.T) {
	plugins := append([]string{"extra-analysis-surrogates"}, languagePlugins...)
	for _, lang := range []string{
		"bs", "hr", "sh", "sr", "zh", "en", "eo", "fr", "el", "he",
		"id", "ms", "it", "ja", "ko", "mwl", "pl", "ru", "sk", "sv",
	} {
		tree := New(lang, plugins, nil).BuildConfig(lang)
		text := analyzer(t, tree, "text")
		search := analyzer(t, tree, "text_search")
		require.True(t, text.IsCustom(), lang)
		require.True(t, text.Equal(search), lang)

		text.AppendFilter("marker")
		require.NotContains(t, search.Filters(), "marker", lang)
	}
}

func TestCustomStopWordsAndPatternsAreNFKC(t *testing.T) {
	plugins := append([]string{"extra-analysis-surrogates"}, languagePlugins...)
	for _, lang := range []string{"en", "fr", "pl", "mwl", "ko", "ru", "zh", "ja"} {
		tree := New(lang, plugins, nil).BuildConfig(lang)
		check := func(name string, def *analysis.Definition) {
			switch def.Type() {
			case "stop":
				for _, word := range def.Strings("stopwords") {
					require.True(t, norm.NFKC.IsNormalString(word), "%s %s: %q", lang, name, word)
				}
			case "pattern_replace":
				pattern := def.String("pattern")
				require.True(t, norm.NFKC.IsNormalString(pattern), "%s %s: %q", lang, name, pattern)
			}
		}
		tree.Filters.Each(check)
		tree.CharFilters.Each(check)
	}
}

func TestChinese(t *testing.T) {
	tests := []struct {
		plugins []string
		filters []string
	}{
		{
			[]string{"analysis-stconvert", "analysis-smartcn"},
			[]string{"smartcn_stop", "lowercase"},
		},
		{
			[]string{"extra-analysis-surrogates", "analysis-stconvert", "analysis-smartcn"},
			[]string{"surrogate_merger", "smartcn_stop", "lowercase"},
		},
	}
	for _, tc := range tests {
		tree := New("zh", tc.plugins, nil).BuildConfig("zh")
		text := analyzer(t, tree, "text")
		require.Equal(t, "smartcn_tokenizer", text.Tokenizer())
		require.Equal(t, []string{"stconvertfix", "tsconvert"}, text.CharFilters())
		require.Equal(t, tc.filters, text.Filters())
		require.Equal(t, []string{"smartcn_stop", "lowercase"}, analyzer(t, tree, "plain").Filters())
		require.Equal(t, []string{"smartcn_stop", "lowercase"}, analyzer(t, tree, "plain_search").Filters())
	}

	// Without the plugins Chinese has no analyzer of its own.
	tree := New("zh", nil, nil).BuildConfig("zh")
	require.Equal(t, []string{"lowercase"}, analyzer(t, tree, "text").Filters())
	require.False(t, tree.CharFilters.Has("tsconvert"))
}

func TestEnglishKanaMap(t *testing.T) {
	tree := New("en", nil, nil).BuildConfig("en")
	kana, ok := tree.CharFilters.Get("kana_map")
	require.True(t, ok)
	mappings := kana.Strings("mappings")
	require.Len(t, mappings, 86)
	require.Equal(t, `\u3041=>\u30a1`, mappings[0])
	require.Equal(t, `\u3094=>\u30f4`, mappings[6])
	require.Equal(t, `\u3095=>\u30f5`, mappings[11])
	require.Equal(t, `\u3096=>\u30f6`, mappings[18])
	require.Equal(t, `\u3093=>\u30f3`, mappings[85])
}

func TestFrenchHomoglyphs(t *testing.T) {
	tree := New("fr", nil, nil).BuildConfig("fr")
	require.Equal(t, "french_elision", analyzer(t, tree, "text").Filters()[0])

	tree = New("fr", []string{PluginHomoglyph}, nil).BuildConfig("fr")
	require.Equal(t, "homoglyph_norm", analyzer(t, tree, "text").Filters()[0])
}

func TestJapaneseDigits(t *testing.T) {
	tree := New("ja", []string{"analysis-kuromoji"}, nil).BuildConfig("ja")
	fix, ok := tree.CharFilters.Get("fullwidthnumfix")
	require.True(t, ok)
	mappings := fix.Strings("mappings")
	require.Len(t, mappings, 10)
	require.Equal(t, `\uff10=>0`, mappings[0])
	require.Equal(t, `\uff19=>9`, mappings[9])
	require.Equal(t, "kuromoji_tokenizer", analyzer(t, tree, "text").Tokenizer())
}

func TestKorean(t *testing.T) {
	tree := New("ko", []string{"analysis-nori"}, nil).BuildConfig("ko")
	require.Equal(t, "nori_tok", analyzer(t, tree, "text").Tokenizer())
	tok, ok := tree.Tokenizers.Get("nori_tok")
	require.True(t, ok)
	require.Equal(t, "mixed", tok.String("decompound_mode"))

	tree = New("ko", nil, nil).BuildConfig("ko")
	require.Equal(t, "cjk", analyzer(t, tree, "text").Type())
}

func TestRussian(t *testing.T) {
	tree := New("ru", nil, nil).BuildConfig("ru")
	flattener, ok := tree.CharFilters.Get("near_space_flattener")
	require.True(t, ok)
	mappings := flattener.Strings("mappings")
	require.Len(t, mappings, 10)
	require.Equal(t, `\u0301=>`, mappings[5])
	require.Equal(t, `\u0415\u0308=>\u0415`, mappings[9])

	require.Equal(t, []string{"word_break_helper", "russian_charfilter"}, analyzer(t, tree, "plain").CharFilters())
	require.Equal(t, []string{"russian_charfilter"}, analyzer(t, tree, "suggest").CharFilters())
	require.Equal(t, []string{"russian_charfilter"}, analyzer(t, tree, "suggest_reverse").CharFilters())

	// The default flattener is untouched by other languages.
	tree = New("en", nil, nil).BuildConfig("en")
	flattener, _ = tree.CharFilters.Get("near_space_flattener")
	require.Len(t, flattener.Strings("mappings"), 5)
}

func TestSerbianFoldingKeepsLetters(t *testing.T) {
	b := New("sr", []string{"analysis-icu", "extra", "extra-analysis-serbian"}, nil)
	tree := b.BuildConfig("sr")
	require.Equal(t, []string{"icu_normalizer", "icu_folding", "remove_empty", "serbian_stemmer"},
		analyzer(t, tree, "text").Filters())
	folding, _ := tree.Filters.Get("icu_folding")
	require.Equal(t, "[^ĐđŽžĆćŠšČč]", folding.String("unicodeSetFilter"))
}

func TestShouldActivateIcuFolding(t *testing.T) {
	icu := []string{"extra", "analysis-icu"}
	tests := []struct {
		name    string
		setting any
		plugins []string
		want    map[string]bool
	}{
		{"yes", "yes", icu, map[string]bool{"unknown_language": true, "simple": true}},
		{"default", "default", icu, map[string]bool{"unknown_language": false, "simple": true}},
		{"true means yes", true, icu, map[string]bool{"unknown_language": true, "en": true}},
		{"no", "no", icu, map[string]bool{"en": false, "simple": false}},
		{"false means no", false, icu, map[string]bool{"unknown_language": false, "en": false}},
		{"unknown value", "sometimes", icu, map[string]bool{"en": false}},
		{"needs extra", "yes", []string{"analysis-icu"}, map[string]bool{"en": false, "simple": false}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newBuilder(t, "en", tc.plugins, map[string]any{config.KeyIcuFolding: tc.setting})
			for lang, want := range tc.want {
				require.Equal(t, want, b.ShouldActivateIcuFolding(lang), lang)
			}
		})
	}
}

func TestShouldActivateIcuTokenization(t *testing.T) {
	icu := []string{"extra", "analysis-icu"}
	tests := []struct {
		setting string
		plugins []string
		en, bo  bool
	}{
		{"yes", icu, true, true},
		{"no", icu, false, false},
		{"default", icu, false, true},
		{"yes", nil, false, false},
	}
	for _, tc := range tests {
		b := newBuilder(t, "bo", tc.plugins, map[string]any{config.KeyIcuTokenizer: tc.setting})
		require.Equal(t, tc.en, b.ShouldActivateIcuTokenization("en"), tc.setting)
		require.Equal(t, tc.bo, b.ShouldActivateIcuTokenization("bo"), tc.setting)
	}

	tree := New("th", icu, nil).BuildConfig("th")
	require.Equal(t, "icu_tokenizer", analyzer(t, tree, "plain").Tokenizer())
	// Built-in analyzers are left alone.
	require.Equal(t, "thai", analyzer(t, tree, "text").Type())
}

func TestICUSetFilter(t *testing.T) {
	b := New("sv", nil, nil)
	require.Equal(t, "[^åäöÅÄÖ]", b.ICUSetFilter("sv"))
	require.Empty(t, b.ICUSetFilter("en"))

	b = newBuilder(t, "sv", nil, map[string]any{config.KeyUnicodeSetFilter: ""})
	require.Empty(t, b.ICUSetFilter("sv"))
	b = newBuilder(t, "en", nil, map[string]any{config.KeyUnicodeSetFilter: "[^ß]"})
	require.Equal(t, "[^ß]", b.ICUSetFilter("sv"))
}

func TestBuildSimilarityConfig(t *testing.T) {
	b := newBuilder(t, "en", nil, map[string]any{config.KeySimilarity: "wmf_defaults"})
	require.Contains(t, b.BuildSimilarityConfig(), "title")
	require.NotNil(t, b.Similarity())

	b = newBuilder(t, "en", nil, map[string]any{config.KeySimilarity: "no_such_profile"})
	require.Nil(t, b.BuildSimilarityConfig())
}

func TestPluginsAreCopied(t *testing.T) {
	plugins := []string{"extra"}
	b := New("en", plugins, nil)
	plugins[0] = "changed"
	require.Equal(t, []string{"extra"}, b.Plugins())
	require.True(t, b.HasPlugin("extra"))
}

func TestHook(t *testing.T) {
	const marker = "test-hook-plugin"
	RegisterHook(func(tree *analysis.Tree, b *Builder) {
		if !b.HasPlugin(marker) {
			return
		}
		tree.Filters.Set("hooked", analysis.NewDefinition("type", "lowercase"))
		if def, ok := tree.Analyzer("plain"); ok {
			def.AppendFilter("hooked")
		}
	})

	tree := New("en", []string{marker}, nil).BuildConfig("en")
	require.True(t, tree.Filters.Has("hooked"))
	require.Contains(t, analyzer(t, tree, "plain").Filters(), "hooked")

	tree = New("en", nil, nil).BuildConfig("en")
	require.False(t, tree.Filters.Has("hooked"))
}

func TestBuildConfigIsDeterministic(t *testing.T) {
	b := New("en", append([]string{"analysis-icu", "extra"}, languagePlugins...), nil)
	first, err := json.Marshal(b.BuildConfig("en"))
	require.NoError(t, err)
	second, err := json.Marshal(b.BuildConfig("en"))
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(string(first), string(second)))
}
