/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package suggest builds the analysis settings of the completion suggester
// index. It shares the plugin and ICU decisions of package builder but emits
// a smaller tree of its own.
package suggest

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/hypermodeinc/analysiscfg/analysis"
	"github.com/hypermodeinc/analysiscfg/builder"
	"github.com/hypermodeinc/analysiscfg/langs"
)

// Version of the suggester analysis.
const Version = "1.4"

// MaxTokenCount bounds the tokens of a suggestion.
const MaxTokenCount = "20"

// wordBreaks flatten punctuation and the Unicode spaces the completion
// structure would treat as distinct break points.
var wordBreaks = func() []string {
	out := []string{
		`_=>\u0020`,
		`,=>\u0020`,
		`"=>\u0020`,
		`-=>\u0020`,
		`'=>\u0020`,
		`\u2019=>\u0020`,
		`\u02BC=>\u0020`,
		`;=>\u0020`,
		`\[=>\u0020`,
		`\]=>\u0020`,
		`{=>\u0020`,
		`}=>\u0020`,
		`\\=>\u0020`,
		`\u00a0=>\u0020`,
		`\u1680=>\u0020`,
		`\u180e=>\u0020`,
	}
	for r := 0x2000; r <= 0x200d; r++ {
		out = append(out, fmt.Sprintf(`\u%04x=>\u0020`, r))
	}
	return append(out,
		`\u202f=>\u0020`,
		`\u205f=>\u0020`,
		`\u3000=>\u0020`,
		`\ufeff=>\u0020`,
	)
}()

var arabicNumerals = func() []string {
	out := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		out = append(out, fmt.Sprintf(`\u066%d=>%d`, i, i))
	}
	return out
}()

var russianDiacritics = []string{
	`\u0301=>`,
	`\u0451=>\u0435`,
	`\u0401=>\u0415`,
	`\u0435\u0308=>\u0435`,
	`\u0415\u0308=>\u0415`,
}

// Builder builds suggester trees. Like builder.Builder it is safe for
// concurrent use once created.
type Builder struct {
	*builder.Builder
}

// New returns a suggester builder for lang on a cluster running plugins.
func New(lang string, plugins []string, cfg builder.Config) *Builder {
	return &Builder{Builder: builder.New(lang, plugins, cfg)}
}

// HasStopWords tells whether stop words are removed for lang.
func HasStopWords(lang string) bool {
	return langs.HasStopPack(lang)
}

// BuildConfig returns the suggester analysis for lang, or for the default
// language when lang is empty.
func (b *Builder) BuildConfig(lang string) *analysis.Tree {
	if lang == "" {
		lang = b.DefaultLanguage()
	}
	t := b.defaults(lang)
	b.customize(t, lang)
	return t
}

func custom(tokenizer string, filters ...string) *analysis.Definition {
	return analysis.NewDefinition(
		analysis.KeyType, analysis.TypeCustom,
		analysis.KeyFilter, filters,
		analysis.KeyTokenizer, tokenizer)
}

func mapping(mappings []string) *analysis.Definition {
	return analysis.NewDefinition(
		analysis.KeyType, "mapping",
		"mappings", append([]string(nil), mappings...))
}

func (b *Builder) defaults(lang string) *analysis.Tree {
	t := analysis.NewTree()

	lowercase := analysis.NewDefinition(analysis.KeyType, "lowercase")
	if b.IsIcuAvailable() {
		lowercase = analysis.NewDefinition(analysis.KeyType, "icu_normalizer", "name", "nfkc_cf")
	}
	folding := analysis.NewDefinition(analysis.KeyType, "asciifolding")
	if b.ShouldActivateIcuFolding(lang) {
		folding = analysis.NewDefinition(analysis.KeyType, "icu_folding")
		if set := b.ICUSetFilter(lang); set != "" {
			folding.Set("unicodeSetFilter", set)
		}
	}
	textTokenizer := "standard"
	// plain keeps whitespace: the ICU tokenizer would split on ':'.
	if b.ShouldActivateIcuTokenization(lang) {
		textTokenizer = "icu_tokenizer"
	}

	t.CharFilters.Set("word_break_helper", mapping(wordBreaks))

	f := t.Filters
	f.Set("stop_filter", analysis.NewDefinition(
		analysis.KeyType, "stop",
		"stopwords", langs.NoStopWords,
		"remove_trailing", "true"))
	f.Set("lowercase", lowercase)
	f.Set("accentfolding", folding)
	f.Set("token_limit", analysis.NewDefinition(
		analysis.KeyType, "limit",
		"max_token_count", MaxTokenCount))
	// Folding can leave empty tokens behind.
	f.Set("remove_empty", analysis.NewDefinition(
		analysis.KeyType, "length",
		"min", 1))

	a := t.Analyzers
	a.Set("stop_analyzer", custom(textTokenizer,
		"lowercase", "stop_filter", "accentfolding", "remove_empty", "token_limit"))
	// Stop words are kept at search time, "to be or not to be" must match.
	a.Set("stop_analyzer_search", custom(textTokenizer,
		"lowercase", "accentfolding", "remove_empty", "token_limit"))
	for _, name := range []string{"plain", "plain_search"} {
		a.Set(name, custom("whitespace", "remove_empty", "token_limit", "lowercase").
			SetCharFilters([]string{"word_break_helper"}))
	}
	if b.Config().CompletionSuggesterSubphrases() {
		for _, name := range []string{"subphrases", "subphrases_search"} {
			a.Set(name, custom(textTokenizer,
				"lowercase", "accentfolding", "remove_empty", "token_limit"))
		}
	}
	return t
}

func (b *Builder) customize(t *analysis.Tree, lang string) {
	stop, _ := t.Filters.Get("stop_filter")
	stop.Set("stopwords", langs.StopPack(lang))

	switch typ := b.DefaultTextAnalyzerType(lang); typ {
	case "arabic":
		plainCharFilter(t, "arabic_numeral_map", arabicNumerals)
	case "russian":
		plainCharFilter(t, "russian_diacritic_map", russianDiacritics)
	default:
		glog.V(3).Infof("No suggester customization for %s (%s)", lang, typ)
	}

	if !b.IsIcuAvailable() {
		return
	}
	for _, name := range []string{"stop_analyzer", "stop_analyzer_search"} {
		def, ok := t.Analyzers.Get(name)
		if !ok || !def.HasFilters() {
			continue
		}
		filters := def.Filters()
		for i, f := range filters {
			if f == "lowercase" {
				filters[i] = "icu_normalizer"
			}
		}
		def.SetFilters(filters)
	}
}

// plainCharFilter registers a mapping char filter, appends it to plain and
// makes plain_search a copy of plain.
func plainCharFilter(t *analysis.Tree, name string, mappings []string) {
	t.CharFilters.Set(name, mapping(mappings))
	plain, _ := t.Analyzers.Get("plain")
	plain.AppendCharFilter(name)
	t.Analyzers.Set("plain_search", plain.Clone())
}
