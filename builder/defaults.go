/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package builder

import (
	"github.com/hypermodeinc/analysiscfg/analysis"
	"github.com/hypermodeinc/analysiscfg/langs"
)

// Names shared by the defaults and the rewrites.
const (
	tokStandard     = "standard"
	tokWhitespace   = "whitespace"
	tokNoSplitting  = "no_splitting"
	tokICU          = "icu_tokenizer"
	fLowercase      = "lowercase"
	fAsciiFolding   = "asciifolding"
	fAsciiPreserve  = "asciifolding_preserve"
	fICUNormalizer  = "icu_normalizer"
	fICUFolding     = "icu_folding"
	fNFKC           = "icu_nfkc_normalization"
	fRemoveEmpty    = "remove_empty"
	fRecorder       = "preserve_original_recorder"
	fPreserve       = "preserve_original"
	fDedup          = "dedup_asciifolding"
	cfWordBreak     = "word_break_helper"
	cfNearSpace     = "near_space_flattener"
	cfSourceText    = "word_break_helper_source_text"
	analyzerPlain   = "plain"
	analyzerText    = "text"
	analyzerTextSrc = "text_search"
)

// custom returns a custom analyzer made of kv.
func custom(kv ...any) *analysis.Definition {
	return analysis.NewDefinition(append([]any{analysis.KeyType, analysis.TypeCustom}, kv...)...)
}

func charMapping(mappings ...string) *analysis.Definition {
	return analysis.NewDefinition(analysis.KeyType, "mapping", "mappings", append([]string(nil), mappings...))
}

func list(names ...string) []string { return names }

// wordBreaks turn word joiners into spaces so the standard tokenizer splits
// on them.
var wordBreaks = []string{
	`_=>\u0020`,
	`.=>\u0020`,
	`(=>\u0020`,
	`)=>\u0020`,
}

// defaults returns the analysis shared by every language.
func (b *Builder) defaults(lang string) *analysis.Tree {
	t := analysis.NewTree()
	textType := b.DefaultTextAnalyzerType(lang)

	a := t.Analyzers
	// The word break helper is ignored by built-in language analyzers.
	a.Set(analyzerText, analysis.NewDefinition(
		analysis.KeyType, textType,
		analysis.KeyCharFilter, list(cfWordBreak)))
	a.Set(analyzerTextSrc, analysis.NewDefinition(
		analysis.KeyType, textType,
		analysis.KeyCharFilter, list(cfWordBreak)))
	// Unlike the built-in standard analyzer, no English stop words.
	a.Set(analyzerPlain, custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyFilter, list(fLowercase),
		analysis.KeyCharFilter, list(cfWordBreak)))
	// No accent squashing here, so searching with accents only finds accents.
	a.Set("plain_search", custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyFilter, list(fLowercase),
		analysis.KeyCharFilter, list(cfWordBreak)))
	a.Set("short_text", custom(
		analysis.KeyTokenizer, tokWhitespace,
		analysis.KeyFilter, list(fLowercase, "aggressive_splitting", fAsciiPreserve)))
	a.Set("short_text_search", custom(
		analysis.KeyTokenizer, tokWhitespace,
		analysis.KeyFilter, list(fLowercase, "aggressive_splitting")))
	a.Set("source_text_plain", custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyFilter, list(fLowercase),
		analysis.KeyCharFilter, list(cfSourceText)))
	a.Set("source_text_plain_search", custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyFilter, list(fLowercase),
		analysis.KeyCharFilter, list(cfSourceText)))
	a.Set("suggest", custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyFilter, list(fLowercase, "suggest_shingle")))
	a.Set("suggest_reverse", custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyFilter, list(fLowercase, "suggest_shingle", "reverse")))
	a.Set("token_reverse", custom(
		analysis.KeyTokenizer, tokNoSplitting,
		analysis.KeyFilter, list("reverse")))
	a.Set("near_match", custom(
		analysis.KeyTokenizer, tokNoSplitting,
		analysis.KeyFilter, list(fLowercase),
		analysis.KeyCharFilter, list(cfNearSpace)))
	a.Set("near_match_asciifolding", custom(
		analysis.KeyTokenizer, tokNoSplitting,
		analysis.KeyFilter, list("truncate_keyword", fLowercase, fAsciiFolding),
		analysis.KeyCharFilter, list(cfNearSpace)))
	a.Set("prefix", custom(
		analysis.KeyTokenizer, "prefix",
		analysis.KeyFilter, list(fLowercase),
		analysis.KeyCharFilter, list(cfNearSpace)))
	a.Set("prefix_asciifolding", custom(
		analysis.KeyTokenizer, "prefix",
		analysis.KeyFilter, list(fLowercase, fAsciiFolding),
		analysis.KeyCharFilter, list(cfNearSpace)))
	a.Set("word_prefix", custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyFilter, list(fLowercase, "prefix_ngram_filter")))
	a.Set("keyword", custom(
		analysis.KeyTokenizer, tokNoSplitting,
		analysis.KeyFilter, list("truncate_keyword")))
	a.Set("lowercase_keyword", custom(
		analysis.KeyTokenizer, tokNoSplitting,
		analysis.KeyFilter, list("truncate_keyword", fLowercase)))
	a.Set("trigram", custom(
		analysis.KeyTokenizer, "trigram",
		analysis.KeyFilter, list(fLowercase)))

	f := t.Filters
	f.Set("suggest_shingle", analysis.NewDefinition(
		analysis.KeyType, "shingle",
		"min_shingle_size", 2,
		"max_shingle_size", 3,
		"output_unigrams", true))
	f.Set(fLowercase, analysis.NewDefinition(analysis.KeyType, fLowercase))
	// "wi-fi-555" still finds "wi-fi-555" through the plain analysis.
	f.Set("aggressive_splitting", analysis.NewDefinition(
		analysis.KeyType, "word_delimiter",
		"stem_english_possessive", false,
		"preserve_original", false))
	f.Set("prefix_ngram_filter", analysis.NewDefinition(
		analysis.KeyType, "edgeNGram",
		"max_gram", MaxTitleSearch))
	f.Set(fAsciiFolding, analysis.NewDefinition(
		analysis.KeyType, fAsciiFolding,
		"preserve_original", false))
	f.Set(fAsciiPreserve, analysis.NewDefinition(
		analysis.KeyType, fAsciiFolding,
		"preserve_original", true))
	// Text fields truncated to the keyword limit stand in for keyword fields,
	// which cannot be normalized.
	f.Set("truncate_keyword", analysis.NewDefinition(
		analysis.KeyType, "truncate",
		"length", KeywordIgnoreAbove))

	tk := t.Tokenizers
	tk.Set("prefix", analysis.NewDefinition(
		analysis.KeyType, "edgeNGram",
		"max_gram", MaxTitleSearch))
	tk.Set(tokNoSplitting, analysis.NewDefinition(analysis.KeyType, "keyword"))
	tk.Set("trigram", analysis.NewDefinition(
		analysis.KeyType, "nGram",
		"min_gram", 3,
		"max_gram", 3))

	cf := t.CharFilters
	cf.Set(cfNearSpace, charMapping(
		`'=>\u0020`,
		`\u2019=>\u0020`, // right single quote
		`\u02BC=>\u0020`, // modifier letter apostrophe
		`_=>\u0020`,
		`-=>\u0020`,
	))
	cf.Set(cfWordBreak, charMapping(wordBreaks...))
	cf.Set(cfSourceText, charMapping(append(wordBreaks, `:=>\u0020`)...))

	var expand []string
	a.Each(func(name string, def *analysis.Definition) {
		if def.Type() == langs.DefaultType {
			expand = append(expand, name)
		}
	})
	for _, name := range expand {
		a.Set(name, custom(
			analysis.KeyTokenizer, tokStandard,
			analysis.KeyFilter, list(fLowercase)))
	}

	if b.icu {
		f.Set(fICUNormalizer, analysis.NewDefinition(
			analysis.KeyType, fICUNormalizer,
			"name", "nfkc_cf"))
	}
	return t
}
