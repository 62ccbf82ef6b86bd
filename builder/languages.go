/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package builder

import (
	"fmt"

	"github.com/hypermodeinc/analysiscfg/analysis"
	"github.com/hypermodeinc/analysiscfg/langs"
	"github.com/hypermodeinc/analysiscfg/x"
)

// Override customizes the default analysis of one analyzer type.
type Override func(b *Builder, t *analysis.Tree)

var overrides = make(map[string]Override)

func registerOverride(o Override, types ...string) {
	for _, typ := range types {
		_, ok := overrides[typ]
		x.AssertTruef(!ok, "Duplicate analysis override for %s", typ)
		overrides[typ] = o
	}
}

// Keep these sorted by analyzer type.
func init() {
	registerOverride(serbian, "bosnian", "croatian", "serbian", "serbo-croatian")
	registerOverride(chinese(false), "chinese")
	registerOverride(chinese(true), "chinese_surrogate_fix")
	registerOverride(english, "english")
	registerOverride(esperanto, "esperanto")
	registerOverride(french, "french")
	registerOverride(greek, "greek")
	registerOverride(hebrew, "hebrew")
	registerOverride(indonesian, "indonesian", "malay")
	registerOverride(lowercaseLanguage("irish"), "irish")
	registerOverride(italian, "italian")
	registerOverride(japanese, "japanese")
	registerOverride(korean, "korean")
	registerOverride(mirandese, "mirandese")
	registerOverride(polish, "polish")
	registerOverride(russian, "russian")
	registerOverride(slovak, "slovak")
	registerOverride(swedish, "swedish")
	registerOverride(lowercaseLanguage("turkish"), "turkish")
}

// setText installs text and a copy of it as text_search.
func setText(t *analysis.Tree, text *analysis.Definition) {
	t.Analyzers.Set(analyzerText, text)
	t.Analyzers.Set(analyzerTextSrc, text.Clone())
}

func appendFilter(t *analysis.Tree, analyzer string, filters ...string) {
	if def, ok := t.Analyzers.Get(analyzer); ok {
		def.AppendFilter(filters...)
	}
}

func appendCharFilter(t *analysis.Tree, analyzer string, filters ...string) {
	if def, ok := t.Analyzers.Get(analyzer); ok {
		def.AppendCharFilter(filters...)
	}
}

func stop(words any) *analysis.Definition {
	return analysis.NewDefinition(analysis.KeyType, "stop", "stopwords", words)
}

func stemmer(language string) *analysis.Definition {
	return analysis.NewDefinition(analysis.KeyType, "stemmer", "language", language)
}

func minLength(min int) *analysis.Definition {
	return analysis.NewDefinition(analysis.KeyType, "length", "min", min)
}

func elision(articlesCase bool, articles ...string) *analysis.Definition {
	d := analysis.NewDefinition(analysis.KeyType, "elision")
	if articlesCase {
		d.Set("articles_case", true)
	}
	return d.Set("articles", articles)
}

// lowercaseLanguage keeps language specific lowercasing. The ICU rewrite
// leaves such a lowercase filter in front of the normalizer.
func lowercaseLanguage(language string) Override {
	return func(_ *Builder, t *analysis.Tree) {
		if def, ok := t.Filters.Get(fLowercase); ok {
			def.Set("language", language)
		}
	}
}

func serbian(_ *Builder, t *analysis.Tree) {
	setText(t, custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyFilter, list(fLowercase, fAsciiFolding, "serbian_stemmer")))
}

func chinese(surrogates bool) Override {
	return func(_ *Builder, t *analysis.Tree) {
		// Works around STConvert conversion errors.
		t.CharFilters.Set("stconvertfix", charMapping(
			`\u606d\u5f18=>\u606d \u5f18`,
			`\u5138=>\u3469`,
		))
		t.CharFilters.Set("tsconvert", analysis.NewDefinition(
			analysis.KeyType, "stconvert",
			"delimiter", "#",
			"keep_both", false,
			"convert_type", "t2s"))
		// SmartCN turns most punctuation into ",".
		t.Filters.Set("smartcn_stop", stop(list(",")))

		var filters []string
		if surrogates {
			// Drops the empty tokens left by surrogate pairs.
			filters = append(filters, "surrogate_merger")
		}
		filters = append(filters, "smartcn_stop", fLowercase)
		setText(t, custom(
			analysis.KeyTokenizer, "smartcn_tokenizer",
			analysis.KeyCharFilter, list("stconvertfix", "tsconvert"),
			analysis.KeyFilter, filters))

		for _, name := range []string{analyzerPlain, "plain_search"} {
			if def, ok := t.Analyzers.Get(name); ok {
				def.SetFilters(list("smartcn_stop", fLowercase))
			}
		}
	}
}

// kanaMappings maps hiragana to katakana. The small vu, ka and ke follow
// their full size letters.
func kanaMappings() []string {
	after := map[rune]rune{0x3046: 0x3094, 0x304a: 0x3095, 0x3050: 0x3096}
	var out []string
	add := func(r rune) {
		out = append(out, fmt.Sprintf(`\u%04x=>\u%04x`, r, r+0x60))
	}
	for r := rune(0x3041); r <= 0x3093; r++ {
		add(r)
		if small, ok := after[r]; ok {
			add(small)
		}
	}
	return out
}

func english(_ *Builder, t *analysis.Tree) {
	t.CharFilters.Set("kana_map", charMapping(kanaMappings()...))
	t.Filters.Set("possessive_english", stemmer("possessive_english"))
	setText(t, custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyCharFilter, list(cfWordBreak, "kana_map"),
		analysis.KeyFilter, list(
			"aggressive_splitting",
			"possessive_english",
			fLowercase,
			"stop",
			fAsciiFolding,
			"kstem",
			"custom_stem",
		)))
	// plain_search stays unfolded.
	appendFilter(t, analyzerPlain, fAsciiPreserve)
	appendFilter(t, "lowercase_keyword", fAsciiPreserve)
	t.Filters.Set("custom_stem", analysis.NewDefinition(
		analysis.KeyType, "stemmer_override",
		"rules", "guidelines => guideline"))
}

func esperanto(_ *Builder, t *analysis.Tree) {
	setText(t, custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyFilter, list(fLowercase, fAsciiFolding, "esperanto_stemmer")))
}

func french(b *Builder, t *analysis.Tree) {
	appendFilter(t, "lowercase_keyword", fAsciiPreserve)
	t.CharFilters.Set("french_charfilter", charMapping(
		`\u0130=>I`,      // dotted I
		`\u02BC=>\u0027`, // modifier apostrophe
	))
	t.Filters.Set("french_elision", elision(true,
		"l", "m", "t", "qu", "n", "s",
		"j", "d", "c", "jusqu", "quoiqu",
		"lorsqu", "puisqu"))
	t.Filters.Set("french_stop", stop("_french_"))
	t.Filters.Set("french_stemmer", stemmer("light_french"))

	var filters []string
	if b.HasPlugin(PluginHomoglyph) {
		filters = append(filters, "homoglyph_norm")
	}
	filters = append(filters,
		"french_elision",
		fLowercase,
		"french_stop",
		"french_stemmer",
		fAsciiPreserve)
	setText(t, custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyCharFilter, list("french_charfilter"),
		analysis.KeyFilter, filters))
}

func greek(b *Builder, t *analysis.Tree) {
	lowercaseLanguage("greek")(b, t)
	t.Filters.Set("greek_stop", stop("_greek_"))
	t.Filters.Set("greek_stemmer", stemmer("greek"))
	t.Filters.Set("greek_length", minLength(1))
	setText(t, custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyFilter, list(fLowercase, "greek_stop", "greek_stemmer", "greek_length")))
}

func hebrew(_ *Builder, t *analysis.Tree) {
	setText(t, custom(
		analysis.KeyTokenizer, "hebrew",
		analysis.KeyFilter, list("niqqud", "hebrew_lemmatizer", fLowercase, fAsciiFolding)))
}

func indonesian(_ *Builder, t *analysis.Tree) {
	t.CharFilters.Set("indonesian_charfilter", charMapping(`\u0130=>I`))
	t.Filters.Set("indonesian_stop", stop("_indonesian_"))
	t.Filters.Set("indonesian_stemmer", stemmer("indonesian"))
	setText(t, custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyCharFilter, list("indonesian_charfilter"),
		analysis.KeyFilter, list(fLowercase, "indonesian_stop", "indonesian_stemmer")))
}

func italian(_ *Builder, t *analysis.Tree) {
	t.Filters.Set("italian_elision", elision(false,
		"c", "l", "all", "dall", "dell", "nell", "sull",
		"coll", "pell", "gl", "agl", "dagl", "degl", "negl",
		"sugl", "un", "m", "t", "s", "v", "d"))
	t.Filters.Set("italian_stop", stop("_italian_"))
	t.Filters.Set("light_italian_stemmer", stemmer("light_italian"))
	setText(t, custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyCharFilter, list(cfWordBreak),
		analysis.KeyFilter, list(
			"italian_elision",
			"aggressive_splitting",
			fLowercase,
			"italian_stop",
			"light_italian_stemmer",
			fAsciiFolding,
		)))
	appendFilter(t, analyzerPlain, fAsciiPreserve)
	appendFilter(t, "lowercase_keyword", fAsciiPreserve)
}

func japanese(_ *Builder, t *analysis.Tree) {
	// Kuromoji mangles fullwidth digits.
	digits := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		digits = append(digits, fmt.Sprintf(`\uff1%d=>%d`, i, i))
	}
	t.CharFilters.Set("fullwidthnumfix", charMapping(digits...))
	setText(t, custom(
		analysis.KeyCharFilter, list("fullwidthnumfix"),
		analysis.KeyTokenizer, "kuromoji_tokenizer",
		analysis.KeyFilter, list(
			"kuromoji_baseform",
			"cjk_width",
			"ja_stop",
			"kuromoji_stemmer",
			fLowercase,
		)))
}

func korean(_ *Builder, t *analysis.Tree) {
	// mixed keeps compounds along with their parts.
	t.Tokenizers.Set("nori_tok", analysis.NewDefinition(
		analysis.KeyType, "nori_tokenizer",
		"decompound_mode", "mixed"))
	t.CharFilters.Set("nori_charfilter", charMapping(
		`\u0130=>I`,
		`\u00B7=>\u0020`,
		`\u318D=>\u0020`,
		`\u00AD=>`,
		`\u200C=>`,
	))
	t.CharFilters.Set("nori_combo_filter", analysis.NewDefinition(
		analysis.KeyType, "pattern_replace",
		"pattern", `[\u0300-\u0331]`,
		"replacement", ""))
	t.Filters.Set("nori_length", minLength(1))
	t.Filters.Set("nori_posfilter", analysis.NewDefinition(
		analysis.KeyType, "nori_part_of_speech",
		"stoptags", list("E", "IC", "J", "MAG", "MAJ", "MM", "SP", "SSC",
			"SSO", "SC", "SE", "XPN", "XSA", "XSN", "XSV", "UNA", "NA",
			"VSV", "VCP", "VCN", "VX")))
	setText(t, custom(
		analysis.KeyTokenizer, "nori_tok",
		analysis.KeyCharFilter, list("nori_charfilter", "nori_combo_filter"),
		analysis.KeyFilter, list("nori_posfilter", "nori_readingform", fLowercase, "nori_length")))
}

func mirandese(_ *Builder, t *analysis.Tree) {
	t.Filters.Set("mirandese_elision", elision(true, "l", "d", "qu"))
	t.Filters.Set("mirandese_stop", stop(langs.MirandeseStopWords()))
	setText(t, custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyFilter, list(fLowercase, "mirandese_elision", "mirandese_stop")))
}

func polish(_ *Builder, t *analysis.Tree) {
	t.CharFilters.Set("polish_charfilter", charMapping(`\u0130=>I`))
	t.Filters.Set("polish_stop", stop(langs.PolishStopWords()))
	// Stempel is statistical; some of its stems are too poor to keep.
	t.Filters.Set("stempel_pattern_filter", analysis.NewDefinition(
		analysis.KeyType, "pattern_replace",
		"pattern", `^([a-zął]?[a-zćń]|..ć|\d.*ć)$`,
		"replacement", ""))
	t.Filters.Set("stempel_length", minLength(1))
	t.Filters.Set("stempel_stop", stop(langs.StempelBadStems()))
	setText(t, custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyCharFilter, list("polish_charfilter"),
		analysis.KeyFilter, list(
			fLowercase,
			"polish_stop",
			"polish_stem",
			"stempel_pattern_filter",
			"stempel_length",
			"stempel_stop",
		)))
}

func russian(_ *Builder, t *analysis.Tree) {
	// Drops stress marks and folds ё to е.
	t.CharFilters.Set("russian_charfilter", charMapping(
		`\u0301=>`,
		`\u0130=>I`,
		`\u0435\u0308=>\u0435`,
		`\u0415\u0308=>\u0415`,
		`\u0451=>\u0435`,
		`\u0401=>\u0415`,
	))
	if def, ok := t.CharFilters.Get(cfNearSpace); ok {
		def.Set("mappings", append(def.Strings("mappings"),
			`\u0301=>`,
			`\u0451=>\u0435`,
			`\u0401=>\u0415`,
			`\u0435\u0308=>\u0435`,
			`\u0415\u0308=>\u0415`,
		))
	}
	for _, name := range []string{analyzerPlain, "plain_search", "suggest", "suggest_reverse"} {
		appendCharFilter(t, name, "russian_charfilter")
	}
	t.Filters.Set("russian_stop", stop("_russian_"))
	t.Filters.Set("russian_stemmer", stemmer("russian"))
	setText(t, custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyCharFilter, list("russian_charfilter"),
		analysis.KeyFilter, list(fLowercase, "russian_stop", "russian_stemmer")))
}

func slovak(_ *Builder, t *analysis.Tree) {
	setText(t, custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyFilter, list(fLowercase, "slovak_stemmer", fAsciiFolding)))
}

func swedish(_ *Builder, t *analysis.Tree) {
	appendFilter(t, "lowercase_keyword", fAsciiPreserve)
	t.Filters.Set("swedish_stop", stop("_swedish_"))
	t.Filters.Set("swedish_stemmer", stemmer("swedish"))
	setText(t, custom(
		analysis.KeyTokenizer, tokStandard,
		analysis.KeyFilter, list(fLowercase, "swedish_stop", "swedish_stemmer", fAsciiPreserve)))
}
