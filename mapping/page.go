/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package mapping

import (
	"github.com/golang/glog"

	"github.com/hypermodeinc/analysiscfg/similarity"
)

// PageVersion of the page mapping. Same rules as the analysis version.
const PageVersion = "1.10"

// PageType is the type name of the default content index mapping.
const PageType = "page"

// PositionIncrementGap separates the values of multi-valued text fields.
const PositionIncrementGap = 10

// PageOptions tunes BuildPage.
type PageOptions struct {
	// Similarity picks the similarity of every text field. Nil leaves it to
	// the index default.
	Similarity *similarity.Profile
	// ReverseSuggest adds the reversed sub-field of suggest.
	ReverseSuggest bool
	// PrefixStartWithAny adds the word_prefix sub-field of title.
	PrefixStartWithAny bool
}

// BuildPage returns the mapping of the page type, referencing the analyzers
// the builders emit. It gives the analysis filter a realistic set of roots.
func BuildPage(opts PageOptions) Mappings {
	p := pageFields{opts: opts}

	titleExtra := []string{
		"prefix", "prefix_asciifolding", "near_match", "near_match_asciifolding", "keyword",
	}
	if opts.PrefixStartWithAny {
		titleExtra = append(titleExtra, "word_prefix")
	}
	titleExtra = append(titleExtra, "trigram")

	text := p.text("text")
	text["fields"].(map[string]any)["word_count"] = map[string]any{
		"type":     "token_count",
		"store":    true,
		"analyzer": "plain",
	}

	redirect := map[string]any{
		"namespace": map[string]any{"type": "long"},
		"title":     p.text("redirect.title", titleExtra...),
	}
	sites := map[string]any{
		"lowercase_keyword": p.subField("local_sites_with_dupe", "lowercase_keyword"),
	}
	props := map[string]any{
		"timestamp":             map[string]any{"type": "date", "format": "dateOptionalTime"},
		"wiki":                  keyword(),
		"namespace":             map[string]any{"type": "long"},
		"namespace_text":        keyword(),
		"title":                 p.text("title", titleExtra...),
		"text":                  text,
		"source_text":           p.sourceText(),
		"suggest":               p.suggest(),
		"redirect":              map[string]any{"dynamic": false, KeyProperties: redirect},
		"heading":               p.text("heading"),
		"opening_text":          p.text("opening_text"),
		"auxiliary_text":        p.text("auxiliary_text"),
		"category":              p.text("category", "lowercase_keyword"),
		"external_link":         keyword(),
		"local_sites_with_dupe": map[string]any{"type": "keyword", KeyFields: sites},
	}
	return Mappings{
		PageType: map[string]any{
			"dynamic":     false,
			"_source":     map[string]any{"enabled": true},
			KeyProperties: props,
		},
	}
}

type pageFields struct {
	opts PageOptions
}

func keyword() map[string]any {
	return map[string]any{"type": "keyword"}
}

// withSimilarity sets the similarity of field when the profile knows it.
func (p pageFields) withSimilarity(def map[string]any, field, analyzer string) map[string]any {
	if p.opts.Similarity == nil {
		return def
	}
	sim, err := p.opts.Similarity.Field(field, analyzer)
	if err != nil {
		glog.Warningf("No similarity for %s: %v", field, err)
		return def
	}
	def["similarity"] = sim
	return def
}

// text returns a text field analyzed with text and text_search, with a plain
// sub-field and one sub-field per extra analyzer.
func (p pageFields) text(name string, extra ...string) map[string]any {
	fields := map[string]any{
		"plain": p.withSimilarity(map[string]any{
			"type":                   "text",
			"analyzer":               "plain",
			"search_analyzer":        "plain_search",
			"position_increment_gap": PositionIncrementGap,
		}, name, "plain"),
	}
	for _, analyzer := range extra {
		fields[analyzer] = p.subField(name, analyzer)
	}
	return p.withSimilarity(map[string]any{
		"type":                   "text",
		"analyzer":               "text",
		"search_analyzer":        "text_search",
		"position_increment_gap": PositionIncrementGap,
		KeyFields:                fields,
	}, name, "")
}

func (p pageFields) subField(field, analyzer string) map[string]any {
	def := map[string]any{
		"type":     "text",
		"analyzer": analyzer,
	}
	switch analyzer {
	case "prefix":
		def["search_analyzer"] = "near_match"
		def["index_options"] = "docs"
		def["norms"] = false
	case "prefix_asciifolding":
		def["search_analyzer"] = "near_match_asciifolding"
		def["index_options"] = "docs"
		def["norms"] = false
	case "word_prefix":
		def["search_analyzer"] = "plain_search"
		def["index_options"] = "docs"
		def["norms"] = false
	case "keyword", "lowercase_keyword":
		def["norms"] = false
	}
	return p.withSimilarity(def, field, analyzer)
}

func (p pageFields) sourceText() map[string]any {
	plain := p.withSimilarity(map[string]any{
		"type":                   "text",
		"analyzer":               "source_text_plain",
		"search_analyzer":        "source_text_plain_search",
		"position_increment_gap": PositionIncrementGap,
	}, "source_text", "plain")
	return map[string]any{
		"type":  "text",
		"index": false,
		KeyFields: map[string]any{
			"plain":   plain,
			"trigram": p.subField("source_text", "trigram"),
		},
	}
}

func (p pageFields) suggest() map[string]any {
	def := p.withSimilarity(map[string]any{
		"type":          "text",
		"analyzer":      "suggest",
		"index_options": "freqs",
	}, "suggest", "")
	if p.opts.ReverseSuggest {
		def[KeyFields] = map[string]any{
			"reverse": p.withSimilarity(map[string]any{
				"type":            "text",
				"analyzer":        "suggest_reverse",
				"search_analyzer": "suggest_reverse",
				"index_options":   "freqs",
			}, "suggest", "reverse"),
		}
	}
	return def
}
