/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package langs

// Languages where ICU folding is enabled when the folding switch is "default".
var icuFolding = map[string]bool{
	"bs":     true,
	"el":     true,
	"en":     true,
	"en-ca":  true,
	"en-gb":  true,
	"simple": true,
	"eo":     true,
	"fr":     true,
	"he":     true,
	"hr":     true,
	"sh":     true,
	"sk":     true,
	"sr":     true,
	"sv":     true,
}

// Languages where the ICU tokenizer is enabled when the tokenizer switch is
// "default": complex scripts first, then languages often written in mixed
// scripts.
var icuTokenization = map[string]bool{
	"bo":           true,
	"dz":           true,
	"gan":          true,
	"ja":           true,
	"km":           true,
	"lo":           true,
	"my":           true,
	"th":           true,
	"wuu":          true,
	"zh":           true,
	"lzh":          true,
	"zh-classical": true, // deprecated code for lzh
	"yue":          true,
	"zh-yue":       true, // deprecated code for yue

	"bug":        true,
	"cdo":        true,
	"cr":         true,
	"hak":        true,
	"jv":         true,
	"nan":        true,
	"zh-min-nan": true, // deprecated code for nan
}

// Characters ICU folding must leave alone, per language.
var unicodeSetFilters = map[string]string{
	"bs": "[^ĐđŽžĆćŠšČč]",
	"hr": "[^ĐđŽžĆćŠšČč]",
	"sh": "[^ĐđŽžĆćŠšČč]",
	"sr": "[^ĐđŽžĆćŠšČč]",
	"eo": "[^ĈĉĜĝĤĥĴĵŜŝŬŭ]",
	"fi": "[^åäöÅÄÖ]",
	"ru": "[^йЙ]",
	"sv": "[^åäöÅÄÖ]",
}

// IcuFolding tells whether code is on the ICU folding allow-list.
func IcuFolding(code string) bool { return icuFolding[code] }

// IcuTokenization tells whether code is on the ICU tokenizer allow-list.
func IcuTokenization(code string) bool { return icuTokenization[code] }

// UnicodeSetFilter returns the characters excluded from ICU folding for code,
// empty when nothing is excluded.
func UnicodeSetFilter(code string) string { return unicodeSetFilters[code] }
