/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package langs holds the read-only language tables the analysis builders
// consult: language code to analyzer type, the plugins that unlock better
// analysis for some languages, the ICU allow-lists and the stop word packs.
//
// Every table is unexported; lookups return copies so callers cannot change
// them.
package langs

import (
	"strings"
)

// DefaultType is the analyzer type of languages without a dedicated entry.
const DefaultType = "default"

// Languages with a built-in search engine analyzer.
var analyzerTypes = map[string]string{
	"ar":     "arabic",
	"hy":     "armenian",
	"eu":     "basque",
	"pt-br":  "brazilian",
	"bg":     "bulgarian",
	"ca":     "catalan",
	"ja":     "cjk",
	"ko":     "cjk",
	"cs":     "czech",
	"da":     "danish",
	"nl":     "dutch",
	"en":     "english",
	"en-ca":  "english",
	"en-gb":  "english",
	"simple": "english",
	"fi":     "finnish",
	"fr":     "french",
	"gl":     "galician",
	"de":     "german",
	"el":     "greek",
	"hi":     "hindi",
	"hu":     "hungarian",
	"id":     "indonesian",
	"ga":     "irish",
	"it":     "italian",
	"lt":     "lithuanian",
	"lv":     "latvian",
	"ms":     "malay",
	"mwl":    "mirandese",
	"nb":     "norwegian",
	"nn":     "norwegian",
	"fa":     "persian",
	"pt":     "portuguese",
	"ro":     "romanian",
	"ru":     "russian",
	"ckb":    "sorani",
	"es":     "spanish",
	"sv":     "swedish",
	"tr":     "turkish",
	"th":     "thai",
}

// unlock maps languages to analyzer types that are only available when every
// plugin in Plugins is installed.
type unlock struct {
	plugins   []string
	languages map[string]string
}

// Applied in order: the surrogate fix must come after plain chinese so it wins
// when both sets of plugins are installed.
var pluginUnlocks = []unlock{
	{[]string{"analysis-stempel"}, map[string]string{"pl": "polish"}},
	{[]string{"analysis-kuromoji"}, map[string]string{"ja": "japanese"}},
	{[]string{"analysis-stconvert", "analysis-smartcn"}, map[string]string{"zh": "chinese"}},
	{
		[]string{"extra-analysis-surrogates", "analysis-stconvert", "analysis-smartcn"},
		map[string]string{"zh": "chinese_surrogate_fix"},
	},
	{[]string{"analysis-hebrew"}, map[string]string{"he": "hebrew"}},
	{[]string{"analysis-ukrainian"}, map[string]string{"uk": "ukrainian"}},
	{[]string{"extra-analysis-esperanto"}, map[string]string{"eo": "esperanto"}},
	{[]string{"extra-analysis-serbian"}, map[string]string{
		"bs": "bosnian",
		"hr": "croatian",
		"sh": "serbo-croatian",
		"sr": "serbian",
	}},
	{[]string{"extra-analysis-slovak"}, map[string]string{"sk": "slovak"}},
	{[]string{"analysis-nori"}, map[string]string{"ko": "korean"}},
}

// AnalyzerTypes returns the language code to analyzer type table for a
// cluster running the given plugins.
func AnalyzerTypes(plugins []string) map[string]string {
	installed := make(map[string]struct{}, len(plugins))
	for _, p := range plugins {
		installed[p] = struct{}{}
	}

	out := make(map[string]string, len(analyzerTypes)+len(pluginUnlocks))
	for code, typ := range analyzerTypes {
		out[code] = typ
	}
	for _, u := range pluginUnlocks {
		if !allInstalled(installed, u.plugins) {
			continue
		}
		for code, typ := range u.languages {
			out[code] = typ
		}
	}
	return out
}

func allInstalled(installed map[string]struct{}, plugins []string) bool {
	for _, p := range plugins {
		if _, ok := installed[p]; !ok {
			return false
		}
	}
	return true
}

// UnlockingPlugins returns, for display, the comma-joined plugin requirements
// that unlock a dedicated analyzer for code.
func UnlockingPlugins(code string) []string {
	var out []string
	for _, u := range pluginUnlocks {
		if _, ok := u.languages[code]; ok {
			out = append(out, strings.Join(u.plugins, ","))
		}
	}
	return out
}
