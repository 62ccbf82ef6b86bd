/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package langs

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

var canonicalCache struct {
	sync.Mutex
	m map[string]bool
}

// Known tells whether code is either a key of one of the tables here or a
// language tag that BCP47 recognizes. Wiki specific codes such as "simple"
// or "zh-min-nan" are known through the tables.
func Known(code string) bool {
	if code == "" {
		return false
	}
	if _, ok := analyzerTypes[code]; ok {
		return true
	}
	for _, u := range pluginUnlocks {
		if _, ok := u.languages[code]; ok {
			return true
		}
	}
	if icuFolding[code] || icuTokenization[code] {
		return true
	}

	canonicalCache.Lock()
	defer canonicalCache.Unlock()
	if canonicalCache.m == nil {
		canonicalCache.m = make(map[string]bool)
	}
	if known, ok := canonicalCache.m[code]; ok {
		return known
	}
	known := false
	// Parse gives its best guess; a base with no confidence means the tag is
	// new to the standard or simply invalid.
	if tag, err := language.Parse(code); err == nil && tag != language.Und {
		if _, conf := tag.Base(); conf > language.No {
			known = true
		}
	}
	canonicalCache.m[code] = known
	return known
}

// Normalize lowercases code and turns underscores into dashes, the form
// every table here is keyed by.
func Normalize(code string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(code)), "_", "-")
}
