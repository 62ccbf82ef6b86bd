/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package config

// Values of the ICU switches.
const (
	SwitchYes     = "yes"
	SwitchNo      = "no"
	SwitchDefault = "default"
)

// Setting keys, as they appear in config files and, upper-cased with the
// command prefix, in the environment.
const (
	KeyIcuTokenizer     = "icu_tokenizer"
	KeyIcuFolding       = "icu_folding"
	KeyUnicodeSetFilter = "icu_unicode_set_filter"
	KeySimilarity       = "similarity"
	KeySubphrases       = "subphrases"
	KeyReverseSuggest   = "reverse_suggest"
	KeyBannedPlugins    = "banned_plugins"
)

// FlagIcu is the super flag grouping the ICU options.
const FlagIcu = "icu"

// IcuDefaults are the defaults of the --icu super flag.
const IcuDefaults = `tokenizer=default; folding=default; unicode-set-filter=;`

// DefaultSimilarity is the similarity profile used when none is configured.
const DefaultSimilarity = "default"
