/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package config

import (
	"github.com/dgraph-io/ristretto/v2/z"
	"github.com/spf13/pflag"
)

// AddFlags registers the settings read by FromViper on flag.
func AddFlags(flag *pflag.FlagSet) {
	flag.String(FlagIcu, IcuDefaults, z.NewSuperFlagHelp(IcuDefaults).
		Head("ICU options, used when the analysis-icu plugin is installed").
		Flag("tokenizer",
			`[yes, no, default] Use the ICU tokenizer in place of the standard one. "default"
			decides per language.`).
		Flag("folding",
			`[yes, no, default] Replace ASCII folding with ICU folding. Needs the extra
			plugin as well.`).
		Flag("unicode-set-filter",
			"Characters ICU folding must leave alone, e.g. [^åäöÅÄÖ]. Overrides the "+
				"per-language filter.").
		String())
	flag.String(KeySimilarity, DefaultSimilarity, "Similarity profile of the text fields.")
	flag.Bool(KeySubphrases, false, "Add the subphrases analyzers of the completion suggester.")
	flag.Bool(KeyReverseSuggest, false, "Add the reversed suggest sub-field to the mapping.")
	flag.StringSlice(KeyBannedPlugins, nil, "Plugins to ignore even when installed.")
}
