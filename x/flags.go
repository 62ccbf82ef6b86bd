/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"github.com/spf13/pflag"
)

// Flags shared by the commands that build settings.
const (
	FlagLang    = "lang"
	FlagPlugins = "plugins"
	FlagReport  = "report"
	FlagPretty  = "pretty"
	FlagOut     = "out"
)

// FillCommonFlags stores flags common to the commands building settings.
func FillCommonFlags(flag *pflag.FlagSet) {
	flag.StringP(FlagLang, "l", "en", "Language code of the content to analyze.")
	flag.StringSliceP(FlagPlugins, "p", nil,
		"Analysis plugins installed on the cluster, e.g. analysis-icu,extra.")
	flag.String(FlagReport, "",
		`Write a JSON build report to this file, "stdout" or "stderr". Empty disables it.`)
	flag.Bool(FlagPretty, true, "Indent the generated settings.")
	flag.StringP(FlagOut, "o", "",
		`Write the settings to this file instead of stdout. A ".gz" or ".zst" suffix compresses it.`)
}
