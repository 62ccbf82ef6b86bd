/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package compose

import (
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hypermodeinc/analysiscfg/analysiscfg/cmd/build"
	"github.com/hypermodeinc/analysiscfg/builder"
	"github.com/hypermodeinc/analysiscfg/config"
	"github.com/hypermodeinc/analysiscfg/langs"
	"github.com/hypermodeinc/analysiscfg/x"
)

// Compose is the sub-command invoked when running "analysiscfg compose".
var Compose x.SubCommand

func init() {
	Compose.Cmd = &cobra.Command{
		Use:   "compose",
		Short: "Merge the analyzers of several languages into one index",
		Long: `
Build the analysis of --lang, then copy the --analyzers of every language of
--languages into it as "{lang}_{analyzer}", together with the filters, char
filters and tokenizers they need.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout())
		},
	}
	Compose.EnvPrefix = "ANALYSISCFG"

	flag := Compose.Cmd.Flags()
	x.FillCommonFlags(flag)
	config.AddFlags(flag)
	flag.StringSlice("languages", nil, "Languages to merge, e.g. en,fr,de.")
	flag.StringSlice("analyzers", []string{"text", "text_search"},
		"Analyzers copied from every language.")
}

func run(w io.Writer) error {
	in, err := build.ReadInputs(&Compose)
	if err != nil {
		return err
	}
	defer in.Report.Sync()

	languages := Compose.GetStringSliceP("languages", "", nil)
	if len(languages) == 0 {
		return errors.New("--languages is required")
	}
	for i, lang := range languages {
		languages[i] = langs.Normalize(lang)
		if !langs.Known(languages[i]) {
			glog.Warningf("Unknown language %q, its analyzers use the default analysis", lang)
		}
	}
	analyzers := Compose.GetStringSliceP("analyzers", "", []string{"text", "text_search"})

	b := builder.New(in.Lang, in.Plugins, in.Settings)
	tree := b.BuildLanguageConfigs(b.BuildConfig(""), languages, analyzers)
	glog.V(1).Infof("Composed %d languages into %d analyzers", len(languages), tree.Analyzers.Len())

	out := x.Output{
		Analysis:   tree,
		Similarity: b.BuildSimilarityConfig(),
		Version:    builder.Version,
	}
	if out.Fingerprint, err = build.Fingerprint(tree); err != nil {
		return err
	}
	return build.Write(w, in, "compose", tree, out)
}
