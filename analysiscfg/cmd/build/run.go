/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package build

import (
	"io"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hypermodeinc/analysiscfg/analysis"
	"github.com/hypermodeinc/analysiscfg/builder"
	"github.com/hypermodeinc/analysiscfg/config"
	"github.com/hypermodeinc/analysiscfg/langs"
	"github.com/hypermodeinc/analysiscfg/mapping"
	"github.com/hypermodeinc/analysiscfg/optimize"
	"github.com/hypermodeinc/analysiscfg/suggest"
	"github.com/hypermodeinc/analysiscfg/x"
)

// Build is the sub-command invoked when running "analysiscfg build".
var Build x.SubCommand

func init() {
	Build.Cmd = &cobra.Command{
		Use:   "build",
		Short: "Generate the analysis settings of a language",
		Long: `
Generate the analysis settings of a content index, or of a completion
suggester index with --suggester, for a language and a set of installed
plugins. With --mapping the page mapping is printed too, and --optimize
drops whatever that mapping does not use. Neither applies to --suggester.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout())
		},
	}
	Build.EnvPrefix = "ANALYSISCFG"

	flag := Build.Cmd.Flags()
	x.FillCommonFlags(flag)
	config.AddFlags(flag)
	flag.Bool("suggester", false, "Generate the completion suggester analysis.")
	flag.Bool("mapping", false, "Print the page mapping along with the analysis.")
	flag.Bool("optimize", false,
		"Merge identical components and drop what the page mapping does not use. Implies --mapping.")
	flag.Bool("prefix_start_with_any", false, "Add the word_prefix sub-field to titles.")
}

// Inputs is what every command reads from its configuration.
type Inputs struct {
	Lang     string
	Plugins  []string
	Settings *config.Settings
	Pretty   bool
	Out      string
	Report   *x.Logger
}

// ReadInputs resolves the language, the plugins and the settings of sc.
// The language code is normalized and banned plugins are dropped. Close the returned report logger with Sync.
func ReadInputs(sc *x.SubCommand) (*Inputs, error) {
	settings, err := config.FromViper(sc.Conf)
	if err != nil {
		return nil, err
	}
	in := &Inputs{
		Lang:     langs.Normalize(sc.GetStringP(x.FlagLang, "l", "en")),
		Settings: settings,
		Pretty:   sc.GetBoolP(x.FlagPretty, "", true),
		Out:      sc.GetStringP(x.FlagOut, "o", ""),
	}
	in.Plugins = settings.FilterPlugins(sc.GetStringSliceP(x.FlagPlugins, "p", nil))
	if !langs.Known(in.Lang) {
		glog.Warningf("Unknown language %q, using the default analysis", in.Lang)
	}
	if path := sc.GetStringP(x.FlagReport, "", ""); path != "" {
		if in.Report, err = x.InitLogger(path); err != nil {
			return nil, err
		}
	}
	return in, nil
}

// Fingerprint formats the fingerprint of t.
func Fingerprint(t *analysis.Tree) (string, error) {
	fp, err := analysis.Fingerprint(t)
	if err != nil {
		return "", x.Wrapf(err, "while fingerprinting analysis")
	}
	return strconv.FormatUint(fp, 16), nil
}

// Write prints out to w, or to the --out file, and reports its size.
func Write(w io.Writer, in *Inputs, cmd string, t *analysis.Tree, out x.Output) (rerr error) {
	dst, err := x.CreateOutput(in.Out, w)
	if err != nil {
		return err
	}
	defer func() {
		if err := dst.Close(); err != nil && rerr == nil {
			rerr = x.Wrapf(err, "while closing output")
		}
	}()

	size, err := x.WriteJSON(dst, out, in.Pretty)
	if err != nil {
		in.Report.ReportE(cmd, "lang", in.Lang, "error", err.Error())
		return err
	}
	glog.V(2).Infof("Wrote %s of settings for %s", size, in.Lang)
	in.Report.ReportI(cmd,
		"lang", in.Lang,
		"plugins", in.Plugins,
		"version", out.Version,
		"fingerprint", out.Fingerprint,
		"analyzers", t.Analyzers.Len(),
		"filters", t.Filters.Len(),
		"char_filters", t.CharFilters.Len(),
		"tokenizers", t.Tokenizers.Len(),
		"size", size)
	return nil
}

func run(w io.Writer) error {
	suggester := Build.Conf.GetBool("suggester")
	optimized := Build.Conf.GetBool("optimize")
	withMapping := optimized || Build.Conf.GetBool("mapping")
	if suggester && withMapping {
		// The page mapping references none of the suggester analyzers.
		return errors.New("--mapping and --optimize cannot be used with --suggester")
	}

	in, err := ReadInputs(&Build)
	if err != nil {
		return err
	}
	defer in.Report.Sync()

	var (
		tree    *analysis.Tree
		version string
		b       *builder.Builder
	)
	if suggester {
		sb := suggest.New(in.Lang, in.Plugins, in.Settings)
		tree, version, b = sb.BuildConfig(""), suggest.Version, sb.Builder
	} else {
		b = builder.New(in.Lang, in.Plugins, in.Settings)
		tree, version = b.BuildConfig(""), builder.Version
	}

	out := x.Output{
		Similarity: b.BuildSimilarityConfig(),
		Version:    version,
	}
	if withMapping {
		page := mapping.BuildPage(mapping.PageOptions{
			Similarity:         b.Similarity(),
			ReverseSuggest:     in.Settings.ReverseSuggest(),
			PrefixStartWithAny: Build.Conf.GetBool("prefix_start_with_any"),
		})
		if optimized {
			if tree, page, err = optimize.FilterAnalysis(tree, page, true); err != nil {
				return err
			}
		}
		out.Mappings = page
	}
	out.Analysis = tree
	if out.Fingerprint, err = Fingerprint(tree); err != nil {
		return err
	}
	return Write(w, in, "build", tree, out)
}
