/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hypermodeinc/analysiscfg/analysiscfg/cmd/build"
	"github.com/hypermodeinc/analysiscfg/analysiscfg/cmd/compose"
	"github.com/hypermodeinc/analysiscfg/analysiscfg/cmd/filter"
	"github.com/hypermodeinc/analysiscfg/analysiscfg/cmd/version"
	"github.com/hypermodeinc/analysiscfg/x"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "analysiscfg",
	Short: "analysiscfg: analysis settings for search indices",
	Long: `
analysiscfg generates the "analysis" settings of a search index for a content
language and the analysis plugins installed on the cluster: analyzers, token
filters, char filters and tokenizers, plus the similarity settings. It can
also shrink settings to what a mapping actually uses.
` + x.BuildDetails(),
	PersistentPreRunE: cobra.NoArgs,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	goflag.Parse()
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootConf = viper.New()

var subcommands = []*x.SubCommand{
	&build.Build, &compose.Compose, &filter.Filter, &version.Version,
}

func init() {
	RootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")
	x.Check(rootConf.BindPFlags(RootCmd.PersistentFlags()))

	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	// glog writes to stderr only; the settings go to stdout.
	x.Check(flag.Set("logtostderr", "true"))

	for _, sc := range subcommands {
		RootCmd.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		x.Check(sc.Conf.BindPFlags(sc.Cmd.Flags()))
		x.Check(sc.Conf.BindPFlags(RootCmd.PersistentFlags()))
		sc.Conf.AutomaticEnv()
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
	}
	cobra.OnInitialize(func() {
		cfg := rootConf.GetString("config")
		if cfg == "" {
			return
		}
		for _, sc := range subcommands {
			sc.Conf.SetConfigFile(cfg)
			x.Checkf(sc.Conf.ReadInConfig(), "while reading config %s", cfg)
		}
	})
}
