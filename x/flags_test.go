/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestCommonFlags(t *testing.T) {
	flags := pflag.NewFlagSet("build", pflag.ContinueOnError)
	FillCommonFlags(flags)
	require.NoError(t, flags.Parse([]string{"-l", "fr", "--plugins", "analysis-icu,extra", "--pretty=false"}))

	conf := viper.New()
	require.NoError(t, conf.BindPFlags(flags))
	sc := SubCommand{Conf: conf}
	require.Equal(t, "fr", sc.GetStringP(FlagLang, "l", "en"))
	require.Equal(t, []string{"analysis-icu", "extra"}, sc.GetStringSliceP(FlagPlugins, "p", nil))
	require.False(t, sc.GetBoolP(FlagPretty, "", true))
	// Flags left alone fall back to the given default.
	require.Equal(t, "stderr", sc.GetStringP(FlagReport, "", "stderr"))
}

func TestSubCommandDefaults(t *testing.T) {
	sc := SubCommand{Conf: viper.New()}
	require.Equal(t, "en", sc.GetStringP(FlagLang, "l", "en"))
	require.Nil(t, sc.GetStringSliceP(FlagPlugins, "p", nil))
	require.False(t, sc.GetBoolP(FlagPretty, "", false))
}
