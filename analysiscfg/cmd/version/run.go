/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package version

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hypermodeinc/analysiscfg/builder"
	"github.com/hypermodeinc/analysiscfg/mapping"
	"github.com/hypermodeinc/analysiscfg/suggest"
	"github.com/hypermodeinc/analysiscfg/x"
)

// Version is the sub-command invoked when running "analysiscfg version".
var Version x.SubCommand

func init() {
	Version.Cmd = &cobra.Command{
		Use:   "version",
		Short: "Prints the analysiscfg version details",
		Long: "Version prints the build details and the versions of the settings " +
			"formats the binary generates.",
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersions(cmd.OutOrStdout())
		},
	}
	Version.EnvPrefix = "ANALYSISCFG"
}

func printVersions(w io.Writer) {
	fmt.Fprint(w, x.BuildDetails())
	fmt.Fprintf(w, `
Analysis settings   : %s
Suggester settings  : %s
Page mapping        : %s
`, builder.Version, suggest.Version, mapping.PageVersion)
}
