/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"github.com/golang/glog"

	"github.com/hypermodeinc/analysiscfg/analysiscfg/cmd"
)

func main() {
	defer glog.Flush()
	cmd.Execute()
}
