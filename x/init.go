/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"fmt"
)

var (
	// These variables are set using -ldflags
	analysiscfgVersion string
	gitBranch          string
	lastCommitSHA      string
	lastCommitTime     string
)

// BuildDetails describes the binary.
func BuildDetails() string {
	return fmt.Sprintf(`
analysiscfg version : %v
Commit SHA-1        : %v
Commit timestamp    : %v
Branch              : %v

Licensed under the Apache License, Version 2.0.
`,
		Version(), lastCommitSHA, lastCommitTime, gitBranch)
}

// Version is the release of the binary, "dev" for local builds.
func Version() string {
	if analysiscfgVersion == "" {
		return "dev"
	}
	return analysiscfgVersion
}
