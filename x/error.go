/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

// Error handling helpers for the commands. Library packages return errors;
// these are for main paths and for invariants whose violation is a bug:
// (1) An error from a library the command cannot recover from: x.Check or
//     x.Checkf log it with its stack and exit.
// (2) An error to pass on with context: errors.Wrapf, or x.Wrapf when err may
//     be nil.
// (3) A condition that only a programming mistake can break: x.AssertTruef.

import (
	"log"

	"github.com/pkg/errors"
)

// Check logs fatal if err != nil.
func Check(err error) {
	if err != nil {
		log.Fatalf("%+v", errors.Wrap(err, ""))
	}
}

// Checkf is Check with extra info.
func Checkf(err error, format string, args ...interface{}) {
	if err != nil {
		log.Fatalf("%+v", errors.Wrapf(err, format, args...))
	}
}

// Wrapf is errors.Wrapf returning nil for a nil err.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}

// AssertTruef asserts that b is true. Otherwise, it would log fatal.
func AssertTruef(b bool, format string, args ...interface{}) {
	if !b {
		log.Fatalf("%+v", errors.Errorf(format, args...))
	}
}
