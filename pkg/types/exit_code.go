// SPDX-License-Identifier: MPL-2.0

// Package types defines small value types shared by the selector file,
// runtime and CLI packages.
//
// This package is a leaf dependency: it imports only the standard library.
package types

import "strconv"

const (
	// ExitSuccess is returned when a selector ran and its command exited zero,
	// or when a listing, scaffold or check completed cleanly.
	ExitSuccess ExitCode = 0
	// ExitFailure is the generic failure status used for every error cmdr
	// reports itself, as opposed to a child's own non-zero status.
	ExitFailure ExitCode = 1
)

// ExitCode is a process exit status. Values above 255 are kept as-is: Windows
// children can report them and cmdr forwards them unchanged.
type ExitCode int

// IsSuccess reports whether the code is zero.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// Int returns the code as a plain int, suitable for os.Exit.
func (c ExitCode) Int() int { return int(c) }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
