// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"fmt"
)

var (
	// ErrLaunchFailed is the sentinel error wrapped by LaunchError.
	ErrLaunchFailed = errors.New("command could not be executed")

	// ErrSyntax is the sentinel error wrapped by SyntaxError.
	ErrSyntax = errors.New("shell syntax error")
)

type (
	// LaunchError describes a command that never produced an exit status:
	// the shell could not be started or the child was terminated abnormally.
	LaunchError struct {
		Shell string
		Err   error
	}

	// SyntaxError reports a selector command the shell parser rejects.
	SyntaxError struct {
		Selector string
		Err      error
	}
)

// Error implements the error interface.
func (e *LaunchError) Error() string { return e.Err.Error() }

// Unwrap returns both the cause and ErrLaunchFailed.
func (e *LaunchError) Unwrap() []error { return []error{ErrLaunchFailed, e.Err} }

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("selector '%s': %v", e.Selector, e.Err)
}

// Unwrap returns both the cause and ErrSyntax.
func (e *SyntaxError) Unwrap() []error { return []error{ErrSyntax, e.Err} }
