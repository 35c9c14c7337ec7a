// SPDX-License-Identifier: MPL-2.0

// Package runtime executes selector commands through the host shell.
//
// A Runner validates one selector definition, announces it on stdout and
// runs its command with the runner's standard streams attached. The child's
// exit status is returned as-is. Failures to start the shell, and children
// killed by a signal, are reported on stderr and map to status 1; they are
// not returned as errors.
//
// CheckSyntax parses a command with mvdan.cc/sh without running it, for
// `cmdr --check`.
package runtime
