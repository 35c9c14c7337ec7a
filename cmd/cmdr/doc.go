// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the cmdr command-line interface.
//
// cmdr has a single root command. The positional argument names a selector
// from cli-commander.yml; flags switch to listing (--list), scaffolding
// (--init) or validation (--check). App is the composition root: it owns the
// output streams, the logger, the settings provider and the configuration
// locator, and records the exit status the process ends with.
package cmd
