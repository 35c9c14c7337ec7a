// SPDX-License-Identifier: MPL-2.0

// Package selectorfile parses cli-commander.yml files.
//
// A selector file is a YAML mapping whose `selectors` key maps selector names
// to definitions:
//
//	selectors:
//	  build:
//	    description: Build the project
//	    command: make build
//
// Parse decodes every definition once, at load time, into a typed Selector.
// Entries that are not mappings or lack a non-empty command are kept as
// invalid Definitions so that listing still works and the error surfaces only
// when that selector is run or checked.
//
// A parsed File is immutable: accessors return copies.
package selectorfile
