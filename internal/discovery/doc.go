// SPDX-License-Identifier: MPL-2.0

// Package discovery locates and loads the cli-commander.yml configuration.
//
// Two candidates are checked in fixed order: the current working directory,
// then ~/.cli-commander. The first regular file wins; nothing is merged.
// Not finding a file is a normal outcome of Locate; Load turns it into a
// ConfigNotFoundError naming both candidates.
//
// File organization:
//   - discovery.go: Locator, candidates and loading
//   - scaffold.go: first-run creation of commented template files
package discovery
