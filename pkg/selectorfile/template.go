// SPDX-License-Identifier: MPL-2.0

package selectorfile

// DefaultTemplate is the content written by `cmdr --init`. It is entirely
// commented out, so it parses to a configuration with no selectors.
const DefaultTemplate = `# Example cli-commander configuration file
# Place this file in your project root as cli-commander.yml
# or in your home directory as ~/.cli-commander/cli-commander.yml

# selectors:
#   build:
#     description: Build the project
#     command: make build
#   test:
#     command: go test ./...
`
