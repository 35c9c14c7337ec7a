// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Id identifies an entry in the remediation catalog.
type Id int

const (
	ConfigNotFoundId Id = iota + 1
	ConfigParseErrorId
	SelectorNameRequiredId
	SelectorNotFoundId
	InvalidSelectorId
	LaunchFailedId
	CheckFailedId
	ConfigAccessId
	InvalidSettingsId
)

// MarkdownMsg is catalog text in Markdown, rendered with glamour.
type MarkdownMsg string

// HttpLink is a documentation URL attached to a catalog entry.
type HttpLink string

// Issue is a catalog entry: remediation guidance for one class of failure.
type Issue struct {
	id       Id
	mdMsg    MarkdownMsg
	docLinks []HttpLink
}

// Id returns the catalog identifier.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw Markdown guidance.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// DocLinks returns a copy of the documentation links.
func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the guidance with the given glamour style ("dark", "light",
// "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	readmeLink HttpLink = "https://github.com/cli-commander/cli-commander#readme"

	configNotFoundIssue = &Issue{
		id: ConfigNotFoundId,
		mdMsg: `
# No configuration file found

cmdr looks for its configuration in two places, in this order:

1. ` + "`./cli-commander.yml`" + ` (current directory)
2. ` + "`~/.cli-commander/cli-commander.yml`" + ` (home directory)

## Things you can try
- Create both files with commented examples:
~~~
$ cmdr --init
~~~
- Run cmdr from the directory that holds your project's ` + "`cli-commander.yml`" + `.`,
		docLinks: []HttpLink{readmeLink},
	}

	configParseErrorIssue = &Issue{
		id: ConfigParseErrorId,
		mdMsg: `
# Configuration file is not valid YAML

The file was found but could not be parsed. The parser message above names
the line and column of the problem.

## Expected layout
~~~yaml
selectors:
  build:
    description: Build the project
    command: make build
~~~`,
		docLinks: []HttpLink{readmeLink},
	}

	selectorNameRequiredIssue = &Issue{
		id: SelectorNameRequiredId,
		mdMsg: `
# Selector name is required

Pass the name of a selector as the first argument:
~~~
$ cmdr build
~~~
Use ` + "`cmdr --list`" + ` to see what is available.`,
	}

	selectorNotFoundIssue = &Issue{
		id: SelectorNotFoundId,
		mdMsg: `
# Selector not found

Selector names are matched exactly and are case-sensitive. Only the first
configuration file found is consulted; a local ` + "`cli-commander.yml`" + `
hides the one in your home directory.`,
	}

	invalidSelectorIssue = &Issue{
		id: InvalidSelectorId,
		mdMsg: `
# Invalid selector definition

Every selector must be a mapping with a non-empty ` + "`command`" + `:
~~~yaml
selectors:
  test:
    command: go test ./...
~~~
Run ` + "`cmdr --check`" + ` to validate every selector at once.`,
	}

	launchFailedIssue = &Issue{
		id: LaunchFailedId,
		mdMsg: `
# Command could not be started

The shell used to run the command could not be launched.

## Things you can try
- Check that ` + "`/bin/sh`" + ` exists (or ` + "`%COMSPEC%`" + ` on Windows)
- Override the shell with ` + "`--shell`" + ` or the ` + "`CMDR_SHELL`" + ` environment variable`,
	}

	checkFailedIssue = &Issue{
		id: CheckFailedId,
		mdMsg: `
# Configuration check failed

Fix the selectors reported above, then run ` + "`cmdr --check`" + ` again.`,
	}

	configAccessIssue = &Issue{
		id: ConfigAccessId,
		mdMsg: `
# Configuration file is not accessible

cmdr could not read or write a configuration file or its directory.

## Things you can try
- Check the permissions of the file and of the directory that holds it
- Check that the path is a regular file, not a directory`,
	}

	invalidSettingsIssue = &Issue{
		id: InvalidSettingsId,
		mdMsg: `
# Invalid cmdr settings

Settings come from flags first, then from the environment:

| Flag | Environment |
|---|---|
| ` + "`--shell`" + ` | ` + "`CMDR_SHELL`" + ` |
| ` + "`--verbose`" + ` | ` + "`CMDR_VERBOSE`" + ` |

Unset the variable or pass a valid value with the flag.`,
	}

	catalog = []*Issue{
		configNotFoundIssue,
		configParseErrorIssue,
		selectorNameRequiredIssue,
		selectorNotFoundIssue,
		invalidSelectorIssue,
		launchFailedIssue,
		checkFailedIssue,
		configAccessIssue,
		invalidSettingsIssue,
	}
)

// Get returns the catalog entry for id, or nil when id is unknown.
func Get(id Id) *Issue {
	for _, entry := range catalog {
		if entry.id == id {
			return entry
		}
	}
	return nil
}
