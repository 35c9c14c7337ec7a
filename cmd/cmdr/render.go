// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cli-commander/cli-commander/internal/issue"
	"github.com/cli-commander/cli-commander/pkg/types"
)

// fail prints "<label> <msg>" on stderr and records exit status 1. In verbose
// mode the error chain and a catalog entry follow. An issue tagged on cause
// takes precedence over id; with neither, no entry is shown.
func (a *App) fail(id issue.Id, label, msg string, cause error) {
	st := newStyles(a.stderr)
	fmt.Fprintf(a.stderr, "%s %s\n", st.Error.Render(label), msg)
	a.printHints(id, cause)
	a.exitCode = types.ExitFailure
}

// printHints writes verbose-only remediation details.
func (a *App) printHints(id issue.Id, cause error) {
	if !a.verbose {
		return
	}
	st := newStyles(a.stderr)

	if chain := errorChain(cause); len(chain) > 1 {
		fmt.Fprintln(a.stderr, st.Verbose.Render("\nError chain:"))
		for i, msg := range chain {
			fmt.Fprintln(a.stderr, st.Verbose.Render(fmt.Sprintf("  %d. %s", i+1, msg)))
		}
	}

	entry := issue.Get(issue.IssueOf(cause, id))
	if entry == nil {
		return
	}
	rendered, err := entry.Render(a.hintStyle)
	if err != nil {
		a.logger.Debug("failed to render remediation hint", "issue", id, "error", err)
		return
	}
	fmt.Fprint(a.stderr, rendered)
}

// formatErrorForDisplay adds the suggestions of an ActionableError in err's
// chain to its message.
func formatErrorForDisplay(err error) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format()
	}
	return err.Error()
}

// errorChain follows single-error Unwrap links from err.
func errorChain(err error) []string {
	var chain []string
	seen := map[string]bool{}
	for err != nil {
		msg := strings.TrimSpace(err.Error())
		if !seen[msg] {
			chain = append(chain, msg)
			seen[msg] = true
		}
		err = errors.Unwrap(err)
	}
	return chain
}
