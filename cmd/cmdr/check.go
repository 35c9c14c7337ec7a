// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/cli-commander/cli-commander/internal/issue"
	"github.com/cli-commander/cli-commander/internal/runtime"
	"github.com/cli-commander/cli-commander/pkg/platform"
	"github.com/cli-commander/cli-commander/pkg/selectorfile"
)

// runCheck validates the loaded file without executing anything: the whole
// document against the schema, then every selector definition, then the
// shell syntax of every command when the shell's language is understood.
func (a *App) runCheck(file *selectorfile.File, shell platform.Shell) {
	problems := schemaProblems(selectorfile.ValidateSchema(file.Path(), file.Raw()))

	checkSyntax := runtime.SyntaxCheckable(shell)
	if !checkSyntax {
		a.logger.Debug("skipping shell syntax check", "shell", shell.Path)
	}

	for _, def := range file.Definitions() {
		sel, err := def.Selector()
		if err != nil {
			problems = append(problems, err.Error())
			continue
		}
		if !checkSyntax {
			continue
		}
		if err := runtime.CheckSyntax(shell, def.Name(), sel.Command); err != nil {
			problems = append(problems, err.Error())
		}
	}

	if len(problems) == 0 {
		noun := "selectors"
		if file.Len() == 1 {
			noun = "selector"
		}
		st := newStyles(a.stdout)
		fmt.Fprintf(a.stdout, "%s Configuration OK: %s (%d %s)\n", st.Success.Render("✓"), file.Path(), file.Len(), noun)
		return
	}

	msg := fmt.Sprintf("Configuration check failed for %s:", file.Path())
	for _, p := range problems {
		msg += "\n  - " + p
	}
	a.fail(issue.CheckFailedId, "Error:", msg, nil)
}

func schemaProblems(err error) []string {
	if err == nil {
		return nil
	}
	var schemaErr *selectorfile.SchemaError
	if errors.As(err, &schemaErr) {
		problems := make([]string, 0, len(schemaErr.Violations))
		for _, v := range schemaErr.Violations {
			problems = append(problems, "schema: "+v)
		}
		return problems
	}
	return []string{err.Error()}
}
