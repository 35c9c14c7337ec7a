// SPDX-License-Identifier: MPL-2.0

package cmd

import "fmt"

// runInit scaffolds the commented template in both lookup locations. Files
// that already exist are left untouched.
func (a *App) runInit() {
	results, err := a.Locator.Scaffold()

	st := newStyles(a.stdout)
	for _, r := range results {
		if r.Created {
			fmt.Fprintf(a.stdout, "%s Created configuration file at %s\n", st.Success.Render("✓"), r.Path)
			continue
		}
		fmt.Fprintf(a.stdout, "%s Configuration file already exists at %s\n", st.Warning.Render("•"), r.Path)
	}

	if err != nil {
		a.fail(0, "Error:", formatErrorForDisplay(err), err)
	}
}
