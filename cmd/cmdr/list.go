// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/cli-commander/cli-commander/pkg/selectorfile"
)

// runList prints every selector in file order with its description.
func (a *App) runList(file *selectorfile.File) {
	if file.Len() == 0 {
		fmt.Fprintln(a.stdout, "No selectors defined in configuration file")
		return
	}

	st := newStyles(a.stdout)
	fmt.Fprintf(a.stdout, "%s\n", st.Title.Render("Available selectors from "+file.Path()+":"))
	for _, def := range file.Definitions() {
		if desc := def.Description(); desc != "" {
			fmt.Fprintf(a.stdout, "  %s: %s\n", st.Cmd.Render(def.Name()), desc)
			continue
		}
		fmt.Fprintf(a.stdout, "  %s\n", st.Cmd.Render(def.Name()))
	}
}
