// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/cli-commander/cli-commander/pkg/platform"
)

// SyntaxCheckable reports whether CheckSyntax understands the language of
// shell. cmd.exe and PowerShell scripts are not parsed.
func SyntaxCheckable(shell platform.Shell) bool {
	_, ok := variantFor(shell.Path)
	return ok
}

// CheckSyntax parses command in the dialect of shell without running it.
// Shells whose language is not understood are accepted as-is.
func CheckSyntax(shell platform.Shell, selector, command string) error {
	variant, ok := variantFor(shell.Path)
	if !ok {
		return nil
	}

	parser := syntax.NewParser(syntax.Variant(variant))
	if _, err := parser.Parse(strings.NewReader(command), selector); err != nil {
		return &SyntaxError{Selector: selector, Err: err}
	}
	return nil
}

func variantFor(shell string) (syntax.LangVariant, bool) {
	switch platform.ShellName(shell) {
	case "cmd", "powershell", "pwsh":
		return 0, false
	case "bash", "zsh":
		return syntax.LangBash, true
	case "mksh", "ksh":
		return syntax.LangMirBSDKorn, true
	default:
		return syntax.LangPOSIX, true
	}
}
