// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/cli-commander/cli-commander/internal/config"
	"github.com/cli-commander/cli-commander/internal/discovery"
	"github.com/cli-commander/cli-commander/internal/issue"
	"github.com/cli-commander/cli-commander/internal/runtime"
	"github.com/cli-commander/cli-commander/pkg/platform"
	"github.com/cli-commander/cli-commander/pkg/selectorfile"
	"github.com/cli-commander/cli-commander/pkg/types"
)

// run handles one invocation: init, then load, then check or list, then
// execute the named selector. The outcome is recorded in a.exitCode.
func (a *App) run(cmd *cobra.Command, args []string, opts rootOptions) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a.exitCode = types.ExitSuccess

	settings, err := a.Settings.Load(ctx, config.LoadOptions{Flags: cmd.Flags()})
	if err != nil {
		// --verbose still applies when the environment is what is broken.
		if verbose, flagErr := cmd.Flags().GetBool(config.KeyVerbose); flagErr == nil {
			a.setVerbose(verbose)
		}
		a.fail(0, "Error:", formatErrorForDisplay(err), err)
		return
	}
	a.setVerbose(settings.Verbose)
	shell := resolveShell(settings)

	if opts.init {
		a.runInit()
		return
	}

	file, err := a.Locator.Load()
	if err != nil {
		a.reportLoadError(err)
		return
	}
	a.logger.Debug("configuration loaded", "path", file.Path(), "selectors", file.Len())

	switch {
	case opts.check:
		a.runCheck(file, shell)
		return
	case opts.list:
		a.runList(file)
		return
	}

	if len(args) == 0 {
		a.fail(issue.SelectorNameRequiredId, "Error:", "Selector name is required\n\nUse 'cmdr --list' to see available selectors", nil)
		return
	}

	def, err := file.Lookup(args[0])
	if err != nil {
		a.reportNotFound(err)
		return
	}

	a.runSelector(ctx, def, shell)
}

func (a *App) runSelector(ctx context.Context, def selectorfile.Definition, shell platform.Shell) {
	runner := runtime.NewRunner(
		runtime.WithShell(shell),
		runtime.WithStdin(a.stdin),
		runtime.WithStdout(a.stdout),
		runtime.WithStderr(a.stderr),
		runtime.WithLogger(a.logger),
		runtime.WithLaunchErrorHook(func(launchErr *runtime.LaunchError) {
			a.printHints(issue.LaunchFailedId, launchErr)
		}),
	)

	code, err := runner.Run(ctx, def)
	if err != nil {
		var invalid *selectorfile.InvalidSelectorError
		if errors.As(err, &invalid) {
			a.fail(issue.InvalidSelectorId, "Error:", capitalize(invalid.Reason), err)
			return
		}
		a.fail(0, "Error:", err.Error(), err)
		return
	}
	a.exitCode = code
}

func (a *App) reportLoadError(err error) {
	var notFound *discovery.ConfigNotFoundError
	if errors.As(err, &notFound) {
		a.logger.Debug("no configuration file", "checked", notFound.Checked)
		a.fail(issue.ConfigNotFoundId, "Error:", err.Error(), err)
		return
	}
	a.fail(issue.ConfigParseErrorId, "Error loading configuration:", formatErrorForDisplay(err), err)
}

func (a *App) reportNotFound(err error) {
	var notFound *selectorfile.SelectorNotFoundError
	if !errors.As(err, &notFound) {
		a.fail(0, "Error:", err.Error(), err)
		return
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "Selector '%s' not found in configuration\n\nAvailable selectors:", notFound.Name)
	for _, name := range notFound.Available {
		msg.WriteString("\n  ")
		msg.WriteString(name)
	}
	a.fail(issue.SelectorNotFoundId, "Error:", msg.String(), err)
}

func resolveShell(settings config.Settings) platform.Shell {
	if settings.HasShellOverride() {
		return platform.ShellFor(settings.Shell)
	}
	return platform.DefaultShell(os.Getenv)
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
