// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/cli-commander/cli-commander/internal/config"
	"github.com/cli-commander/cli-commander/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootOptions holds the mode flags of one invocation. Verbose and shell are
// read through the settings provider instead.
type rootOptions struct {
	list  bool
	init  bool
	check bool
}

func newRootCommand(app *App) *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:   "cmdr [selector]",
		Short: "Run version-controlled command aliases",
		Long: titleStyle.Render("cmdr") + subtitleStyle.Render(" - version-controlled command aliases") + `

cmdr runs named shell commands ("selectors") defined in a YAML file that
lives next to your project:

  selectors:
    test:
      description: Run the test suite
      command: go test ./...

` + subtitleStyle.Render("Configuration lookup:") + `
  1. ./cli-commander.yml
  2. ~/.cli-commander/cli-commander.yml

` + subtitleStyle.Render("Examples:") + `
  cmdr --init        Create example configuration files
  cmdr --list        List available selectors
  cmdr test          Run the 'test' selector
  cmdr --check       Validate the configuration without running anything`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.run(cmd, args, opts)
			return nil
		},
	}

	// Selector names must not be shadowed by generated subcommands.
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.list, "list", "l", false, "list all available selectors")
	flags.BoolVar(&opts.init, "init", false, "create example configuration files in the current and home directories")
	flags.BoolVar(&opts.check, "check", false, "validate the configuration file without running any command")
	flags.BoolP(config.KeyVerbose, "v", false, "enable verbose output (env "+config.EnvVar(config.KeyVerbose)+")")
	flags.String(config.KeyShell, "", "shell used to run commands (env "+config.EnvVar(config.KeyShell)+")")

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs cmdr and exits the process with the resulting status.
// It is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := newRootCommand(app)

	// No signal notification: interrupts reach the child through the
	// terminal's foreground process group.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(types.ExitFailure.Int())
	}
	os.Exit(app.ExitCode().Int())
}
