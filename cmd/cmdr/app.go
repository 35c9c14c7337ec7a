// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/cli-commander/cli-commander/internal/config"
	"github.com/cli-commander/cli-commander/internal/discovery"
	"github.com/cli-commander/cli-commander/pkg/types"
)

// defaultHintStyle lets glamour pick dark, light or plain output for the
// terminal it writes to.
const defaultHintStyle = "auto"

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: the root command handler receives an App and
	// delegates to its services.
	App struct {
		Settings config.Provider
		Locator  *discovery.Locator

		logger    *log.Logger
		stdin     io.Reader
		stdout    io.Writer
		stderr    io.Writer
		hintStyle string

		verbose  bool
		exitCode types.ExitCode
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Settings config.Provider
		// LocatorOptions are applied after the defaults, so tests can point
		// the locator at another filesystem, working directory or home.
		LocatorOptions []discovery.Option
		Stdin          io.Reader
		Stdout         io.Writer
		Stderr         io.Writer
		// HintStyle is the glamour style used for verbose remediation hints.
		HintStyle string
	}
)

// NewApp builds an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	if deps.Settings == nil {
		deps.Settings = config.NewProvider()
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.HintStyle == "" {
		deps.HintStyle = defaultHintStyle
	}

	logger := log.NewWithOptions(deps.Stderr, log.Options{
		Prefix: config.AppName,
		Level:  log.WarnLevel,
	})

	locatorOpts := append([]discovery.Option{discovery.WithLogger(logger)}, deps.LocatorOptions...)

	return &App{
		Settings:  deps.Settings,
		Locator:   discovery.New(locatorOpts...),
		logger:    logger,
		stdin:     deps.Stdin,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
		hintStyle: deps.HintStyle,
	}
}

// ExitCode returns the status the process should exit with after the root
// command has run.
func (a *App) ExitCode() types.ExitCode {
	return a.exitCode
}

func (a *App) setVerbose(verbose bool) {
	a.verbose = verbose
	if verbose {
		a.logger.SetLevel(log.DebugLevel)
	} else {
		a.logger.SetLevel(log.WarnLevel)
	}
}
