// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/cli-commander/cli-commander/pkg/platform"
	"github.com/cli-commander/cli-commander/pkg/selectorfile"
	"github.com/cli-commander/cli-commander/pkg/types"
)

type (
	// Runner executes selector commands through a shell.
	Runner struct {
		shell         platform.Shell
		stdin         io.Reader
		stdout        io.Writer
		stderr        io.Writer
		logger        *log.Logger
		onLaunchError func(*LaunchError)
	}

	// Option configures a Runner.
	Option func(*Runner)
)

// WithShell overrides the host shell.
func WithShell(shell platform.Shell) Option {
	return func(r *Runner) { r.shell = shell }
}

// WithStdin sets the child's standard input.
func WithStdin(in io.Reader) Option {
	return func(r *Runner) { r.stdin = in }
}

// WithStdout sets where the announcement lines and the child's standard
// output go.
func WithStdout(out io.Writer) Option {
	return func(r *Runner) { r.stdout = out }
}

// WithStderr sets where launch diagnostics and the child's standard error go.
func WithStderr(errOut io.Writer) Option {
	return func(r *Runner) { r.stderr = errOut }
}

// WithLogger sets the logger used for debug records.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithLaunchErrorHook registers fn to be called after a launch failure has
// been reported on stderr.
func WithLaunchErrorHook(fn func(*LaunchError)) Option {
	return func(r *Runner) { r.onLaunchError = fn }
}

// NewRunner creates a Runner bound to the process streams and the host shell.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		shell:  platform.DefaultShell(os.Getenv),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	return r
}

// Shell returns the interpreter the Runner executes commands with.
func (r *Runner) Shell() platform.Shell { return r.shell }

// Run validates def and executes its command, waiting for the child to exit.
//
// An invalid definition returns types.ExitFailure and an
// *selectorfile.InvalidSelectorError without running anything. Otherwise the
// error is always nil: the child's exit status is returned verbatim, and a
// launch failure or abnormal termination is reported on stderr as
// "Error executing command: ..." with status 1.
func (r *Runner) Run(ctx context.Context, def selectorfile.Definition) (types.ExitCode, error) {
	sel, err := def.Selector()
	if err != nil {
		return types.ExitFailure, err
	}

	r.announce(sel)

	r.logger.Debug("executing selector", "selector", def.Name(), "shell", r.shell.String())

	cmd := exec.CommandContext(ctx, r.shell.Path, r.shell.Argv(sel.Command)...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	// Ctrl-C reaches the child through the terminal; cmdr waits for its status.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	err = cmd.Run()
	signal.Stop(interrupts)

	code, launchErr := exitStatus(err, r.shell.Path)
	if launchErr != nil {
		fmt.Fprintf(r.stderr, "Error executing command: %v\n", launchErr)
		if r.onLaunchError != nil {
			r.onLaunchError(launchErr)
		}
	}

	if code.IsSuccess() {
		r.logger.Debug("selector finished", "selector", def.Name())
	} else {
		r.logger.Debug("selector failed", "selector", def.Name(), "exit_code", code)
	}
	return code, nil
}

func (r *Runner) announce(sel selectorfile.Selector) {
	label := lipgloss.NewRenderer(r.stdout).NewStyle().Bold(true)

	if sel.Description != "" {
		fmt.Fprintf(r.stdout, "%s %s\n", label.Render("Running:"), sel.Description)
	}
	// The command is printed byte for byte; styling would expand tabs and pad
	// multi-line commands.
	fmt.Fprintf(r.stdout, "%s %s\n", label.Render("Command:"), sel.Command)
}

// exitStatus maps the result of exec.Cmd.Run to the status cmdr exits with.
// A non-nil LaunchError means the child never produced a status of its own.
func exitStatus(err error, shell string) (types.ExitCode, *LaunchError) {
	if err == nil {
		return types.ExitSuccess, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return types.ExitCode(code), nil
		}
		// Killed by a signal: ProcessState has no exit code.
		return types.ExitFailure, &LaunchError{Shell: shell, Err: exitErr}
	}

	return types.ExitFailure, &LaunchError{Shell: shell, Err: err}
}
