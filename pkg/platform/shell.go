// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"path/filepath"
	"runtime"
	"strings"
)

const (
	// PosixShell is the interpreter used on every non-Windows host.
	PosixShell = "/bin/sh"
	// WindowsShell is used when %COMSPEC% is unset.
	WindowsShell = "cmd.exe"
	// ComspecEnv names the Windows command interpreter variable.
	ComspecEnv = "COMSPEC"
)

// Shell is an interpreter plus the arguments that precede the command string.
type Shell struct {
	Path string
	Args []string
}

// Argv returns the full argument vector for running command, excluding Path.
func (s Shell) Argv(command string) []string {
	argv := make([]string, 0, len(s.Args)+1)
	argv = append(argv, s.Args...)
	return append(argv, command)
}

// String renders the shell as it would be typed.
func (s Shell) String() string {
	if len(s.Args) == 0 {
		return s.Path
	}
	return s.Path + " " + strings.Join(s.Args, " ")
}

// DefaultShell returns the host shell for the running OS. getenv is
// consulted for %COMSPEC% on Windows.
func DefaultShell(getenv func(string) string) Shell {
	return DefaultShellFor(runtime.GOOS, getenv)
}

// DefaultShellFor returns the host shell for goos.
func DefaultShellFor(goos string, getenv func(string) string) Shell {
	if goos != Windows {
		return Shell{Path: PosixShell, Args: []string{"-c"}}
	}

	comspec := ""
	if getenv != nil {
		comspec = getenv(ComspecEnv)
	}
	if comspec == "" {
		comspec = WindowsShell
	}
	return Shell{Path: comspec, Args: []string{"/C"}}
}

// ShellFor builds a Shell for an explicit interpreter, picking the command
// flag from its base name.
func ShellFor(path string) Shell {
	return Shell{Path: path, Args: ArgsFor(path)}
}

// ShellName reduces an interpreter path to its lower-case base name without
// ".exe", so "C:\Windows\System32\CMD.EXE" and "/bin/bash" become "cmd" and
// "bash" on any host.
func ShellName(path string) string {
	base := filepath.Base(path)
	// Windows paths on non-Windows hosts
	if i := strings.LastIndex(base, `\`); i >= 0 {
		base = base[i+1:]
	}
	return strings.TrimSuffix(strings.ToLower(base), ".exe")
}

// ArgsFor returns the arguments that make the named interpreter run the
// next argument as a command string.
func ArgsFor(shell string) []string {
	switch ShellName(shell) {
	case "cmd":
		return []string{"/C"}
	case "powershell", "pwsh":
		return []string{"-NoProfile", "-Command"}
	default:
		return []string{"-c"}
	}
}
