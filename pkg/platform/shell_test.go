// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"slices"
	"testing"
)

func TestDefaultShellFor(t *testing.T) {
	t.Parallel()

	env := func(vals map[string]string) func(string) string {
		return func(k string) string { return vals[k] }
	}

	tests := []struct {
		name     string
		goos     string
		getenv   func(string) string
		wantPath string
		wantArgs []string
	}{
		{"linux", Linux, env(nil), "/bin/sh", []string{"-c"}},
		{"darwin ignores comspec", Darwin, env(map[string]string{"COMSPEC": "x.exe"}), "/bin/sh", []string{"-c"}},
		{"windows default", Windows, env(nil), "cmd.exe", []string{"/C"}},
		{"windows comspec", Windows, env(map[string]string{"COMSPEC": `C:\Windows\system32\cmd.exe`}), `C:\Windows\system32\cmd.exe`, []string{"/C"}},
		{"windows nil getenv", Windows, nil, "cmd.exe", []string{"/C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DefaultShellFor(tt.goos, tt.getenv)
			if got.Path != tt.wantPath || !slices.Equal(got.Args, tt.wantArgs) {
				t.Errorf("DefaultShellFor(%q) = %+v, want {%s %v}", tt.goos, got, tt.wantPath, tt.wantArgs)
			}
		})
	}
}

func TestShellName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"/bin/sh", "sh"},
		{"/usr/local/bin/bash", "bash"},
		{"zsh", "zsh"},
		{"cmd.exe", "cmd"},
		{`C:\Windows\System32\CMD.EXE`, "cmd"},
		{`C:\Program Files\PowerShell\7\pwsh.exe`, "pwsh"},
		{"powershell", "powershell"},
	}

	for _, tt := range tests {
		if got := ShellName(tt.path); got != tt.want {
			t.Errorf("ShellName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestArgsFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell string
		want  []string
	}{
		{"/bin/bash", []string{"-c"}},
		{"zsh", []string{"-c"}},
		{"cmd.exe", []string{"/C"}},
		{`C:\Windows\System32\CMD.EXE`, []string{"/C"}},
		{"pwsh", []string{"-NoProfile", "-Command"}},
		{"powershell.exe", []string{"-NoProfile", "-Command"}},
	}

	for _, tt := range tests {
		if got := ArgsFor(tt.shell); !slices.Equal(got, tt.want) {
			t.Errorf("ArgsFor(%q) = %v, want %v", tt.shell, got, tt.want)
		}
	}
}

func TestShell_Argv(t *testing.T) {
	t.Parallel()

	s := ShellFor("/bin/bash")
	if got, want := s.Argv("echo hi"), []string{"-c", "echo hi"}; !slices.Equal(got, want) {
		t.Errorf("Argv() = %v, want %v", got, want)
	}
	if got := s.String(); got != "/bin/bash -c" {
		t.Errorf("String() = %q", got)
	}

	// Argv must not alias the shell's own argument slice.
	argv := s.Argv("a")
	argv[0] = "changed"
	if s.Args[0] != "-c" {
		t.Error("Argv() aliased Args")
	}
}
