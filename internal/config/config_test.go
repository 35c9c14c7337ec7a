// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/pflag"

	"github.com/cli-commander/cli-commander/internal/testutil"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	fs := pflag.NewFlagSet("cmdr", pflag.ContinueOnError)
	fs.BoolP(KeyVerbose, "v", false, "")
	fs.String(KeyShell, "", "")
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%v) error = %v", args, err)
	}
	return fs
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Cleanup(testutil.MustUnsetenv(t, EnvVar(KeyVerbose)))
	t.Cleanup(testutil.MustUnsetenv(t, EnvVar(KeyShell)))
}

func TestEnvVar(t *testing.T) {
	t.Parallel()

	if got := EnvVar(KeyShell); got != "CMDR_SHELL" {
		t.Errorf("EnvVar(shell) = %q, want CMDR_SHELL", got)
	}
	if got := EnvVar(KeyVerbose); got != "CMDR_VERBOSE" {
		t.Errorf("EnvVar(verbose) = %q, want CMDR_VERBOSE", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	s, err := NewProvider().Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("Load() = %+v, want defaults", s)
	}
	if s.HasShellOverride() {
		t.Error("HasShellOverride() = true for defaults")
	}
}

func TestLoad_Precedence(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		args        []string
		wantShell   string
		wantVerbose bool
	}{
		{"env only", map[string]string{"CMDR_SHELL": "/bin/bash", "CMDR_VERBOSE": "true"}, nil, "/bin/bash", true},
		{"flag only", nil, []string{"--shell", "/bin/zsh", "-v"}, "/bin/zsh", true},
		{"flag beats env", map[string]string{"CMDR_SHELL": "/bin/bash"}, []string{"--shell=/bin/dash"}, "/bin/dash", false},
		{"unset flag keeps env", map[string]string{"CMDR_SHELL": "/bin/bash"}, []string{}, "/bin/bash", false},
		{"numeric bool", map[string]string{"CMDR_VERBOSE": "1"}, nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Cleanup(testutil.MustSetenv(t, k, v))
			}

			s, err := NewProvider().Load(context.Background(), LoadOptions{Flags: newFlags(t, tt.args...)})
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if s.Shell != tt.wantShell {
				t.Errorf("Shell = %q, want %q", s.Shell, tt.wantShell)
			}
			if s.Verbose != tt.wantVerbose {
				t.Errorf("Verbose = %v, want %v", s.Verbose, tt.wantVerbose)
			}
		})
	}
}

func TestLoad_BlankShell(t *testing.T) {
	clearEnv(t)
	t.Cleanup(testutil.MustSetenv(t, "CMDR_SHELL", "   "))

	_, err := NewProvider().Load(context.Background(), LoadOptions{})
	if !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("Load() error = %v, want ErrInvalidSettings", err)
	}

	var invalid *InvalidSettingsError
	if !errors.As(err, &invalid) || invalid.Key != KeyShell {
		t.Errorf("error = %v, want InvalidSettingsError for shell", err)
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewProvider().Load(ctx, LoadOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestLoad_IgnoresUnrelatedFlags(t *testing.T) {
	clearEnv(t)

	fs := pflag.NewFlagSet("other", pflag.ContinueOnError)
	fs.Bool("list", false, "")

	if _, err := NewProvider().Load(context.Background(), LoadOptions{Flags: fs}); err != nil {
		t.Errorf("Load() error = %v", err)
	}
}
