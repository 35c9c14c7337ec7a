// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cli-commander/cli-commander/internal/issue"
)

const (
	// AppName is the application name.
	AppName = "cmdr"
	// EnvPrefix is the prefix of environment variables read as settings.
	EnvPrefix = "CMDR"

	// KeyVerbose enables debug logging and remediation hints.
	KeyVerbose = "verbose"
	// KeyShell overrides the interpreter used to run selector commands.
	KeyShell = "shell"
)

// ErrInvalidSettings is the sentinel error wrapped by InvalidSettingsError.
var ErrInvalidSettings = errors.New("invalid settings")

type (
	// Settings are cmdr's own options for one invocation.
	Settings struct {
		Verbose bool   `mapstructure:"verbose"`
		Shell   string `mapstructure:"shell"`
	}

	// InvalidSettingsError is returned when a resolved setting is unusable.
	InvalidSettingsError struct {
		Key    string
		Reason string
	}
)

// Error implements the error interface.
func (e *InvalidSettingsError) Error() string {
	return fmt.Sprintf("setting %q: %s", e.Key, e.Reason)
}

// Unwrap returns ErrInvalidSettings for errors.Is() compatibility.
func (e *InvalidSettingsError) Unwrap() error { return ErrInvalidSettings }

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{}
}

// EnvVar returns the environment variable read for key.
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}

// loadWithOptions performs option-driven settings loading without any
// package-level state.
func loadWithOptions(ctx context.Context, opts LoadOptions) (Settings, error) {
	select {
	case <-ctx.Done():
		return Settings{}, fmt.Errorf("load settings canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault(KeyVerbose, defaults.Verbose)
	v.SetDefault(KeyShell, defaults.Shell)

	v.SetEnvPrefix(EnvPrefix)
	for _, key := range []string{KeyVerbose, KeyShell} {
		if err := v.BindEnv(key); err != nil {
			return Settings{}, fmt.Errorf("bind %s: %w", EnvVar(key), err)
		}
	}

	if opts.Flags != nil {
		for _, key := range []string{KeyVerbose, KeyShell} {
			flag := opts.Flags.Lookup(key)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Settings{}, fmt.Errorf("bind --%s: %w", key, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, issue.NewErrorContext().
			WithOperation("load settings").
			WithSuggestion(fmt.Sprintf("Check the values of %s and %s", EnvVar(KeyVerbose), EnvVar(KeyShell))).
			WithIssue(issue.InvalidSettingsId).
			Wrap(err).
			BuildError()
	}

	if err := s.Validate(); err != nil {
		return Settings{}, issue.NewErrorContext().
			WithOperation("load settings").
			WithSuggestion(fmt.Sprintf("Unset %s or pass --%s with a shell path", EnvVar(KeyShell), KeyShell)).
			WithIssue(issue.InvalidSettingsId).
			Wrap(err).
			BuildError()
	}

	return s, nil
}

// Validate reports settings that cannot be used.
func (s Settings) Validate() error {
	if s.Shell != "" && strings.TrimSpace(s.Shell) == "" {
		return &InvalidSettingsError{Key: KeyShell, Reason: "must not be blank"}
	}
	return nil
}

// HasShellOverride reports whether a shell other than the host default was
// requested.
func (s Settings) HasShellOverride() bool {
	return s.Shell != ""
}
