// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"

	"github.com/spf13/pflag"
)

// LoadOptions defines explicit settings loading inputs.
type LoadOptions struct {
	// Flags, when set, contributes flags bound by name to setting keys.
	// Only flags the user actually set override the environment.
	Flags *pflag.FlagSet
}

// Provider loads settings from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (Settings, error)
}

type viperProvider struct{}

// NewProvider creates a settings provider.
func NewProvider() Provider {
	return &viperProvider{}
}

// Load resolves settings for one invocation.
func (p *viperProvider) Load(ctx context.Context, opts LoadOptions) (Settings, error) {
	return loadWithOptions(ctx, opts)
}
