// SPDX-License-Identifier: MPL-2.0

// Package config loads cmdr's own settings using Viper.
//
// Settings come from built-in defaults, then CMDR_* environment variables,
// then explicitly set command-line flags. They are unrelated to the selector
// file, which is read by the discovery package.
package config
