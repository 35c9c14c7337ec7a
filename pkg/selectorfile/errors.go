// SPDX-License-Identifier: MPL-2.0

package selectorfile

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigParse is matched by every ParseError.
	ErrConfigParse = errors.New("invalid configuration file")

	// ErrInvalidSelector is the sentinel error wrapped by InvalidSelectorError.
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrSelectorNotFound is the sentinel error wrapped by SelectorNotFoundError.
	ErrSelectorNotFound = errors.New("selector not found")
)

const (
	// ReasonNotMapping is reported for definitions that are scalars, lists or null.
	ReasonNotMapping = "selector configuration must be a mapping"
	// ReasonMissingCommand is reported when `command` is absent or empty.
	ReasonMissingCommand = "selector must have a 'command' field"
)

type (
	// ParseError is returned when a configuration file exists but is not valid
	// YAML, or its top-level structure is unusable. Err carries the underlying
	// parser diagnostic.
	ParseError struct {
		Path string
		Err  error
	}

	// InvalidSelectorError is returned when a selector definition is not a
	// mapping or has no non-empty command.
	InvalidSelectorError struct {
		Name   string
		Reason string
	}

	// SelectorNotFoundError is returned when a lookup by name finds nothing.
	// Available lists every defined selector name in file order.
	SelectorNotFoundError struct {
		Name      string
		Available []string
	}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the parser diagnostic.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrConfigParse.
func (e *ParseError) Is(target error) bool { return target == ErrConfigParse }

// Error implements the error interface.
func (e *InvalidSelectorError) Error() string {
	if e.Name == "" {
		return e.Reason
	}
	return fmt.Sprintf("selector '%s': %s", e.Name, e.Reason)
}

// Unwrap returns ErrInvalidSelector for errors.Is() compatibility.
func (e *InvalidSelectorError) Unwrap() error { return ErrInvalidSelector }

// Error implements the error interface.
func (e *SelectorNotFoundError) Error() string {
	return fmt.Sprintf("selector '%s' not found in configuration", e.Name)
}

// Unwrap returns ErrSelectorNotFound for errors.Is() compatibility.
func (e *SelectorNotFoundError) Unwrap() error { return ErrSelectorNotFound }
