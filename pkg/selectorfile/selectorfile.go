// SPDX-License-Identifier: MPL-2.0

package selectorfile

import "slices"

const (
	// FileName is the configuration file name at both resolution locations.
	FileName = "cli-commander.yml"
	// HomeDirName is the directory under the user's home holding FileName.
	HomeDirName = ".cli-commander"

	selectorsKey = "selectors"
)

type (
	// Selector is a validated selector definition.
	Selector struct {
		// Command is the shell command line; never empty for a valid selector.
		Command string `yaml:"command" validate:"required"`
		// Description is shown before execution and in listings.
		Description string `yaml:"description"`
	}

	// Definition is one entry of the `selectors` mapping, decoded at parse
	// time. It is either a valid Selector or carries the reason it is invalid.
	Definition struct {
		name     string
		selector Selector
		err      *InvalidSelectorError
	}

	// File is a parsed configuration file.
	File struct {
		path         string
		raw          []byte
		hasSelectors bool
		order        []string
		defs         map[string]Definition
	}
)

// Name returns the selector name the definition was stored under.
func (d Definition) Name() string { return d.name }

// Description returns the description, if one could be decoded, even when the
// definition is otherwise invalid.
func (d Definition) Description() string { return d.selector.Description }

// Valid reports whether the definition has a non-empty command.
func (d Definition) Valid() bool { return d.err == nil }

// Selector returns the validated selector, or an *InvalidSelectorError.
func (d Definition) Selector() (Selector, error) {
	if d.err != nil {
		return Selector{}, d.err
	}
	return d.selector, nil
}

// Path returns the file the configuration was read from.
func (f *File) Path() string { return f.path }

// Raw returns the bytes the File was parsed from.
func (f *File) Raw() []byte { return f.raw }

// HasSelectors reports whether the root mapping has a `selectors` key.
func (f *File) HasSelectors() bool { return f.hasSelectors }

// Len returns the number of selectors.
func (f *File) Len() int { return len(f.order) }

// Names returns selector names in file order.
func (f *File) Names() []string { return slices.Clone(f.order) }

// Definitions returns every definition in file order.
func (f *File) Definitions() []Definition {
	defs := make([]Definition, 0, len(f.order))
	for _, name := range f.order {
		defs = append(defs, f.defs[name])
	}
	return defs
}

// Get performs an exact, case-sensitive lookup.
func (f *File) Get(name string) (Definition, bool) {
	def, ok := f.defs[name]
	return def, ok
}

// Lookup is Get with a *SelectorNotFoundError listing the known names when
// name is absent.
func (f *File) Lookup(name string) (Definition, error) {
	def, ok := f.Get(name)
	if !ok {
		return Definition{}, &SelectorNotFoundError{Name: name, Available: f.Names()}
	}
	return def, nil
}
