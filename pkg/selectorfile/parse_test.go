// SPDX-License-Identifier: MPL-2.0

package selectorfile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
selectors:
  test:
    description: Run tests
    command: pytest
  build:
    command: make build
  Build:
    command: make release
`

func TestParse_Selectors(t *testing.T) {
	t.Parallel()

	file, err := Parse("/work/cli-commander.yml", []byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "/work/cli-commander.yml", file.Path())
	assert.Equal(t, sampleConfig, string(file.Raw()))
	assert.True(t, file.HasSelectors())
	assert.Equal(t, 3, file.Len())
	assert.Equal(t, []string{"test", "build", "Build"}, file.Names())

	def, ok := file.Get("test")
	require.True(t, ok)
	sel, err := def.Selector()
	require.NoError(t, err)
	assert.Equal(t, Selector{Command: "pytest", Description: "Run tests"}, sel)

	def, ok = file.Get("Build")
	require.True(t, ok)
	sel, err = def.Selector()
	require.NoError(t, err)
	assert.Equal(t, "make release", sel.Command, "lookup must be case-sensitive")
}

func TestFile_GetExactMatchOnly(t *testing.T) {
	t.Parallel()

	file, err := Parse("cli-commander.yml", []byte(sampleConfig))
	require.NoError(t, err)

	for _, name := range []string{"tes", "tests", "TEST", " test", ""} {
		_, ok := file.Get(name)
		assert.False(t, ok, "Get(%q) should be absent", name)
	}
}

func TestFile_Lookup(t *testing.T) {
	t.Parallel()

	file, err := Parse("cli-commander.yml", []byte(sampleConfig))
	require.NoError(t, err)

	_, err = file.Lookup("deploy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSelectorNotFound))

	var notFound *SelectorNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "deploy", notFound.Name)
	assert.Equal(t, []string{"test", "build", "Build"}, notFound.Available)
	assert.Equal(t, "selector 'deploy' not found in configuration", err.Error())

	def, err := file.Lookup("build")
	require.NoError(t, err)
	assert.Equal(t, "build", def.Name())
}

func TestFile_NamesIsACopy(t *testing.T) {
	t.Parallel()

	file, err := Parse("cli-commander.yml", []byte(sampleConfig))
	require.NoError(t, err)

	names := file.Names()
	names[0] = "changed"
	assert.Equal(t, "test", file.Names()[0])
}

func TestParse_EmptyDocuments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"empty file", ""},
		{"whitespace only", "\n\n   \n"},
		{"comments only", DefaultTemplate},
		{"explicit null", "null\n"},
		{"document marker", "---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file, err := Parse("cli-commander.yml", []byte(tt.data))
			require.NoError(t, err)
			assert.False(t, file.HasSelectors())
			assert.Equal(t, 0, file.Len())
			assert.Empty(t, file.Definitions())
		})
	}
}

func TestParse_NullSelectors(t *testing.T) {
	t.Parallel()

	file, err := Parse("cli-commander.yml", []byte("selectors:\n"))
	require.NoError(t, err)
	assert.True(t, file.HasSelectors())
	assert.Equal(t, 0, file.Len())
}

func TestParse_IgnoresUnknownKeys(t *testing.T) {
	t.Parallel()

	data := `
version: 2
selectors:
  lint:
    command: golangci-lint run
    owner: platform-team
    tags: [ci]
`
	file, err := Parse("cli-commander.yml", []byte(data))
	require.NoError(t, err)

	def, ok := file.Get("lint")
	require.True(t, ok)
	assert.True(t, def.Valid())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		contains string
	}{
		{"syntax error", "selectors:\n  build:\n    command: [unterminated\n", "yaml:"},
		{"scalar root", "just a string\n", "configuration root must be a mapping"},
		{"list root", "- a\n- b\n", "configuration root must be a mapping"},
		{"selectors is a list", "selectors:\n  - build\n", `"selectors" must be a mapping`},
		{"selectors is a scalar", "selectors: build\n", `"selectors" must be a mapping`},
		{"duplicate selector", "selectors:\n  a:\n    command: x\n  a:\n    command: y\n", "defined more than once"},
		{"duplicate selectors key", "selectors: {}\nselectors: {}\n", "duplicate"},
		{"non-scalar selector name", "selectors:\n  ? [a, b]\n  : {command: x}\n", "selector names must be strings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file, err := Parse("/work/cli-commander.yml", []byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, file, "no partial configuration on error")
			assert.True(t, errors.Is(err, ErrConfigParse))

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, "/work/cli-commander.yml", parseErr.Path)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParse_InvalidDefinitionsAreDeferred(t *testing.T) {
	t.Parallel()

	data := `
selectors:
  ok:
    command: echo ok
  empty:
    command: ""
  missing:
    description: Has no command
  scalar: echo hi
  nothing:
  listed:
    - echo
  typed:
    command: {nested: true}
    description: Wrong command type
`
	file, err := Parse("cli-commander.yml", []byte(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"ok", "empty", "missing", "scalar", "nothing", "listed", "typed"}, file.Names())

	tests := []struct {
		name        string
		reason      string
		description string
	}{
		{"empty", ReasonMissingCommand, ""},
		{"missing", ReasonMissingCommand, "Has no command"},
		{"scalar", ReasonNotMapping, ""},
		{"nothing", ReasonNotMapping, ""},
		{"listed", ReasonNotMapping, ""},
		{"typed", "cannot unmarshal", "Wrong command type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			def, ok := file.Get(tt.name)
			require.True(t, ok)
			assert.False(t, def.Valid())
			assert.Equal(t, tt.description, def.Description())

			_, err := def.Selector()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSelector))

			var invalid *InvalidSelectorError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.name, invalid.Name)
			assert.Contains(t, invalid.Reason, tt.reason)
		})
	}
}

func TestParse_AnchorsAndAliases(t *testing.T) {
	t.Parallel()

	data := `
base: &base
  description: Shared description
  command: echo base
selectors:
  first: *base
  second:
    <<: *base
    command: echo second
`
	file, err := Parse("cli-commander.yml", []byte(data))
	require.NoError(t, err)

	def, _ := file.Get("first")
	sel, err := def.Selector()
	require.NoError(t, err)
	assert.Equal(t, "echo base", sel.Command)

	def, _ = file.Get("second")
	sel, err = def.Selector()
	require.NoError(t, err)
	assert.Equal(t, Selector{Command: "echo second", Description: "Shared description"}, sel)
}

func TestParseDefinition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr bool
		command string
	}{
		{"command only", `{"command": "echo success"}`, false, "echo success"},
		{"with description", "description: x\ncommand: exit 0\n", false, "exit 0"},
		{"whitespace command is kept", `{"command": "  "}`, false, "  "},
		{"empty command", `{"command": ""}`, true, ""},
		{"no command key", `{"description": "x"}`, true, ""},
		{"not a mapping", `"not a mapping"`, true, ""},
		{"empty document", "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			def, err := ParseDefinition("sel", []byte(tt.data))
			require.NoError(t, err)

			sel, err := def.Selector()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidSelector), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.command, sel.Command)
		})
	}
}

func TestParseDefinition_SyntaxError(t *testing.T) {
	t.Parallel()

	_, err := ParseDefinition("sel", []byte("command: [oops"))
	assert.True(t, errors.Is(err, ErrConfigParse))
}

func TestInvalidSelectorError_Message(t *testing.T) {
	t.Parallel()

	named := &InvalidSelectorError{Name: "build", Reason: ReasonMissingCommand}
	assert.Equal(t, "selector 'build': selector must have a 'command' field", named.Error())

	anonymous := &InvalidSelectorError{Reason: ReasonNotMapping}
	assert.Equal(t, ReasonNotMapping, anonymous.Error())
}
