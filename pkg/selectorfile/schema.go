// SPDX-License-Identifier: MPL-2.0

package selectorfile

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var configSchema string

// ErrSchemaViolation is the sentinel error wrapped by SchemaError.
var ErrSchemaViolation = errors.New("configuration does not match schema")

// SchemaError lists every schema violation found in one file.
type SchemaError struct {
	Path       string
	Violations []string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	if len(e.Violations) == 1 {
		return fmt.Sprintf("%s: %s", e.Path, e.Violations[0])
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.Path, strings.Join(e.Violations, "\n  "))
}

// Unwrap returns ErrSchemaViolation for errors.Is() compatibility.
func (e *SchemaError) Unwrap() error { return ErrSchemaViolation }

// ValidateSchema checks a whole document against the embedded CUE schema:
// the `selectors` key, when present, must map names to mappings with a
// non-empty string command and an optional string description.
//
// Unlike Parse, which defers per-selector problems until the selector is used,
// this reports every violation at once.
func ValidateSchema(path string, data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	if root := documentRoot(&doc); root == nil || isNull(root) {
		return nil
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema, cue.Filename("schema.cue"))
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	file, err := cueyaml.Extract(path, data)
	if err != nil {
		return &ParseError{Path: path, Err: err}
	}
	userValue := ctx.BuildFile(file)
	if userValue.Err() != nil {
		return &ParseError{Path: path, Err: userValue.Err()}
	}

	schemaRoot := schemaValue.LookupPath(cue.ParsePath("#Config"))
	if schemaRoot.Err() != nil {
		return fmt.Errorf("internal error: schema definition #Config not found: %w", schemaRoot.Err())
	}

	unified := schemaRoot.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &SchemaError{Path: path, Violations: schemaViolations(err)}
	}
	return nil
}

func schemaViolations(err error) []string {
	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return []string{err.Error()}
	}

	violations := make([]string, 0, len(cueErrs))
	for _, e := range cueErrs {
		pathStr := strings.Join(cueerrors.Path(e), ".")
		msg := e.Error()

		// CUE sometimes includes the path in the message itself
		if pathStr != "" && strings.HasPrefix(msg, pathStr) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, pathStr), ":"))
		}
		if pathStr != "" {
			msg = pathStr + ": " + msg
		}
		violations = append(violations, msg)
	}
	return violations
}
