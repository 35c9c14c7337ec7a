// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"

	"golang.org/x/exp/slices"
)

type (
	// ActionableError is a failure cmdr reports to the user: the step that
	// failed, the path it failed on, what to try next, and optionally the
	// catalog entry with longer guidance.
	//
	//	return issue.NewErrorContext().
	//		WithOperation("read configuration").
	//		WithResource(path).
	//		WithSuggestion("Check that the file is readable").
	//		WithIssue(issue.ConfigAccessId).
	//		Wrap(err).
	//		BuildError()
	ActionableError struct {
		Operation   string
		Resource    string
		Suggestions []string
		Cause       error
		// IssueID is zero when no catalog entry applies.
		IssueID Id
	}

	// ErrorContext accumulates the fields of an ActionableError. Build copies
	// them, so one context can produce several errors.
	ErrorContext struct {
		operation   string
		resource    string
		suggestions []string
		cause       error
		issueID     Id
	}
)

// NewErrorContext returns an empty builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// Error renders "failed to <operation>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format returns Error followed by one bullet per suggestion.
func (e *ActionableError) Format() string {
	if len(e.Suggestions) == 0 {
		return e.Error()
	}
	var msg strings.Builder
	msg.WriteString(e.Error())
	msg.WriteString("\n")
	for _, s := range e.Suggestions {
		msg.WriteString("\n  • ")
		msg.WriteString(s)
	}
	return msg.String()
}

// IssueOf returns the first non-zero IssueID found in err's chain, or
// fallback when none is set.
func IssueOf(err error, fallback Id) Id {
	for err != nil {
		var ae *ActionableError
		if !errors.As(err, &ae) {
			break
		}
		if ae.IssueID != 0 {
			return ae.IssueID
		}
		err = ae.Cause
	}
	return fallback
}

func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.operation = op
	return c
}

func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.resource = res
	return c
}

// WithSuggestion appends one remediation line; call it once per line.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	c.suggestions = append(c.suggestions, sug)
	return c
}

// WithIssue links the error to a catalog entry shown in verbose mode.
func (c *ErrorContext) WithIssue(id Id) *ErrorContext {
	c.issueID = id
	return c
}

func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build returns nil when no operation was set.
func (c *ErrorContext) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: slices.Clone(c.suggestions),
		Cause:       c.cause,
		IssueID:     c.issueID,
	}
}

// BuildError is Build typed as error, keeping a nil result a nil interface.
func (c *ErrorContext) BuildError() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}
