// Package errors provides sentinel errors, structured error details and
// exit code mapping for the scadparam CLI.
package errors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a schema or value validation failure.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient permissions on a file.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a file or parameter was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path and line number (optional).
	Location string

	// Field is the field or parameter name (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for _, k := range slices.Sorted(maps.Keys(e.Context)) {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewUnknownParameterError reports a parameter name that is not declared in
// the file at location. suggestions are offered as a hint.
func NewUnknownParameterError(name, location string, suggestions []string) error {
	hint := ""
	if len(suggestions) > 0 {
		hint = "Did you mean " + strings.Join(suggestions, " or ") + "?"
	}
	return &DetailError{
		Type:     "unknown parameter",
		Message:  fmt.Sprintf("parameter %q is not declared in the file header", name),
		Location: location,
		Field:    name,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewPermissionError creates a permission denied error with details.
func NewPermissionError(message string, context map[string]string, hint string) error {
	return &DetailError{
		Type:    "permission denied",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   ErrPermission,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
