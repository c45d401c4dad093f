// Package errors provides sentinel errors for the libforge CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input or a violated precondition.
	ErrValidation = errors.New("validation error")

	// ErrAcquisition indicates the template could not be cloned or copied.
	ErrAcquisition = errors.New("acquisition error")

	// ErrConflict indicates an existing path blocked a copy without --overwrite.
	ErrConflict = errors.New("path conflict")

	// ErrParse indicates a manifest could not be parsed.
	ErrParse = errors.New("parse error")

	// ErrNotFound indicates a manifest or file was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

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
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
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
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
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

// NewConflictError creates a path conflict error with details.
func NewConflictError(message, location, hint string) error {
	return &DetailError{
		Type:     "path conflict",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrConflict,
	}
}

// NewAcquisitionError creates a template acquisition error with details.
func NewAcquisitionError(message string, context map[string]string, cause error) error {
	return &DetailError{
		Type:    "acquisition failed",
		Message: message,
		Context: context,
		Cause:   fmt.Errorf("%w: %w", ErrAcquisition, cause),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
