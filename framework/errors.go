package framework

import (
	"errors"
	"fmt"
)

// AssertionError represents a violated expectation. A test that panics with an AssertionError,
// or with an error wrapping one, is recorded as failed rather than errored.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: %s", e.Message)
}

// NewAssertionError creates a new AssertionError
func NewAssertionError(message string) *AssertionError {
	return &AssertionError{Message: message}
}

// IsAssertionError checks if the error is or wraps an AssertionError
func IsAssertionError(err error) bool {
	var assertionErr *AssertionError
	return err != nil && errors.As(err, &assertionErr)
}

// UnknownMethodError is raised when a test case names a method its fixture type never registered.
type UnknownMethodError struct {
	Fixture string
	Method  string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("fixture %q has no method %q", e.Fixture, e.Method)
}
