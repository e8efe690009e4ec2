// Package config loads the optional user preferences of create-react-kit.
// It reads a single YAML file, applies compiled defaults and environment
// overrides, and validates the result.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidYAML indicates invalid YAML syntax in the configuration file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrInvalidLogLevel indicates log_level is not a known slog level name.
	ErrInvalidLogLevel = errors.New("config: invalid log level")

	// ErrUnknownLibrary indicates a default library is not in the catalog.
	ErrUnknownLibrary = errors.New("config: unknown library identifier")
)

// FieldError reports one invalid preference and the YAML key it came from.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %v: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// FieldErrors lists every invalid preference found by Validate, in the
// order the keys appear in the file format.
type FieldErrors []*FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes each field's cause to errors.Is and errors.As.
func (e FieldErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, fe := range e {
		errs[i] = fe
	}
	return errs
}
