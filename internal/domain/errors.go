package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrConfigurationMissing   = errors.New("configuration is missing or empty")
	ErrMissingExecutablePath  = errors.New("configuration has no " + ExecutableFilePathKey)
	ErrUnsupportedCommandType = errors.New("unsupported command type")
	ErrLaunchFailure          = errors.New("failed to launch process")
	ErrEmptyCommand           = errors.New("command cannot be empty")
	ErrUnsupportedFormat      = errors.New("unsupported document format")
	ErrInvalidDocument        = errors.New("document root must be an object or an array")
)

// UnsupportedCommandTypeError is returned by the factory when no builder
// is registered for the requested command type.
type UnsupportedCommandTypeError struct {
	Value CommandType
}

// Error implements the error interface.
func (e *UnsupportedCommandTypeError) Error() string {
	return fmt.Sprintf("unsupported command type %q", string(e.Value))
}

// Unwrap returns ErrUnsupportedCommandType so callers can use errors.Is.
func (e *UnsupportedCommandTypeError) Unwrap() error { return ErrUnsupportedCommandType }

// LaunchError is returned when the operating system could not start a process.
// It is distinct from a process that started and exited non-zero.
type LaunchError struct {
	Err     error
	Program string
}

// Error implements the error interface.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %s: %v", e.Program, e.Err)
}

// Unwrap returns both ErrLaunchFailure and the underlying cause.
func (e *LaunchError) Unwrap() []error { return []error{ErrLaunchFailure, e.Err} }
