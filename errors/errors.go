// Package errors provides error types and handling for fileio operations.
package errors

import (
	"errors"
	"fmt"
)

// Error represents a fileio operation error with context about the operation
// that failed. It wraps the underlying filesystem or codec error with the
// target path for better debugging.
type Error struct {
	// Op is the operation that failed (e.g., "read", "create", "backup")
	Op string

	// Path is the file path the operation targeted (if applicable)
	Path string

	// Err is the underlying error from the filesystem or codec
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("fileio.%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("fileio.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithPath adds path context to an existing error.
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
}

// WithMessage wraps the underlying error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	e.Err = fmt.Errorf("%s: %w", message, e.Err)
	return e
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewPathError creates a new Error with path context.
func NewPathError(op, path string, err error) *Error {
	return &Error{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// Sentinel errors for common fileio operation failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrNotFound indicates that the target file does not exist
	ErrNotFound = errors.New("fileio: file not found")

	// ErrIO indicates a filesystem-level failure such as a permission or
	// device error
	ErrIO = errors.New("fileio: i/o error")

	// ErrParse indicates that the file content could not be decoded in the
	// requested format
	ErrParse = errors.New("fileio: malformed content")

	// ErrSerialize indicates that a value could not be encoded in the
	// requested format
	ErrSerialize = errors.New("fileio: value not serializable")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("fileio: invalid input")
)

// IsNotFound checks if an error indicates that a file was not found.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsIO checks if an error indicates a filesystem-level failure.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsParse checks if an error indicates malformed file content.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsSerialize checks if an error indicates an unserializable value.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsSerialize(err error) bool {
	return errors.Is(err, ErrSerialize)
}

// IsInvalidInput checks if an error indicates invalid input.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
