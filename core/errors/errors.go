// Package errors provides standardized error types and helpers for the WillowConcord codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported indicates an unsupported operation or format
	ErrUnsupported = errors.New("unsupported")
)

// PathError indicates a root path that is neither a regular file nor a
// directory. The analyzer treats it as diagnostic rather than fatal.
type PathError struct {
	Path string // Path that could not be processed
	Err  error  // Underlying error, if any
}

func (e *PathError) Error() string {
	return fmt.Sprintf("unable to process path: %s", e.Path)
}

func (e *PathError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// DecodeError indicates a candidate file could not be decoded as UTF-8
type DecodeError struct {
	Path string // File that failed to decode
	Err  error  // Underlying error, if any
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot decode %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot decode %s: invalid UTF-8", e.Path)
}

func (e *DecodeError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "open", "walk")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError represents markup that could not be interpreted where a value
// is required, such as a non-numeric chapter heading
type ParseError struct {
	Path    string // File being parsed, if applicable
	Line    int    // 1-based line number
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("failed to parse line %d: %s", e.Line, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// Helper functions for creating common errors

// NewPath creates a PathError
func NewPath(path string) *PathError {
	return &PathError{Path: path}
}

// NewDecode creates a DecodeError
func NewDecode(path string, err error) *DecodeError {
	return &DecodeError{Path: path, Err: err}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError
func NewParse(path string, line int, message string) *ParseError {
	return &ParseError{
		Path:    path,
		Line:    line,
		Message: message,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
