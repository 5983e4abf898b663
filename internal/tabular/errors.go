package tabular

import (
	"errors"
	"fmt"
)

var (
	// ErrNoData marks a query against a store with no uploaded dataset.
	ErrNoData = errors.New("no data uploaded")
	// ErrFormat marks an upload rejected before parsing, e.g. a bad extension.
	ErrFormat = errors.New("unsupported file format")
	// ErrParse marks bytes that could not be decoded into a table.
	ErrParse = errors.New("failed to parse file")
)

// Error wraps a sentinel error with additional context
type Error struct {
	Err     error  // The underlying sentinel error
	Context string // Additional error context
}

// Error satisfies the error interface
func (e *Error) Error() string {
	if e.Context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Context)
}

// Unwrap implements the errors.Unwrap interface for compatibility with errors.Is/As
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new tabular error with context
func NewError(err error, format string, args ...interface{}) *Error {
	return &Error{
		Err:     err,
		Context: fmt.Sprintf(format, args...),
	}
}
