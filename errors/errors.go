// Package errors provides error types and handling for release asset sync
// operations. It wraps underlying filesystem and remote host errors with
// context about the operation and asset that failed.
package errors

import (
	"errors"
	"fmt"
)

// Error represents a sync operation error with context about the operation
// that failed. It wraps the underlying error for use with errors.Is/As.
type Error struct {
	// Op is the operation that failed (e.g. "expand", "upload", "delete")
	Op string

	// Pattern is the glob pattern involved (if applicable)
	Pattern string

	// Name is the asset name involved (if applicable)
	Name string

	// Err is the underlying error
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("assetsync.%s pattern %q: %v", e.Op, e.Pattern, e.Err)
	}
	if e.Name != "" {
		return fmt.Sprintf("assetsync.%s asset %s: %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("assetsync.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithPattern adds glob pattern context to an existing error.
func (e *Error) WithPattern(pattern string) *Error {
	e.Pattern = pattern
	return e
}

// WithName adds asset name context to an existing error.
func (e *Error) WithName(name string) *Error {
	e.Name = name
	return e
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewPatternError creates a new Error with pattern context.
func NewPatternError(op, pattern string, err error) *Error {
	return &Error{
		Op:      op,
		Pattern: pattern,
		Err:     err,
	}
}

// NewAssetError creates a new Error with asset name context.
func NewAssetError(op, name string, err error) *Error {
	return &Error{
		Op:   op,
		Name: name,
		Err:  err,
	}
}

// Sentinel errors for common sync failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrMandatoryAssetNotFound indicates a required glob pattern matched no
	// files. It is fatal to the whole sync pass and is raised before any
	// remote operation is attempted.
	ErrMandatoryAssetNotFound = errors.New("assetsync: mandatory asset not found")

	// ErrAssetUnreadable indicates a discovered file could not be read back
	// at upload time. Isolated to the affected operation.
	ErrAssetUnreadable = errors.New("assetsync: asset unreadable")

	// ErrRemoteRejected indicates the remote host rejected an upload or
	// delete. Isolated to the affected operation.
	ErrRemoteRejected = errors.New("assetsync: remote operation rejected")

	// ErrInvalidInput indicates the provided input is invalid
	ErrInvalidInput = errors.New("assetsync: invalid input")
)

// IsMandatoryAssetNotFound checks if an error indicates a required pattern
// matched nothing. Handles both the sentinel and wrapped errors.
func IsMandatoryAssetNotFound(err error) bool {
	return errors.Is(err, ErrMandatoryAssetNotFound)
}

// IsAssetUnreadable checks if an error indicates a local read failure.
func IsAssetUnreadable(err error) bool {
	return errors.Is(err, ErrAssetUnreadable)
}

// IsRemoteRejected checks if an error indicates a remote rejection.
func IsRemoteRejected(err error) bool {
	return errors.Is(err, ErrRemoteRejected)
}

// IsInvalidInput checks if an error indicates invalid input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
