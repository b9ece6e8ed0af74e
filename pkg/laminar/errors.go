package laminar

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrorType categorizes the fatal and informational error kinds laminar can
// raise, per SPEC_FULL.md §7.
type ErrorType string

const (
	// MalformedToken: bad sigil, operation not leftmost, or zero-length id.
	MalformedToken ErrorType = "malformed_token"
	// UnknownToken: identifier absent from the registry.
	UnknownToken ErrorType = "unknown_token"
	// DuplicateToken: registry-time id conflict.
	DuplicateToken ErrorType = "duplicate_token"
	// TypeMismatch: an operation ran against the wrong container kind.
	TypeMismatch ErrorType = "type_mismatch"
	// PathNotFound: raised by inspection/query surfaces, never by Apply.
	PathNotFound ErrorType = "path_not_found"
	// EnvNotFound: an unknown environment was requested.
	EnvNotFound ErrorType = "env_not_found"
	// UnsatisfiablePolicy: no weight assignment satisfies the requested order.
	UnsatisfiablePolicy ErrorType = "unsatisfiable_policy"
	// LoaderFailure: loader-side I/O or parse error, kept as the Cause.
	LoaderFailure ErrorType = "loader_failure"
)

// Error is laminar's typed error, carrying the path (if any) where the
// problem was detected and the underlying cause.
type Error struct {
	Type    ErrorType
	Message string
	Path    string
	Cause   error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s at %s: %s", e.Type, e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap lets errors.Is/As see through to Cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewMalformedTokenError reports a token string that doesn't parse.
func NewMalformedTokenError(message string) *Error {
	return &Error{Type: MalformedToken, Message: message}
}

// NewUnknownTokenError reports an unregistered token identifier.
func NewUnknownTokenError(id string) *Error {
	return &Error{Type: UnknownToken, Message: fmt.Sprintf("unknown token: %q", id)}
}

// NewDuplicateTokenError reports a registry id collision.
func NewDuplicateTokenError(id string) *Error {
	return &Error{Type: DuplicateToken, Message: fmt.Sprintf("token %q already registered with a different callback", id)}
}

// NewTypeMismatchError reports an operation run against the wrong container kind.
func NewTypeMismatchError(path, message string) *Error {
	return &Error{Type: TypeMismatch, Path: path, Message: message}
}

// NewPathNotFoundError reports a missing path during inspection.
func NewPathNotFoundError(path string) *Error {
	return &Error{Type: PathNotFound, Path: path, Message: "path not found"}
}

// NewEnvNotFoundError reports an unknown environment name.
func NewEnvNotFoundError(env string) *Error {
	return &Error{Type: EnvNotFound, Message: fmt.Sprintf("environment %q not found", env)}
}

// NewUnsatisfiablePolicyError reports a weight search that exhausted its cap.
func NewUnsatisfiablePolicyError(attempts int) *Error {
	return &Error{Type: UnsatisfiablePolicy, Message: fmt.Sprintf("no weight assignment found after %d attempts", attempts)}
}

// NewLoaderFailureError wraps a loader-side I/O or parse error.
func NewLoaderFailureError(loaderID string, cause error) *Error {
	return &Error{Type: LoaderFailure, Message: fmt.Sprintf("loader %q failed", loaderID), Cause: cause}
}

// Errors accumulates independent errors encountered while walking a tree (a
// malformed token doesn't stop the builder from reporting others it finds in
// the same pass). Backed by hashicorp/go-multierror rather than a hand-rolled
// slice-and-join accumulator.
type Errors struct {
	multi *multierror.Error
}

// Append adds err to the accumulator; a nil err is a no-op, and a *Errors
// passed in has its errors flattened rather than nested.
func (e *Errors) Append(err error) {
	if err == nil {
		return
	}
	if other, ok := err.(*Errors); ok {
		if other.multi != nil {
			e.multi = multierror.Append(e.multi, other.multi.Errors...)
		}
		return
	}
	e.multi = multierror.Append(e.multi, err)
}

// Count returns the number of accumulated errors.
func (e *Errors) Count() int {
	if e.multi == nil {
		return 0
	}
	return len(e.multi.Errors)
}

// ErrorOrNil returns nil if no errors were appended, else itself.
func (e *Errors) ErrorOrNil() error {
	if e.Count() == 0 {
		return nil
	}
	return e
}

func (e *Errors) Error() string {
	if e.multi == nil {
		return "no errors"
	}
	return e.multi.Error()
}
