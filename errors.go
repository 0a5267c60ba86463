package sculpt

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for common library error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrNotFound indicates a lookup by column and key found no matching row.
	ErrNotFound = errors.New("entry not found")

	// ErrAttributeNotFound indicates an attribute-style lookup failed.
	// It is distinct from ErrNotFound so that callers relying on
	// "missing attribute" semantics (templating, reflection layers) can
	// tell the two failure shapes apart.
	ErrAttributeNotFound = errors.New("attribute not found")

	// ErrReadOnly indicates an attempted mutation of a read-only structure.
	ErrReadOnly = errors.New("structure is read-only")

	// ErrInvalidConfig indicates malformed construction input, such as
	// duplicate column names or rows wider than the declared schema.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Error kinds categorize errors by their type.
const (
	// KindNotFound represents errors where a row or entry was not found.
	KindNotFound = "not_found"

	// KindAttribute represents attribute-style lookup failures.
	KindAttribute = "attribute"

	// KindUnsupported represents operations the receiver does not support,
	// such as mutating an immutable structure.
	KindUnsupported = "unsupported"

	// KindConfiguration represents errors in construction input.
	KindConfiguration = "configuration"

	// KindInternal represents internal library errors.
	KindInternal = "internal"
)

// Error is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category of
// error.
//
// Error implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
//
// Example usage:
//
//	err := &Error{
//		Op:   "enum.Get",
//		Kind: KindNotFound,
//		Err:  ErrNotFound,
//	}
type Error struct {
	// Op is the operation that failed (e.g., "enum.New", "autoload.Run").
	Op string

	// Kind categorizes the error (e.g., KindNotFound, KindConfiguration).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	// This can include column names, lookup keys, or other debugging
	// information.
	Context map[string]any
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("sculpt: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("sculpt: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("sculpt: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error, allowing comparison based on
// the underlying error or on another Error's Op and Kind.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a new Error with the provided context added.
// This is useful for adding debugging information to errors.
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	if newErr.Context == nil {
		newErr.Context = make(map[string]any)
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// NewNotFoundError creates a new Error with KindNotFound.
func NewNotFoundError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindNotFound,
		Err:  err,
	}
}

// NewAttributeError creates a new Error with KindAttribute.
func NewAttributeError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindAttribute,
		Err:  err,
	}
}

// NewUnsupportedError creates a new Error with KindUnsupported.
func NewUnsupportedError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindUnsupported,
		Err:  err,
	}
}

// NewConfigurationError creates a new Error with KindConfiguration.
func NewConfigurationError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindConfiguration,
		Err:  err,
	}
}

// NewInternalError creates a new Error with KindInternal.
func NewInternalError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindInternal,
		Err:  err,
	}
}

// CloseWithLog attempts to close the provided resource and logs any error
// at warning level. This is intended for use in defer statements to ensure
// cleanup errors are not silently ignored.
//
// The name parameter should describe the resource being closed (e.g.,
// "definition file"). If logger is nil, slog.Default() is used.
func CloseWithLog(closer io.Closer, logger *slog.Logger, name string) {
	if closer == nil {
		return
	}

	if logger == nil {
		logger = slog.Default()
	}

	if err := closer.Close(); err != nil {
		logger.Warn("failed to close resource",
			"resource", name,
			"error", err)
	}
}
