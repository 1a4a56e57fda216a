package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrKeyNotFound is returned by a key-value gateway when the key has
	// never been written.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrSetNotFound indicates that the requested card set does not exist.
	ErrSetNotFound = fmt.Errorf("%w: set", ErrNotFound)

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g. a set with an ID already in the collection).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidTheme is returned when a theme preference is neither
	// "dark" nor "light".
	ErrInvalidTheme = errors.New("invalid theme")
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrKeyNotFound)
}

// StoreError is a custom error type for store-specific errors with
// additional context about what failed.
type StoreError struct {
	Entity    string // The entity type (e.g. "collection", "theme")
	Operation string // The operation that failed (e.g. "read", "write")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation,
// message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
