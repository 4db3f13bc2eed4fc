package core

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrTableExists is returned when creating a table whose name is taken
	ErrTableExists = errors.New("table already exists")

	// ErrTableNotFound is returned when a named table does not exist
	ErrTableNotFound = errors.New("table not found")

	// ErrSchemaMismatch is returned when an insert supplies the wrong number of values
	ErrSchemaMismatch = errors.New("value count does not match schema")

	// ErrUnknownField is returned when an insert references a field absent from the schema
	ErrUnknownField = errors.New("unknown field")

	// ErrTypeMismatch is returned when an inserted value disagrees with its declared field type
	ErrTypeMismatch = errors.New("value type does not match field type")

	// ErrFieldNotFound is returned when reading a field a row does not carry
	ErrFieldNotFound = errors.New("field not found")

	// ErrEmptyName is returned when a table or field name is empty
	ErrEmptyName = errors.New("empty name")

	// ErrDuplicateField is returned when adding a field whose name is taken
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrNoPath is returned by Save/Load on a database with no bound file path
	ErrNoPath = errors.New("no database file path configured")
)

// StoreError wraps errors with operation context
type StoreError struct {
	Op  string // Operation name
	Err error  // Underlying error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("sqrel: %v", e.Err)
	}
	return fmt.Sprintf("sqrel: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target
func (e *StoreError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// wrapError wraps an error with operation context
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
