package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrNotRegistered is returned when a table is used without having been
	// registered on a store.
	ErrNotRegistered = errors.New("table not registered")

	// ErrDuplicateTable is returned when two registrations claim the same
	// storage name.
	ErrDuplicateTable = errors.New("duplicate table name")
)

// DecodeError means a persisted row does not parse under the table's schema.
// The read that hit it is aborted; no partial results are returned, so the
// whole record type stays unreadable until the file is fixed.
type DecodeError struct {
	Table  string
	Line   int // 1-based line number in the file, header included
	Column string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("table %s: line %d: column %s: %v", e.Table, e.Line, e.Column, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
