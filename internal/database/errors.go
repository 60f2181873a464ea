package database

import (
	"database/sql"
	"errors"
	"fmt"
)

// The closed set of persistence failures. Every error returned by this
// package wraps exactly one of them; test with errors.Is.
var (
	ErrConnection   = errors.New("database: connection failed")
	ErrNotFound     = errors.New("database: no rows")
	ErrMultipleRows = errors.New("database: multiple rows where one expected")
	ErrQuery        = errors.New("database: query failed")
)

// Error records the failed operation, its kind and the driver error, if any.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the underlying error to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(op string, kind, err error) error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// classify maps a driver error to the closed set.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var dbErr *Error
	if errors.As(err, &dbErr) {
		return err
	}
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return newError(op, ErrNotFound, nil)
	case errors.Is(err, sql.ErrConnDone):
		return newError(op, ErrConnection, err)
	}
	return newError(op, ErrQuery, err)
}
