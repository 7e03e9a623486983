package db

import "errors"

// ErrNoURLs signals a client configured without cluster endpoints.
var ErrNoURLs = errors.New("db: at least one url is required")

// Op constants name the cluster API called, for error context.
const (
	OpPing    = "PING"
	OpRefresh = "_refresh"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
