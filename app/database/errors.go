package database

import (
	"context"
	"errors"
	"strings"

	"github.com/lib/pq"
)

// Sentinel errors for the data-access layer. Callers use errors.Is; the
// original driver error stays wrapped underneath.
var (
	// ErrMissingSchema marks an undefined table or column: the probed
	// schema variant does not exist in this deployment. Recoverable — the
	// caller tries the next variant.
	ErrMissingSchema = errors.New("database: relation or column does not exist")

	// ErrNotFound is returned when a lookup matches no rows.
	ErrNotFound = errors.New("database: record not found")

	// ErrTimeout is returned when a statement exceeds its deadline.
	ErrTimeout = errors.New("database: query timeout")
)

// SQLSTATE classes for undefined relations/columns.
const (
	pgUndefinedTable  = "42P01"
	pgUndefinedColumn = "42703"
)

// IsMissingSchema reports whether err means the queried table or column is
// absent. Checks the pq error code first, then falls back to message text
// for errors that arrive stripped of their driver type.
func IsMissingSchema(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrMissingSchema) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		return code == pgUndefinedTable || code == pgUndefinedColumn
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "does not exist") &&
		(strings.Contains(msg, "relation") || strings.Contains(msg, "column") || strings.Contains(msg, "table")) {
		return true
	}
	return false
}

// IsTimeout reports whether err is a context cancellation or deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.Is(err, ErrTimeout)
}
