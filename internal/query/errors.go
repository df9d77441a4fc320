package query

import (
	"errors"
	"fmt"
)

// ErrCaseNotFound is returned when a case index does not exist in the table.
var ErrCaseNotFound = errors.New("query: case not found")

// QueryError reports invalid query parameters: an unknown field, a field of
// the wrong kind, or an impossible range. It indicates a caller bug, not
// dirty data.
type QueryError struct {
	Op     string
	Field  string
	Reason string
}

func (e *QueryError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("query: %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("query: %s %q: %s", e.Op, e.Field, e.Reason)
}

func queryErr(op, field, format string, args ...any) *QueryError {
	return &QueryError{Op: op, Field: field, Reason: fmt.Sprintf(format, args...)}
}
