// Package pgerr classifies errors reported by the lib/pq PostgreSQL driver.
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

const uniqueViolation = "unique_violation"

// IsUniqueViolation reports whether err, or any error it wraps, is a unique
// constraint violation raised by PostgreSQL.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code.Name() == uniqueViolation
}

// Constraint returns the name of the constraint a PostgreSQL error refers to, if any.
func Constraint(err error) string {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return ""
	}
	return pqErr.Constraint
}
