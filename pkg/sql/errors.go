package sql

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

const uniqueViolationCode pq.ErrorCode = "23505"

var ErrNoRows = sql.ErrNoRows

// IsUniqueViolation returns the violated constraint name.
func IsUniqueViolation(err error) (constraint string, ok bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolationCode {
		return "", false
	}

	return pqErr.Constraint, true
}
