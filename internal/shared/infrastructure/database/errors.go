package database

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres condition names, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	conditionUniqueViolation     = "unique_violation"
	conditionForeignKeyViolation = "foreign_key_violation"
	conditionCheckViolation      = "check_violation"
)

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	return hasCondition(err, conditionUniqueViolation)
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return hasCondition(err, conditionForeignKeyViolation)
}

// IsCheckViolation reports whether err is a CHECK constraint violation.
func IsCheckViolation(err error) bool {
	return hasCondition(err, conditionCheckViolation)
}

func hasCondition(err error, name string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code.Name() == name
}
