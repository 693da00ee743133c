package dberrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes surfaced as constraint violations.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// ConstraintMap maps a constraint name to the domain error raised when a
// statement violates it. Each repository declares one map per statement so
// the translation stays explicit and exhaustive.
type ConstraintMap map[string]error

// Constraint extracts the violated constraint name from a pgx error.
// It returns false when the error is not a constraint violation.
func Constraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}

	switch pgErr.Code {
	case codeUniqueViolation, codeForeignKeyViolation, codeCheckViolation:
		return pgErr.ConstraintName, true
	}
	return "", false
}

// Translate converts a driver error into a domain error using the given
// constraint map. A violated constraint present in the map yields its domain
// error; an unrecognized constraint, or any other failure, falls through to
// fallback with the cause attached for logging. The driver error never
// becomes the error identity.
func Translate(err error, constraints ConstraintMap, fallback error) error {
	if name, ok := Constraint(err); ok {
		if domainErr, known := constraints[name]; known {
			return domainErr
		}
	}
	return fmt.Errorf("%w: %v", fallback, err)
}

// IsDuplicateConstraintError checks if the error is a unique violation on a
// specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation && pgErr.ConstraintName == constraintName
}
