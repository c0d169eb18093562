package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func pgCode(err error) string {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return ""
}

// IsDuplicate - signals that the error is a unique violation.
func IsDuplicate(err error) bool { return pgCode(err) == "23505" }

// IsForeignKey - signals that the error is a foreign key violation.
func IsForeignKey(err error) bool { return pgCode(err) == "23503" }

// IsCheckViolation - signals that the error is a check constraint violation.
func IsCheckViolation(err error) bool { return pgCode(err) == "23514" }

// IsDuplicateObject - signals that a CREATE TYPE hit an existing type.
func IsDuplicateObject(err error) bool { return pgCode(err) == "42710" }

// IsNotFound - signals that the query returned no rows.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
