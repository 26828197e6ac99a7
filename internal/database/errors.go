package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Constraint violations reported by the storage engine, classified.
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate value violates a unique constraint")
	ErrProtected        = errors.New("record is still referenced by protected rows")
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrConstraint       = errors.New("value violates a column constraint")
)

// errForeignKey is resolved to ErrInvalidReference or ErrProtected by the caller's operation
var errForeignKey = errors.New("foreign key violation")

// Postgres SQLSTATE codes
const (
	pgStringTooLong       = "22001"
	pgNumericOutOfRange   = "22003"
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// TranslateError classifies an error returned by an insert, update or query.
// A foreign key violation here means the row points at something missing.
// Unrecognized errors are returned unchanged.
func TranslateError(err error) error {
	kind := classify(err)
	switch kind {
	case nil:
		return err
	case errForeignKey:
		kind = ErrInvalidReference
	}
	return fmt.Errorf("%w: %v", kind, err)
}

// TranslateDeleteError classifies an error returned by a delete. A foreign key
// violation here means a RESTRICT reference blocked the delete.
func TranslateDeleteError(err error) error {
	kind := classify(err)
	switch kind {
	case nil:
		return err
	case errForeignKey:
		kind = ErrProtected
	}
	return fmt.Errorf("%w: %v", kind, err)
}

func classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errForeignKey
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifySQLState(pgErr.Code)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifySQLState(string(pqErr.Code))
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return ErrDuplicate
		case sqlite3.ErrConstraintForeignKey:
			return errForeignKey
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
			return ErrConstraint
		}
	}

	return nil
}

func classifySQLState(code string) error {
	switch code {
	case pgUniqueViolation:
		return ErrDuplicate
	case pgForeignKeyViolation:
		return errForeignKey
	case pgCheckViolation, pgNotNullViolation, pgStringTooLong, pgNumericOutOfRange:
		return ErrConstraint
	}
	return nil
}
