package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrNotNullViolation = "23502"
	PgErrUniqueViolation  = "23505"
	PgErrCheckViolation   = "23514"
)

// IsPgErrorWithCode сообщает, что err - ошибка PostgreSQL с указанным SQLSTATE.
func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsConstraintViolation: строку отверг NOT NULL или CHECK таблицы packages.
func IsConstraintViolation(err error) bool {
	return IsPgErrorWithCode(err, PgErrNotNullViolation) || IsPgErrorWithCode(err, PgErrCheckViolation)
}

// IsNoRows - QueryRow не нашёл ни одной строки.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
