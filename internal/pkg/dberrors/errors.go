package dberrors

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
	"github.com/yigit/academico/internal/pkg/apperrors"
)

// PostgreSQL built-in codes shared by every translation table
const (
	UniqueViolation     = 23505
	ForeignKeyViolation = 23503
	CheckViolation      = 23514
)

// Messages maps a numeric SQLSTATE (built-in or raised by a stored function) to the
// message shown to the caller.
type Messages map[int]string

// Code returns the numeric SQLSTATE carried by err. Non-numeric states and non-database
// errors report false.
func Code(err error) (int, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return 0, false
	}
	code, convErr := strconv.Atoi(pgErr.Code)
	if convErr != nil {
		return 0, false
	}
	return code, true
}

// Translate converts a driver error into the application's error kinds.
// A database error whose code is in messages becomes a business-rule error with that
// message; any other database error becomes a business-rule error with a generic
// "No se pudo <operation>" prefix. Errors that never reached the database are wrapped
// and left for the caller to treat as internal.
func Translate(err error, messages Messages, operation string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", operation, err)
	}

	if code, ok := Code(err); ok {
		if msg, found := messages[code]; found {
			return apperrors.NewCustomError(apperrors.ErrBusinessRule, msg)
		}
	}

	return apperrors.NewCustomError(apperrors.ErrBusinessRule, fmt.Sprintf("No se pudo %s: %s", operation, pgErr.Message))
}
