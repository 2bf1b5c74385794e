package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

// Database & Storage Specific Errors
var (
	ErrUniqueConstraintViolation = errors.New("unique constraint violation")
	ErrForeignKeyConstraint      = errors.New("foreign key constraint violation")
	ErrTransactionFailed         = errors.New("transaction failed")
	ErrDatabaseTimeout           = errors.New("database timeout")
)

// Postgres SQLSTATE codes we translate explicitly.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func NewAlreadyExists(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
	}
}

// NewSlugTaken reports a slug collision on a title-bearing entity. Both the
// application-level pre-check and the store's unique constraint funnel into
// this same error so callers see one conflict shape regardless of which
// check fired first.
func NewSlugTaken(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%s with this title %w", entity, ErrAlreadyExists),
		Details:    "A different record already uses this title; choose another title",
		Field:      "title",
	}
}

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The constraint is the authoritative uniqueness check; the
// in-application pre-check is only a best-effort courtesy.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// Fallback for drivers that do not surface *pgconn.PgError.
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}

// IsForeignKeyViolation reports whether err is a Postgres foreign-key
// constraint violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return err != nil && strings.Contains(err.Error(), "foreign key constraint")
}

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	switch {
	case cause == nil:
		// fall through to the generic error below

	case IsUniqueViolation(cause):
		conflict := NewSlugTaken(entity)
		conflict.Cause = cause
		return conflict

	case IsForeignKeyViolation(cause):
		return &ApiErr{
			StatusCode: http.StatusBadRequest,
			err:        fmt.Errorf("invalid reference in %s", entity),
			Details:    "The referenced resource does not exist or cannot be linked",
			Cause:      cause,
		}

	case errors.Is(cause, gorm.ErrRecordNotFound):
		return &ApiErr{
			StatusCode: http.StatusNotFound,
			err:        fmt.Errorf("%s %w", entity, ErrNotFound),
			Details:    details,
			Cause:      cause,
		}

	case strings.Contains(cause.Error(), "connection"):
		return &ApiErr{
			StatusCode: http.StatusServiceUnavailable,
			err:        ErrDatabaseConnection,
			Details:    "Unable to connect to database",
			Cause:      cause,
		}
	}

	// Generic database error
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

func NewTransactionFailedError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrTransactionFailed,
		Details:    fmt.Sprintf("Transaction failed during %s", operation),
		Cause:      cause,
	}
}
