package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestNewDatabaseError_UniqueViolationBecomesConflict(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_projects_slug"}

	apiErr := NewDatabaseError("create project", "project", pgErr)

	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want %d", apiErr.StatusCode, http.StatusConflict)
	}
	if !errors.Is(apiErr, ErrAlreadyExists) {
		t.Error("conflict from the constraint should satisfy errors.Is(err, ErrAlreadyExists)")
	}
	if apiErr.Field != "title" {
		t.Errorf("field = %q, want %q", apiErr.Field, "title")
	}
	if apiErr.Cause == nil {
		t.Error("the underlying driver error should be preserved as the cause")
	}
}

func TestNewDatabaseError_UniqueViolationMatchesPreCheckShape(t *testing.T) {
	fromConstraint := NewDatabaseError("create news", "news article", &pgconn.PgError{Code: "23505"})
	fromPreCheck := NewSlugTaken("news article")

	if fromConstraint.StatusCode != fromPreCheck.StatusCode {
		t.Errorf("status mismatch: constraint %d, pre-check %d", fromConstraint.StatusCode, fromPreCheck.StatusCode)
	}
	if fromConstraint.Error() != fromPreCheck.Error() {
		t.Errorf("message mismatch: constraint %q, pre-check %q", fromConstraint.Error(), fromPreCheck.Error())
	}
}

func TestNewDatabaseError_WrappedUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("saving row: %w", &pgconn.PgError{Code: "23505"})

	apiErr := NewDatabaseError("create project", "project", wrapped)

	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want %d", apiErr.StatusCode, http.StatusConflict)
	}
}

func TestNewDatabaseError_ForeignKeyViolation(t *testing.T) {
	apiErr := NewDatabaseError("create project", "project", &pgconn.PgError{Code: "23503"})

	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", apiErr.StatusCode, http.StatusBadRequest)
	}
}

func TestNewDatabaseError_RecordNotFound(t *testing.T) {
	apiErr := NewDatabaseError("find project", "project", gorm.ErrRecordNotFound)

	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", apiErr.StatusCode, http.StatusNotFound)
	}
	if !errors.Is(apiErr, ErrNotFound) {
		t.Error("expected errors.Is(err, ErrNotFound)")
	}
}

func TestNewDatabaseError_ConnectionFailure(t *testing.T) {
	apiErr := NewDatabaseError("find projects", "project", errors.New("dial tcp: connection refused"))

	if apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", apiErr.StatusCode, http.StatusServiceUnavailable)
	}
}

func TestNewDatabaseError_Generic(t *testing.T) {
	apiErr := NewDatabaseError("find projects", "project", errors.New("syntax error"))

	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", apiErr.StatusCode, http.StatusInternalServerError)
	}
}

func TestIsUniqueViolation_StringFallback(t *testing.T) {
	if !IsUniqueViolation(errors.New(`duplicate key value violates unique constraint "idx_projects_slug"`)) {
		t.Error("expected the duplicate key message fallback to match")
	}
	if IsUniqueViolation(errors.New("some other failure")) {
		t.Error("unrelated error should not match")
	}
	if IsUniqueViolation(nil) {
		t.Error("nil should not match")
	}
}
