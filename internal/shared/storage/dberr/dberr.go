// Package dberr holds the single query-error kind shared by the Postgres stores,
// plus best-effort extraction of Postgres diagnostics for logging.
package dberr

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"jobboard-backend/internal/shared/metrics"
	"jobboard-backend/internal/shared/telemetry"
)

var (
	// ErrNotFound indicates a single-row fetch matched no rows.
	ErrNotFound = errors.New("not found")

	// ErrMultipleRows indicates a single-row fetch matched more than one row.
	ErrMultipleRows = errors.New("multiple rows")
)

const unknown = "unknown"

// QueryError wraps any failure returned by the database driver for one statement.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	if e.Err == nil {
		return e.Op + ": query failed"
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *QueryError) Unwrap() error { return e.Err }

// Is reports sql.ErrNoRows as ErrNotFound.
func (e *QueryError) Is(target error) bool {
	return target == ErrNotFound && errors.Is(e.Err, sql.ErrNoRows)
}

// Diagnostics is what could be extracted from a database error.
type Diagnostics struct {
	Code       string
	Message    string
	Constraint string
}

// Diagnose extracts code, message and violated constraint from err. Fields that
// are not available fall back to "unknown".
func Diagnose(err error) Diagnostics {
	d := Diagnostics{Code: unknown, Message: unknown, Constraint: unknown}
	if err == nil {
		return d
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr == nil {
		d.Message = err.Error()
		return d
	}
	d.Code = orUnknown(pgErr.Code)
	d.Message = orUnknown(pgErr.Message)
	d.Constraint = orUnknown(pgErr.ConstraintName)
	return d
}

// Wrap logs and counts err once, returning it as a *QueryError.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	qerr := &QueryError{Op: op, Err: err}
	metrics.IncStoreError(op)
	telemetry.Error("db.query_failed", map[string]any{
		"op":    op,
		"error": err,
	})
	return qerr
}

// WrapWrite is Wrap for insert and update statements; it adds the Postgres
// diagnostics to the log line.
func WrapWrite(op string, err error) error {
	if err == nil {
		return nil
	}
	qerr := &QueryError{Op: op, Err: err}
	d := Diagnose(err)
	metrics.IncStoreError(op)
	telemetry.Error("db.write_failed", map[string]any{
		"op":         op,
		"error":      err,
		"code":       d.Code,
		"db_message": d.Message,
		"constraint": d.Constraint,
	})
	return qerr
}

// NotFound builds and logs the error returned when a fetch saw zero rows.
func NotFound(op string) error {
	return Wrap(op, sql.ErrNoRows)
}

// MultipleRows builds and logs the error returned when a single-row fetch matched several rows.
func MultipleRows(op string) error {
	return Wrap(op, ErrMultipleRows)
}

// IsLogged reports whether err already went through Wrap or WrapWrite.
func IsLogged(err error) bool {
	var qerr *QueryError
	return errors.As(err, &qerr)
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return unknown
	}
	return s
}
