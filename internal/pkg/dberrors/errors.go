package dberrors

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
	CodeNotNullViolation    = "23502"
)

// ConstraintViolation returns the violated constraint kind ("unique", "foreign_key",
// "check", "not_null") or "" when err is not an integrity violation.
// SQLite errors are matched on their message since the driver exposes no SQLSTATE.
func ConstraintViolation(err error) string {
	if err == nil {
		return ""
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case CodeUniqueViolation:
			return "unique"
		case CodeForeignKeyViolation:
			return "foreign_key"
		case CodeCheckViolation:
			return "check"
		case CodeNotNullViolation:
			return "not_null"
		}
		return ""
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"), strings.Contains(msg, "PRIMARY KEY constraint failed"):
		return "unique"
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return "foreign_key"
	case strings.Contains(msg, "CHECK constraint failed"):
		return "check"
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return "not_null"
	}
	return ""
}

// IsConnectionError reports whether err means the store could not be reached
// (dial failure, auth failure, dropped connection) rather than a rejected statement.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08: connection exception, class 28: invalid authorization.
		return strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "28")
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
