package dberrors

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestConstraintViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "pg unique", err: &pgconn.PgError{Code: CodeUniqueViolation}, want: "unique"},
		{name: "pg fk wrapped", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: CodeForeignKeyViolation}), want: "foreign_key"},
		{name: "pg other", err: &pgconn.PgError{Code: "42P01"}, want: ""},
		{name: "sqlite primary key", err: errors.New("constraint failed: PRIMARY KEY constraint failed: enrollments.student_id"), want: "unique"},
		{name: "sqlite check", err: errors.New("CHECK constraint failed: max_grade >= 0"), want: "check"},
		{name: "sqlite fk", err: errors.New("FOREIGN KEY constraint failed"), want: "foreign_key"},
		{name: "plain", err: errors.New("no such table"), want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ConstraintViolation(tc.err); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestIsConnectionError(t *testing.T) {
	if !IsConnectionError(driver.ErrBadConn) {
		t.Fatalf("bad conn is a connection error")
	}
	if !IsConnectionError(&pgconn.PgError{Code: "28P01"}) {
		t.Fatalf("invalid password is a connection error")
	}
	if IsConnectionError(&pgconn.PgError{Code: CodeUniqueViolation}) {
		t.Fatalf("unique violation is not a connection error")
	}
	if IsConnectionError(context.DeadlineExceeded) {
		t.Fatalf("deadline is not a connection error")
	}
	if IsConnectionError(nil) {
		t.Fatalf("nil is not a connection error")
	}
}
