package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/coursehub/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	MaterialRepository   *MaterialRepository
	FileRepository       *MaterialFileRepository
	AssignmentRepository *AssignmentRepository
	SubmissionRepository *SubmissionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(gw *db.Gateway) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(gw),
		CourseRepository:     NewCourseRepository(gw),
		EnrollmentRepository: NewEnrollmentRepository(gw),
		MaterialRepository:   NewMaterialRepository(gw),
		FileRepository:       NewMaterialFileRepository(gw),
		AssignmentRepository: NewAssignmentRepository(gw),
		SubmissionRepository: NewSubmissionRepository(gw),
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// queryRow runs a single-row statement on its own connection. A missing row
// is reported as notFound.
func queryRow(ctx context.Context, gw *db.Gateway, op string, q squirrel.Sqlizer, notFound error, scan func(rowScanner) error) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build %s query: %w", op, err)
	}

	return gw.WithConn(ctx, op, func(ctx context.Context, conn *sql.Conn) error {
		err := scan(conn.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) && notFound != nil {
			return notFound
		}
		return err
	})
}

// queryRows runs a multi-row statement on its own connection, calling scan
// once per row in result order.
func queryRows(ctx context.Context, gw *db.Gateway, op string, q squirrel.Sqlizer, scan func(rowScanner) error) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build %s query: %w", op, err)
	}

	return gw.WithConn(ctx, op, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			if err := scan(rows); err != nil {
				return err
			}
		}
		return rows.Err()
	})
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
