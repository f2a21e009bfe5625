package migrations_test

import (
	"context"
	"database/sql"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/migrations"
	"github.com/yigit/coursehub/internal/testutil"
)

func TestMigrateIsIdempotent(t *testing.T) {
	gw := testutil.NewTestGateway(t)
	ctx := context.Background()

	// A second run must find the version recorded and change nothing.
	if err := migrations.NewMigrator(gw, zerolog.New(io.Discard)).Migrate(ctx); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	var versions int
	err := gw.WithConn(ctx, "count_versions", func(ctx context.Context, conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&versions)
	})
	if err != nil {
		t.Fatalf("count versions: %v", err)
	}
	if versions != 1 {
		t.Fatalf("expected exactly one recorded migration, got %d", versions)
	}
}

func TestMigrateCreatesEveryTable(t *testing.T) {
	gw := testutil.NewTestGateway(t)
	ctx := context.Background()

	tables := []string{"users", "courses", "enrollments", "course_materials", "material_files", "assignments", "submissions"}
	for _, table := range tables {
		var n int
		err := gw.WithConn(ctx, "probe", func(ctx context.Context, conn *sql.Conn) error {
			return conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n)
		})
		if err != nil {
			t.Fatalf("probe %s: %v", table, err)
		}
		if n != 1 {
			t.Fatalf("table %s missing", table)
		}
	}
}

func TestSplitStatements(t *testing.T) {
	content := `
-- comment
CREATE TABLE a (
    id TEXT
);

CREATE INDEX idx ON a(id);
`
	stmts := migrations.SplitStatements(content)
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d: %q", len(stmts), stmts)
	}
	if !strings.HasPrefix(stmts[0], "CREATE TABLE a") || strings.HasSuffix(stmts[0], ";") {
		t.Fatalf("unexpected first statement %q", stmts[0])
	}
	if stmts[1] != "CREATE INDEX idx ON a(id)" {
		t.Fatalf("unexpected second statement %q", stmts[1])
	}
}
