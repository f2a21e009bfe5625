// Package testutil provides a migrated in-memory store for repository,
// service and controller tests.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/migrations"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/db"
)

var dbSeq atomic.Int64

// SQLiteMemoryConfig returns a config for a private, uniquely named in-memory database.
func SQLiteMemoryConfig() config.DatabaseConfig {
	name := fmt.Sprintf("coursehub_test_%d", dbSeq.Add(1))
	return config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   "file:" + name + "?mode=memory&cache=shared",
	}
}

// NewTestGateway opens a fresh in-memory SQLite store with the schema applied.
// The gateway is closed when the test ends.
func NewTestGateway(t testing.TB) *db.Gateway {
	t.Helper()

	ctx := context.Background()
	gw, err := db.Open(ctx, SQLiteMemoryConfig())
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { _ = gw.Close() })

	if err := migrations.NewMigrator(gw, zerolog.New(io.Discard)).Migrate(ctx); err != nil {
		t.Fatalf("migrate test store: %v", err)
	}
	return gw
}

// SetColumn overwrites one column of one row, bypassing the repositories.
// Tests use it to move timestamps the store normally assigns.
func SetColumn(t testing.TB, gw *db.Gateway, table, keyColumn string, key interface{}, column string, value interface{}) {
	t.Helper()

	query, args, err := gw.Builder().
		Update(table).
		Set(column, value).
		Where(keyColumn+" = ?", key).
		ToSql()
	if err != nil {
		t.Fatalf("build update of %s.%s: %v", table, column, err)
	}

	err = gw.WithConn(context.Background(), "test.set_column", func(ctx context.Context, conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil || n != 1 {
			return fmt.Errorf("expected one row updated, got %d (%v)", n, err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("update %s.%s: %v", table, column, err)
	}
}
