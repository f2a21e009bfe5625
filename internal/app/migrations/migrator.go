package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/db"
)

//go:embed sql/postgres/*.sql sql/sqlite/*.sql
var migrationFiles embed.FS

// Migrator applies the versioned schema for the gateway's dialect
type Migrator struct {
	gw     *db.Gateway
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(gw *db.Gateway, logger zerolog.Logger) *Migrator {
	return &Migrator{
		gw:     gw,
		logger: logger,
	}
}

// Migrate applies every embedded migration of the gateway's dialect that has
// not been recorded yet, in file name order, each in its own transaction.
func (m *Migrator) Migrate(ctx context.Context) error {
	dir := path.Join("sql", string(m.gw.Dialect()))
	entries, err := fs.ReadDir(migrationFiles, dir)
	if err != nil {
		return fmt.Errorf("failed to read migration directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	return m.gw.WithConn(ctx, "migrate", func(ctx context.Context, conn *sql.Conn) error {
		if err := ensureMigrationTableExists(ctx, conn); err != nil {
			return err
		}
		for _, name := range sqlFiles {
			if err := m.apply(ctx, conn, path.Join(dir, name)); err != nil {
				return err
			}
		}
		return nil
	})
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func ensureMigrationTableExists(ctx context.Context, conn *sql.Conn) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := conn.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

func (m *Migrator) apply(ctx context.Context, conn *sql.Conn, filePath string) error {
	// "001_init.sql" => "001"
	filename := path.Base(filePath)
	version := strings.SplitN(filename, "_", 2)[0]

	var applied int
	query := m.gw.Builder().Select("COUNT(*)").From("schema_migrations").Where("version = ?", version)
	querySQL, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build migration status query: %w", err)
	}
	if err := conn.QueryRowContext(ctx, querySQL, args...).Scan(&applied); err != nil {
		return fmt.Errorf("failed to check migration status: %w", err)
	}
	if applied > 0 {
		m.logger.Debug().Str("migration", filename).Msg("Migration already applied, skipping")
		return nil
	}

	content, err := migrationFiles.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range SplitStatements(string(content)) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %s failed: %w", filename, err)
		}
	}

	insertSQL, insertArgs, err := m.gw.Builder().Insert("schema_migrations").Columns("version").Values(version).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build migration record: %w", err)
	}
	if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	m.logger.Info().Str("migration", filename).Str("dialect", string(m.gw.Dialect())).Msg("Migration applied")
	return nil
}

// SplitStatements splits a migration file into individual statements on
// semicolons that end a line.
func SplitStatements(content string) []string {
	var (
		stmts   []string
		current strings.Builder
	)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmts = append(stmts, strings.TrimSuffix(strings.TrimSpace(current.String()), ";"))
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}
