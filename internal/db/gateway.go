package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	_ "modernc.org/sqlite"             // pure go sqlite driver

	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/metrics"
)

// Dialect names the SQL flavour behind a Gateway.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Gateway hands out store connections to repository operations. It owns no
// business logic and keeps no state besides the connection pool.
type Gateway struct {
	db      *sql.DB
	dialect Dialect
}

// ConnFn runs against a single acquired connection.
type ConnFn func(ctx context.Context, conn *sql.Conn) error

// Open connects to the store described by cfg and verifies it is reachable.
// An unreachable store or rejected credentials yield *apperrors.ConnectionError.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	var (
		driverName string
		dsn        string
		dialect    Dialect
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		driverName, dsn, dialect = "sqlite", sqliteDSN(cfg.Path), DialectSQLite
	default:
		driverName, dsn, dialect = "pgx", cfg.PostgresDSN(), DialectPostgres
	}

	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}

	if dialect == DialectSQLite {
		// One writer at a time; keeping the connection alive also keeps
		// in-memory databases from vanishing between operations.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		if cfg.ConnMaxLifetime != "" {
			lifetime, err := time.ParseDuration(cfg.ConnMaxLifetime)
			if err != nil {
				_ = sqlDB.Close()
				return nil, fmt.Errorf("failed to parse connection max lifetime: %w", err)
			}
			sqlDB.SetConnMaxLifetime(lifetime)
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, &apperrors.ConnectionError{Err: err}
	}

	return &Gateway{db: sqlDB, dialect: dialect}, nil
}

// sqliteDSN adds the pragmas every connection needs: enforced foreign keys
// and a text time format the scanner understands.
func sqliteDSN(path string) string {
	params := url.Values{}
	params.Add("_pragma", "foreign_keys(1)")
	params.Add("_pragma", "busy_timeout(5000)")
	params.Set("_time_format", "sqlite")

	dsn := path
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + params.Encode()
}

// Dialect reports the SQL flavour of the underlying store.
func (g *Gateway) Dialect() Dialect { return g.dialect }

// Builder returns a squirrel statement builder using the dialect's placeholders.
func (g *Gateway) Builder() squirrel.StatementBuilderType {
	if g.dialect == DialectPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// WithConn acquires one connection, runs fn on it and releases it on every
// exit path. Errors are classified: not-found results pass through unchanged,
// unreachable stores become *apperrors.ConnectionError and everything else
// becomes *apperrors.StorageError tagged with op. Nothing is retried.
func (g *Gateway) WithConn(ctx context.Context, op string, fn ConnFn) (err error) {
	start := time.Now()
	defer func() {
		metrics.StoreDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		metrics.StoreOperations.WithLabelValues(op, outcome(err)).Inc()
	}()

	conn, err := g.db.Conn(ctx)
	if err != nil {
		return &apperrors.ConnectionError{Err: err}
	}
	defer conn.Close()

	if err := fn(ctx, conn); err != nil {
		return classify(op, err)
	}
	return nil
}

// Ping checks that a connection can be acquired and the store answers.
func (g *Gateway) Ping(ctx context.Context) error {
	return g.WithConn(ctx, "ping", func(ctx context.Context, conn *sql.Conn) error {
		return conn.PingContext(ctx)
	})
}

// Close releases every pooled connection.
func (g *Gateway) Close() error {
	if g.db == nil {
		return nil
	}
	return g.db.Close()
}

func classify(op string, err error) error {
	var (
		connErr    *apperrors.ConnectionError
		storageErr *apperrors.StorageError
	)
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.As(err, &connErr),
		errors.As(err, &storageErr):
		return err
	case dberrors.IsConnectionError(err):
		return &apperrors.ConnectionError{Err: err}
	default:
		return &apperrors.StorageError{Op: op, Constraint: dberrors.ConstraintViolation(err), Err: err}
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, apperrors.ErrConnection):
		return metrics.OutcomeConnectionError
	default:
		return metrics.OutcomeStorageError
	}
}
