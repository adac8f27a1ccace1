package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"obsydia_retail/internal/config"
	"obsydia_retail/internal/infrastructure/logging"
)

// Dialect selects placeholder style and schema for the SQL order repository.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Placeholder returns the n-th (1-based) bind parameter marker.
func (d Dialect) Placeholder(n int) string {
	if d == DialectPostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// NewPostgresDB opens a pgx-backed *sql.DB and verifies the connection.
func NewPostgresDB(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("failed to open db: DATABASE_URL is empty")
	}
	db, err := sql.Open("pgx", postgresDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}
	logging.L().Infof("[database][postgres] connected ssl=%t", cfg.SSL)
	return db, nil
}

// NewSQLiteDB opens (creating if needed) a SQLite file.
func NewSQLiteDB(ctx context.Context, cfg config.SQLiteConfig) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	// modernc/sqlite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}
	logging.L().Infof("[database][sqlite] opened path=%s", cfg.Path)
	return db, nil
}

func CloseDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		logging.L().Errorf("[database] failed to close db err=%v", err)
	}
}

// postgresDSN adds an sslmode when the URL does not carry one. SSL on means
// encrypted without certificate verification, matching hosted Postgres
// offerings that use self-signed chains.
func postgresDSN(cfg config.PostgresConfig) string {
	u, err := url.Parse(cfg.URL)
	if err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
		return cfg.URL
	}
	q := u.Query()
	if q.Get("sslmode") != "" {
		return cfg.URL
	}
	if cfg.SSL {
		q.Set("sslmode", "require")
	} else {
		q.Set("sslmode", "disable")
	}
	u.RawQuery = q.Encode()
	return u.String()
}

const postgresSchemaSQL = `
CREATE TABLE IF NOT EXISTS orders (
    id TEXT PRIMARY KEY,
    full_name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL,
    address TEXT NOT NULL,
    location TEXT NOT NULL,
    services JSONB NOT NULL,
    notes TEXT,
    language TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'new',
    quote JSONB,
    quote_total NUMERIC(10,2),
    quote_sent_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
`

const sqliteSchemaSQL = `
CREATE TABLE IF NOT EXISTS orders (
    id TEXT PRIMARY KEY,
    full_name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL,
    address TEXT NOT NULL,
    location TEXT NOT NULL,
    services TEXT NOT NULL,
    notes TEXT,
    language TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'new',
    quote TEXT,
    quote_total REAL,
    quote_sent_at TEXT,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
`

// InitSchema creates the orders table when it does not exist.
func InitSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	schema := sqliteSchemaSQL
	if d == DialectPostgres {
		schema = postgresSchemaSQL
	}
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to init schema: %w", err)
		}
	}
	return nil
}
