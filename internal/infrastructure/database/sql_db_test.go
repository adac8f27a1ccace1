package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obsydia_retail/internal/config"
)

func TestDialect_Placeholder(t *testing.T) {
	assert.Equal(t, "$3", DialectPostgres.Placeholder(3))
	assert.Equal(t, "?", DialectSQLite.Placeholder(3))
}

func TestPostgresDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.PostgresConfig
		want string
	}{
		{"ssl on", config.PostgresConfig{URL: "postgres://u:p@db:5432/shop", SSL: true}, "postgres://u:p@db:5432/shop?sslmode=require"},
		{"ssl off", config.PostgresConfig{URL: "postgres://u:p@db:5432/shop", SSL: false}, "postgres://u:p@db:5432/shop?sslmode=disable"},
		{"explicit mode kept", config.PostgresConfig{URL: "postgres://db/shop?sslmode=verify-full", SSL: false}, "postgres://db/shop?sslmode=verify-full"},
		{"keyword dsn untouched", config.PostgresConfig{URL: "host=db dbname=shop", SSL: true}, "host=db dbname=shop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, postgresDSN(tt.cfg))
		})
	}
}

func TestNewPostgresDB_EmptyURL(t *testing.T) {
	_, err := NewPostgresDB(context.Background(), config.PostgresConfig{})
	require.Error(t, err)
}

func TestNewSQLiteDB_InitSchema(t *testing.T) {
	ctx := context.Background()
	db, err := NewSQLiteDB(ctx, config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "orders.db")})
	require.NoError(t, err)
	defer CloseDB(db)

	require.NoError(t, InitSchema(ctx, db, DialectSQLite))
	// idempotent
	require.NoError(t, InitSchema(ctx, db, DialectSQLite))

	var name string
	err = db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name='orders'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "orders", name)
}
