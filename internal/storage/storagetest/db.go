// Package storagetest opens a throwaway database for repository tests.
// Tests using it are integration tests: they run only when
// TEST_DATABASE_URL points at a disposable postgres database.
package storagetest

import (
	"context"
	"log/slog"
	"os"
	"testing"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/hessin2010king/backend/internal/schema"
)

// Open connects, ensures the schema and truncates all catalog tables so
// every test starts from an empty database. Skips the test when no
// TEST_DATABASE_URL is configured.
func Open(t *testing.T) *pgxpool.Pool {
	t.Helper()

	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database integration test")
	}

	ctx := context.Background()

	cfg, err := pgxpool.ParseConfig(connStr)
	require.NoError(t, err)

	pg, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pg.Close)

	err = schema.Ensure(ctx, pg, slog.Default())
	require.NoError(t, err)

	_, err = pg.Exec(ctx, "TRUNCATE reviews, books, authors, categories, users RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	return pg
}
