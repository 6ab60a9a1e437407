// Package databasetest opens throwaway SQLite databases for tests.
package databasetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/database"
)

// Open returns a migrated SQLite database living in t's temp dir.  It is
// closed when the test ends.
func Open(t testing.TB) *sqlx.DB {
	t.Helper()
	db, err := database.Open(database.SQLite, filepath.Join(t.TempDir(), "fyyur.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}
