package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/database/databasetest"
)

func TestMySQLDSN(t *testing.T) {
	assert.Equal(t,
		"fyyur:secret@tcp(localhost:3306)/fyyur?charset=utf8mb4&parseTime=true&loc=UTC",
		database.MySQLDSN("fyyur", "secret", "localhost", "3306", "fyyur"))
	assert.Equal(t,
		"root@tcp(db:3306)/fyyur?charset=utf8mb4&parseTime=true&loc=UTC",
		database.MySQLDSN("root", "", "db", "3306", "fyyur"))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := database.Open("oracle", "whatever")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db := databasetest.Open(t)
	require.NoError(t, database.Migrate(context.Background(), db))

	for _, table := range []string{"venues", "artists", "shows"} {
		var n int
		require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM "+table))
		assert.Zero(t, n, table)
	}
}

func TestOpen_SQLiteEnforcesForeignKeys(t *testing.T) {
	db, err := database.Open(database.SQLite, filepath.Join(t.TempDir(), "fk.db"))
	require.NoError(t, err)
	defer db.Close()

	var on int
	require.NoError(t, db.Get(&on, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, on)
}
