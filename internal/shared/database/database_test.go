package database_test

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"go-shortlink/internal/shared/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMigrations = fstest.MapFS{
	"migrations/000001_init.up.sql":   {Data: []byte("CREATE TABLE things (id INTEGER PRIMARY KEY, name TEXT NOT NULL);")},
	"migrations/000001_init.down.sql": {Data: []byte("DROP TABLE things;")},
}

func TestOpenSQLite_MigrateIsIdempotent(t *testing.T) {
	// Setup
	path := filepath.Join(t.TempDir(), "nested", "test.db")
	db, err := database.OpenSQLite(path)
	require.NoError(t, err)
	defer db.Close()

	// Act
	require.NoError(t, database.Migrate(db, database.DialectSQLite, testMigrations, "migrations"))
	require.NoError(t, database.Migrate(db, database.DialectSQLite, testMigrations, "migrations"))

	// Assert
	_, err = db.Exec("INSERT INTO things (name) VALUES ('a')")
	require.NoError(t, err)
}

func TestOpenSQLiteReadOnly_RejectsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ro.db")
	rw, err := database.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(rw, database.DialectSQLite, testMigrations, "migrations"))
	_, err = rw.Exec("INSERT INTO things (name) VALUES ('a')")
	require.NoError(t, err)

	ro, err := database.OpenSQLiteReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	var n int
	require.NoError(t, ro.QueryRow("SELECT COUNT(*) FROM things").Scan(&n))
	assert.Equal(t, 1, n)

	_, err = ro.Exec("INSERT INTO things (name) VALUES ('b')")
	assert.Error(t, err)
	require.NoError(t, rw.Close())
}

func TestOpenSQLiteReadOnly_MissingFile(t *testing.T) {
	_, err := database.OpenSQLiteReadOnly(filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	err = database.Migrate(db, "oracle", testMigrations, "migrations")
	assert.ErrorContains(t, err, "unsupported dialect")
}
