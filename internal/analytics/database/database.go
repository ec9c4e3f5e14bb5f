// Package database owns the analytics schema: the link replica and the
// click log.
package database

import (
	"database/sql"
	"embed"

	shareddb "go-shortlink/internal/shared/database"
)

//go:embed migrations
var migrationsFS embed.FS

// Open opens the SQLite file at path and migrates it.
func Open(path string) (*sql.DB, error) {
	db, err := shareddb.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func RunMigrations(db *sql.DB) error {
	return shareddb.Migrate(db, shareddb.DialectSQLite, migrationsFS, "migrations")
}
