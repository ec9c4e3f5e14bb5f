// Package database owns the Record Store schema.
package database

import (
	"database/sql"
	"embed"
	"fmt"

	shareddb "go-shortlink/internal/shared/database"
)

//go:embed migrations
var migrationsFS embed.FS

// Open connects to the configured engine and brings the schema up to date.
func Open(driver, sqlitePath, postgresURL string) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)
	switch driver {
	case shareddb.DialectSQLite:
		db, err = shareddb.OpenSQLite(sqlitePath)
	case shareddb.DialectPostgres:
		db, err = shareddb.OpenPostgres(postgresURL)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(db, driver); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// RunMigrations applies the embedded migrations for dialect.
func RunMigrations(db *sql.DB, dialect string) error {
	return shareddb.Migrate(db, dialect, migrationsFS, "migrations/"+dialect)
}
