package cache

import (
	"database/sql"
	"fmt"
)

// InitSqliteSchema creates the place cache table for local sqlite runs.
func InitSqliteSchema(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS place_cache (
	    query   TEXT PRIMARY KEY,
	    payload TEXT NOT NULL
	);
	`)
	if err != nil {
		return fmt.Errorf("init sqlite schema: create place_cache: %w", err)
	}
	return nil
}

// InitSQLSchema creates the place cache table on Postgres.
func InitSQLSchema(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS place_cache (
	    query   TEXT PRIMARY KEY,
	    payload TEXT NOT NULL
	);
	`)
	if err != nil {
		return fmt.Errorf("init sql schema: create place_cache: %w", err)
	}
	return nil
}
