package database

import (
	"context"
	"fmt"
)

// Schema for the two tables. Book rows may exist without an author;
// the FK is nullable and cleared when an author is deleted.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		age  INT  NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		isbn      TEXT PRIMARY KEY,
		title     TEXT NOT NULL,
		author_id BIGINT REFERENCES authors(id)
	)`,
}

// Migrate applies the schema at startup.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range migrations {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}
