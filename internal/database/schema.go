package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

const workersSchema = `
	CREATE TABLE IF NOT EXISTS workers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		surname TEXT,
		lastname TEXT,
		age INTEGER,
		city TEXT,
		position TEXT
	)`

// EnsureSchema creates the workers table if it does not exist yet.
// Safe to call repeatedly; existing rows are left untouched.
func (db *DB) EnsureSchema() error {
	log.Info().Str("path", db.path).Msg("Initializing database schema")

	if _, err := db.exec(workersSchema); err != nil {
		return fmt.Errorf("failed to create workers table: %w", err)
	}

	log.Debug().Msg("Workers table ready")
	return nil
}
