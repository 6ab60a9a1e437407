package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Each dialect creates the same three tables.  Shows reference venues and
// artists without ON DELETE CASCADE; deleting a venue removes its shows
// explicitly inside the same transaction.
var schemas = map[string][]string{
	MySQL: {
		`CREATE TABLE IF NOT EXISTS venues (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			city VARCHAR(120) NOT NULL DEFAULT '',
			state VARCHAR(120) NOT NULL DEFAULT '',
			address VARCHAR(120) NOT NULL DEFAULT '',
			phone VARCHAR(120) NOT NULL DEFAULT '',
			image_link VARCHAR(500) NOT NULL DEFAULT '',
			facebook_link VARCHAR(120) NOT NULL DEFAULT '',
			seeking_talent BOOLEAN NOT NULL DEFAULT FALSE,
			seeking_description VARCHAR(500) NULL,
			website VARCHAR(120) NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS artists (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			city VARCHAR(120) NOT NULL DEFAULT '',
			state VARCHAR(120) NOT NULL DEFAULT '',
			phone VARCHAR(120) NOT NULL DEFAULT '',
			genres VARCHAR(500) NOT NULL DEFAULT '',
			image_link VARCHAR(500) NOT NULL DEFAULT '',
			facebook_link VARCHAR(120) NOT NULL DEFAULT '',
			website VARCHAR(120) NULL,
			seeking_venue BOOLEAN NOT NULL DEFAULT FALSE,
			seeking_description VARCHAR(500) NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS shows (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			start_time DATETIME NOT NULL,
			artist_id BIGINT UNSIGNED NOT NULL,
			venue_id BIGINT UNSIGNED NOT NULL,
			CONSTRAINT fk_shows_artist FOREIGN KEY (artist_id) REFERENCES artists(id),
			CONSTRAINT fk_shows_venue FOREIGN KEY (venue_id) REFERENCES venues(id),
			INDEX idx_shows_start (start_time)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	Postgres: {
		`CREATE TABLE IF NOT EXISTS venues (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			city VARCHAR(120) NOT NULL DEFAULT '',
			state VARCHAR(120) NOT NULL DEFAULT '',
			address VARCHAR(120) NOT NULL DEFAULT '',
			phone VARCHAR(120) NOT NULL DEFAULT '',
			image_link VARCHAR(500) NOT NULL DEFAULT '',
			facebook_link VARCHAR(120) NOT NULL DEFAULT '',
			seeking_talent BOOLEAN NOT NULL DEFAULT FALSE,
			seeking_description VARCHAR(500),
			website VARCHAR(120)
		)`,
		`CREATE TABLE IF NOT EXISTS artists (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			city VARCHAR(120) NOT NULL DEFAULT '',
			state VARCHAR(120) NOT NULL DEFAULT '',
			phone VARCHAR(120) NOT NULL DEFAULT '',
			genres VARCHAR(500) NOT NULL DEFAULT '',
			image_link VARCHAR(500) NOT NULL DEFAULT '',
			facebook_link VARCHAR(120) NOT NULL DEFAULT '',
			website VARCHAR(120),
			seeking_venue BOOLEAN NOT NULL DEFAULT FALSE,
			seeking_description VARCHAR(500)
		)`,
		`CREATE TABLE IF NOT EXISTS shows (
			id BIGSERIAL PRIMARY KEY,
			start_time TIMESTAMP NOT NULL,
			artist_id BIGINT NOT NULL CONSTRAINT fk_shows_artist REFERENCES artists(id),
			venue_id BIGINT NOT NULL CONSTRAINT fk_shows_venue REFERENCES venues(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_shows_start ON shows (start_time)`,
	},
	SQLite: {
		`CREATE TABLE IF NOT EXISTS venues (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			city TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			image_link TEXT NOT NULL DEFAULT '',
			facebook_link TEXT NOT NULL DEFAULT '',
			seeking_talent BOOLEAN NOT NULL DEFAULT 0,
			seeking_description TEXT,
			website TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS artists (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			city TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			genres TEXT NOT NULL DEFAULT '',
			image_link TEXT NOT NULL DEFAULT '',
			facebook_link TEXT NOT NULL DEFAULT '',
			website TEXT,
			seeking_venue BOOLEAN NOT NULL DEFAULT 0,
			seeking_description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS shows (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			start_time DATETIME NOT NULL,
			artist_id INTEGER NOT NULL REFERENCES artists(id),
			venue_id INTEGER NOT NULL REFERENCES venues(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_shows_start ON shows (start_time)`,
	},
}

// Migrate creates the venues, artists and shows tables when missing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	stmts, ok := schemas[db.DriverName()]
	if !ok {
		return fmt.Errorf("no schema for driver %q", db.DriverName())
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrating: %w", err)
		}
	}
	return nil
}
