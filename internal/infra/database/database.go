// Package database opens the SQLite database and applies the schema.
package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"
	_ "github.com/mattn/go-sqlite3"
	zlog "github.com/rs/zerolog/log"
)

// Memory is the path of a private in-memory database.
const Memory = ":memory:"

// migrations are applied in order; each entry runs once per database.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS liked_tracks (
		seq      INTEGER PRIMARY KEY AUTOINCREMENT,
		track_id TEXT NOT NULL UNIQUE,
		liked_at TIMESTAMP NOT NULL
	)`,
}

// Open opens (creating if needed) the database at path and migrates it.
// The path can be Memory for an in-memory database.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path != Memory {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.Wrap(err, "failed to create database directory")
			}
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	// Every connection to :memory: is a separate database, and SQLite allows a
	// single writer anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	zlog.Debug().Msgf("database: opened: path=%s", path)
	return db, nil
}

// migrate applies pending migrations, tracking progress in user_version.
func migrate(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return errors.Wrap(err, "failed to read schema version")
	}

	for i := version; i < len(migrations); i++ {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return errors.Wrap(err, "failed to begin migration")
		}
		if _, err := tx.ExecContext(ctx, migrations[i]); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "migration %d failed", i+1)
		}
		// PRAGMA does not accept bound parameters
		if _, err := tx.ExecContext(ctx, "PRAGMA user_version = "+strconv.Itoa(i+1)); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "failed to record migration %d", i+1)
		}
		if err := tx.Commit(); err != nil {
			return errors.Wrapf(err, "failed to commit migration %d", i+1)
		}
		zlog.Info().Msgf("database: applied migration: version=%d", i+1)
	}
	return nil
}
