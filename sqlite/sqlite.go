// Package sqlite provides SQLite-based storage implementations for twir services.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait before failing on lock contention, e.g. two cron runs overlapping.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS issues (
			id INTEGER PRIMARY KEY,
			date TEXT NOT NULL DEFAULT '',
			link TEXT NOT NULL,
			posted_at TEXT NOT NULL
		);
	`

	_, err := db.db.Exec(schema)
	return err
}
