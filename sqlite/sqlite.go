// Package sqlite provides SQLite-based storage implementations for resumedb services.
package sqlite

import (
	"context"
	"database/sql"

	"github.com/fwojciec/resumedb"
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

// Path returns the database path.
func (db *DB) Path() string {
	return db.path
}

// Open opens the database connection and creates the schema if needed.
// All failures are reported as ESTORAGE.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return storageError(err, "failed to open database")
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return storageError(err, "failed to connect to database")
	}

	// Wait 5 seconds before failing on lock contention, e.g. when a
	// query tool has the file open.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return storageError(err, "failed to set busy timeout")
	}

	// WAL mode is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return storageError(err, "failed to enable WAL mode")
		}
	}

	// Enable foreign key constraints
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return storageError(err, "failed to enable foreign keys")
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return storageError(err, "failed to create schema")
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

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, opts)
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

// createSchema creates the database tables if they don't exist.
// The resumes table layout is shared with other tools reading the file and
// must not change; everything else hangs off it by path.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS resumes (
			path TEXT PRIMARY KEY,
			filename TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS resume_meta (
			path TEXT PRIMARY KEY REFERENCES resumes(path) ON DELETE CASCADE,
			content_hash TEXT NOT NULL DEFAULT '',
			scanned_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS resume_sections (
			path TEXT PRIMARY KEY REFERENCES resumes(path) ON DELETE CASCADE,
			header TEXT NOT NULL DEFAULT '',
			summary TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS resume_employers (
			path TEXT NOT NULL REFERENCES resumes(path) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			header TEXT NOT NULL DEFAULT '',
			summary TEXT NOT NULL DEFAULT '',
			highlights TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (path, position)
		);

		CREATE TABLE IF NOT EXISTS resume_skills (
			path TEXT NOT NULL REFERENCES resumes(path) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			header TEXT NOT NULL DEFAULT '',
			skills TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (path, position)
		);

		CREATE TABLE IF NOT EXISTS scans (
			id TEXT PRIMARY KEY,
			root TEXT NOT NULL,
			processed INTEGER NOT NULL DEFAULT 0,
			stored INTEGER NOT NULL DEFAULT 0,
			skipped INTEGER NOT NULL DEFAULT 0,
			ignored INTEGER NOT NULL DEFAULT 0,
			failed INTEGER NOT NULL DEFAULT 0,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_resumes_filename ON resumes(filename);
	`

	_, err := db.db.Exec(schema)
	return err
}

// storageError wraps err as an ESTORAGE application error.
func storageError(err error, format string, args ...any) error {
	return resumedb.WrapError(resumedb.ESTORAGE, err, format, args...)
}
