// Package database persists projects, request definitions and editor content in sqlite.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/bethropolis/jdiff/internal/migrations"
	_ "modernc.org/sqlite"
)

// DB is an open, migrated database.
type DB struct {
	conn *sql.DB
	path string
}

// Open opens (creating if needed) the sqlite file at path, switches it to
// WAL journaling and applies pending migrations.
func Open(ctx context.Context, path string) (*DB, error) {
	const op = "database.Open"

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, newError(op, ErrConnection, fmt.Errorf("failed to create directory '%s': %w", dir, err))
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, newError(op, ErrConnection, err)
	}
	// sqlite pragmas are per connection; one connection keeps them applied.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, newError(op, ErrConnection, err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			conn.Close()
			return nil, newError(op, ErrConnection, fmt.Errorf("failed to run %q: %w", pragma, err))
		}
	}

	if err := migrations.Run(conn); err != nil {
		conn.Close()
		return nil, newError(op, ErrQuery, err)
	}

	logger.Infof("Database opened: %s", path)
	return &DB{conn: conn, path: path}, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Close closes the connection.
func (db *DB) Close() error {
	if err := db.conn.Close(); err != nil {
		return newError("database.Close", ErrConnection, err)
	}
	return nil
}

// JournalMode reports the active journal mode, "wal" once Open succeeded.
func (db *DB) JournalMode(ctx context.Context) (string, error) {
	var mode string
	if err := db.conn.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode); err != nil {
		return "", classify("database.JournalMode", err)
	}
	return mode, nil
}

// Projects returns the project accessor.
func (db *DB) Projects() *Projects {
	return &Projects{db: db.conn}
}

// Requests returns the request definition accessor.
func (db *DB) Requests() *Requests {
	return &Requests{db: db.conn}
}

// EditorContent returns the editor content accessor.
func (db *DB) EditorContent() *EditorContents {
	return &EditorContents{db: db.conn}
}

// scanner is implemented by *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// queryOne runs a query that must produce exactly one row.
func queryOne[T any](ctx context.Context, db *sql.DB, op string, scan func(scanner) (T, error), query string, args ...any) (T, error) {
	var zero T
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return zero, classify(op, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return zero, classify(op, err)
		}
		return zero, newError(op, ErrNotFound, nil)
	}
	v, err := scan(rows)
	if err != nil {
		return zero, classify(op, err)
	}
	if rows.Next() {
		return zero, newError(op, ErrMultipleRows, nil)
	}
	return v, classify(op, rows.Err())
}

// queryAll runs a query and scans every row.
func queryAll[T any](ctx context.Context, db *sql.DB, op string, scan func(scanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, classify(op, err)
		}
		out = append(out, v)
	}
	return out, classify(op, rows.Err())
}

// execOne runs a statement that must affect exactly one row.
func execOne(ctx context.Context, db *sql.DB, op string, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return classify(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify(op, err)
	}
	switch {
	case n == 0:
		return newError(op, ErrNotFound, nil)
	case n > 1:
		return newError(op, ErrMultipleRows, nil)
	}
	return nil
}
