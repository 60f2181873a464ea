// Package migrations creates and upgrades the sqlite schema.
package migrations

import (
	"database/sql"
	"fmt"
)

// Migration is one ordered schema change.
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

// AllMigrations contains all database migrations in order
var AllMigrations = []Migration{
	{
		Version: 1,
		Name:    "Create table jdiff_projects",
		Up: `
			CREATE TABLE IF NOT EXISTS jdiff_projects (
				id INTEGER PRIMARY KEY,
				name TEXT NOT NULL UNIQUE
			);
		`,
		Down: `DROP TABLE IF EXISTS jdiff_projects;`,
	},
	{
		Version: 2,
		Name:    "Create table jdiff_requests",
		Up: `
			CREATE TABLE IF NOT EXISTS jdiff_requests (
				id INTEGER PRIMARY KEY,
				uid TEXT NOT NULL UNIQUE,
				project_id INTEGER NOT NULL REFERENCES jdiff_projects(id) ON DELETE CASCADE,
				name TEXT NOT NULL,
				body TEXT NOT NULL DEFAULT '',
				url TEXT NOT NULL,
				additional_data TEXT NOT NULL DEFAULT '',
				headers TEXT NOT NULL DEFAULT ''
			);
			CREATE INDEX IF NOT EXISTS idx_requests_project ON jdiff_requests(project_id);
		`,
		Down: `
			DROP INDEX IF EXISTS idx_requests_project;
			DROP TABLE IF EXISTS jdiff_requests;
		`,
	},
	{
		Version: 3,
		Name:    "Create table jdiff_editor_content",
		Up: `
			CREATE TABLE IF NOT EXISTS jdiff_editor_content (
				id INTEGER PRIMARY KEY,
				project_id INTEGER NOT NULL UNIQUE REFERENCES jdiff_projects(id) ON DELETE CASCADE,
				content TEXT NOT NULL
			);
		`,
		Down: `DROP TABLE IF EXISTS jdiff_editor_content;`,
	},
}

// Run applies every migration newer than the recorded schema version.
func Run(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	currentVersion, err := GetCurrentVersion(db)
	if err != nil {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	for _, migration := range AllMigrations {
		if migration.Version <= currentVersion {
			continue
		}
		if err := apply(db, migration); err != nil {
			return err
		}
	}
	return nil
}

// apply runs one migration and records it in a single transaction.
func apply(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec(m.Up); err != nil {
		return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}
	return nil
}

// GetCurrentVersion returns the current database schema version
func GetCurrentVersion(db *sql.DB) (int, error) {
	var version int
	err := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, err
	}
	return version, nil
}
