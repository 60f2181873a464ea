package database

import (
	"context"
	"database/sql"
)

// EditorContents reads and writes jdiff_editor_content. Each project has at most one record.
type EditorContents struct {
	db *sql.DB
}

func scanEditorContent(s scanner) (EditorContent, error) {
	var c EditorContent
	err := s.Scan(&c.ID, &c.ProjectID, &c.Content)
	return c, err
}

// Save stores content for projectID, replacing any previous content.
func (e *EditorContents) Save(ctx context.Context, projectID int64, content string) error {
	_, err := e.db.ExecContext(ctx,
		`INSERT INTO jdiff_editor_content (project_id, content) VALUES (?, ?)
		 ON CONFLICT(project_id) DO UPDATE SET content = excluded.content`,
		projectID, content)
	return classify("editorContent.Save", err)
}

// Load returns the content saved for projectID.
func (e *EditorContents) Load(ctx context.Context, projectID int64) (EditorContent, error) {
	return queryOne(ctx, e.db, "editorContent.Load", scanEditorContent,
		`SELECT id, project_id, content FROM jdiff_editor_content WHERE project_id = ?`, projectID)
}
