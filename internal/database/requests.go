package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// Requests reads and writes jdiff_requests.
type Requests struct {
	db *sql.DB
}

const requestColumns = `id, uid, project_id, name, body, url, additional_data, headers`

func scanRequest(s scanner) (Request, error) {
	var r Request
	err := s.Scan(&r.ID, &r.UID, &r.ProjectID, &r.Name, &r.Body, &r.URL, &r.AdditionalData, &r.Headers)
	return r, err
}

// Create inserts r and returns it with ID and UID filled in. A UID is generated when empty.
func (q *Requests) Create(ctx context.Context, r Request) (Request, error) {
	const op = "requests.Create"
	if r.UID == "" {
		r.UID = uuid.NewString()
	}
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO jdiff_requests (uid, project_id, name, body, url, additional_data, headers)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.UID, r.ProjectID, r.Name, r.Body, r.URL, r.AdditionalData, r.Headers)
	if err != nil {
		return Request{}, classify(op, err)
	}
	if r.ID, err = res.LastInsertId(); err != nil {
		return Request{}, classify(op, err)
	}
	return r, nil
}

// Get returns the request with id.
func (q *Requests) Get(ctx context.Context, id int64) (Request, error) {
	return queryOne(ctx, q.db, "requests.Get", scanRequest,
		`SELECT `+requestColumns+` FROM jdiff_requests WHERE id = ?`, id)
}

// GetByUID returns the request with the given external identifier.
func (q *Requests) GetByUID(ctx context.Context, uid string) (Request, error) {
	return queryOne(ctx, q.db, "requests.GetByUID", scanRequest,
		`SELECT `+requestColumns+` FROM jdiff_requests WHERE uid = ?`, uid)
}

// FindByName returns the request called name in a project. Names are not
// unique, so ErrMultipleRows is possible.
func (q *Requests) FindByName(ctx context.Context, projectID int64, name string) (Request, error) {
	return queryOne(ctx, q.db, "requests.FindByName", scanRequest,
		`SELECT `+requestColumns+` FROM jdiff_requests WHERE project_id = ? AND name = ?`, projectID, name)
}

// ListByProject returns a project's requests in insertion order.
func (q *Requests) ListByProject(ctx context.Context, projectID int64) ([]Request, error) {
	return queryAll(ctx, q.db, "requests.ListByProject", scanRequest,
		`SELECT `+requestColumns+` FROM jdiff_requests WHERE project_id = ? ORDER BY id`, projectID)
}

// Update overwrites every field of the request with r.ID.
func (q *Requests) Update(ctx context.Context, r Request) error {
	return execOne(ctx, q.db, "requests.Update",
		`UPDATE jdiff_requests SET name = ?, body = ?, url = ?, additional_data = ?, headers = ? WHERE id = ?`,
		r.Name, r.Body, r.URL, r.AdditionalData, r.Headers, r.ID)
}

// Delete removes the request with id.
func (q *Requests) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, q.db, "requests.Delete", `DELETE FROM jdiff_requests WHERE id = ?`, id)
}
