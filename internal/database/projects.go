package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// Projects reads and writes jdiff_projects.
type Projects struct {
	db *sql.DB
}

func scanProject(s scanner) (Project, error) {
	var p Project
	err := s.Scan(&p.ID, &p.Name)
	return p, err
}

// Create inserts a project.
func (p *Projects) Create(ctx context.Context, name string) (Project, error) {
	const op = "projects.Create"
	name = strings.TrimSpace(name)
	if name == "" {
		return Project{}, newError(op, ErrQuery, errors.New("empty project name"))
	}
	res, err := p.db.ExecContext(ctx, `INSERT INTO jdiff_projects (name) VALUES (?)`, name)
	if err != nil {
		return Project{}, classify(op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Project{}, classify(op, err)
	}
	return Project{ID: id, Name: name}, nil
}

// Get returns the project with id.
func (p *Projects) Get(ctx context.Context, id int64) (Project, error) {
	return queryOne(ctx, p.db, "projects.Get", scanProject,
		`SELECT id, name FROM jdiff_projects WHERE id = ?`, id)
}

// GetByName returns the project called name.
func (p *Projects) GetByName(ctx context.Context, name string) (Project, error) {
	return queryOne(ctx, p.db, "projects.GetByName", scanProject,
		`SELECT id, name FROM jdiff_projects WHERE name = ?`, strings.TrimSpace(name))
}

// Ensure returns the project called name, creating it when missing.
func (p *Projects) Ensure(ctx context.Context, name string) (Project, error) {
	project, err := p.GetByName(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return p.Create(ctx, name)
	}
	return project, err
}

// List returns all projects ordered by name.
func (p *Projects) List(ctx context.Context) ([]Project, error) {
	return queryAll(ctx, p.db, "projects.List", scanProject,
		`SELECT id, name FROM jdiff_projects ORDER BY name`)
}

// Delete removes a project together with its requests and editor content.
func (p *Projects) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, p.db, "projects.Delete", `DELETE FROM jdiff_projects WHERE id = ?`, id)
}
