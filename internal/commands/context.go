package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/bethropolis/jdiff/internal/core"
	"github.com/bethropolis/jdiff/internal/core/clipboard"
	"github.com/bethropolis/jdiff/internal/database"
	"github.com/bethropolis/jdiff/internal/event"
	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/state"
	"github.com/bethropolis/jdiff/internal/theme"
)

// ErrNoDatabase is returned by persistence commands when storage is disabled.
var ErrNoDatabase = errors.New("no database configured")

// Env holds the collaborators commands may use. Only State is required.
type Env struct {
	State     *state.State
	DB        *database.DB
	Clipboard *clipboard.Manager
	Themes    *theme.Manager
	Events    *event.Manager
	Project   string // Project selected at startup
}

// Context is handed to a running command.
type Context struct {
	ctx     context.Context
	store   *Store
	pending []input.ActionEvent
}

// Context returns the context for blocking calls such as database queries.
func (c *Context) Context() context.Context {
	return c.ctx
}

// State returns the live state tree.
func (c *Context) State() *state.State {
	return c.store.env.State
}

// Editor returns the focused editor.
func (c *Context) Editor() *core.Editor {
	return c.store.env.State.Editors.Active()
}

// DB returns the database or ErrNoDatabase.
func (c *Context) DB() (*database.DB, error) {
	if c.store.env.DB == nil {
		return nil, ErrNoDatabase
	}
	return c.store.env.DB, nil
}

// Clipboard returns the clipboard manager, or nil.
func (c *Context) Clipboard() *clipboard.Manager {
	return c.store.env.Clipboard
}

// Themes returns the theme manager, or nil.
func (c *Context) Themes() *theme.Manager {
	return c.store.env.Themes
}

// Publish sends an event on the bus, if there is one.
func (c *Context) Publish(t event.Type, data interface{}) {
	c.store.env.Events.Dispatch(t, data)
}

// Commands returns the registry the command was found in.
func (c *Context) Commands() *Registry {
	return c.store.commands
}

// Project returns the current project, creating it on first use.
func (c *Context) Project() (database.Project, error) {
	return c.store.currentProject(c.ctx)
}

// SetProject makes p the current project.
func (c *Context) SetProject(p database.Project) {
	c.store.project = p
	c.store.projectName = p.Name
}

// Statusf shows a message in the status bar once the command returns.
func (c *Context) Statusf(format string, args ...interface{}) {
	c.Submit(input.SetStatus(fmt.Sprintf(format, args...)))
}

// Submit queues a follow-up action, dispatched after the command returns.
func (c *Context) Submit(a input.ActionEvent) {
	c.pending = append(c.pending, a)
}
