package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bethropolis/jdiff/internal/core/clipboard"
	"github.com/bethropolis/jdiff/internal/database"
	"github.com/bethropolis/jdiff/internal/event"
	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/logger"
)

// RegisterBuiltins registers the commands every session has.
func RegisterBuiltins(r *Registry) {
	builtins := []struct {
		name string
		fn   Func
	}{
		{"save", saveCmd},
		{"load", loadCmd},
		{"project", projectCmd},
		{"projects", projectsCmd},
		{"request", requestCmd},
		{"requests", requestsCmd},
		{"yank", yankCmd},
		{"put", putCmd},
		{"help", helpCmd},
	}
	for _, b := range builtins {
		if err := r.Register(b.name, b.fn); err != nil {
			logger.Warnf("Failed to register ':%s' command: %v", b.name, err)
		}
	}
	RegisterThemeCommands(r)
}

// saveCmd writes the focused editor to the current project's editor content.
func saveCmd(c *Context, args []string) error {
	db, err := c.DB()
	if err != nil {
		return err
	}
	project, err := c.Project()
	if err != nil {
		return err
	}

	editor := c.Editor()
	content := strings.Join(editor.ExportLines(), "\n")
	if err := db.EditorContent().Save(c.Context(), project.ID, content); err != nil {
		return fmt.Errorf("failed to save editor content: %w", err)
	}
	editor.MarkSaved()

	c.Publish(event.TypeBufferSaved, event.BufferSavedData{Project: project.Name, Bytes: len(content)})
	c.Statusf("Saved %d lines to project '%s'", editor.LineCount(), project.Name)
	return nil
}

// loadCmd replaces the focused editor with the current project's saved content.
func loadCmd(c *Context, args []string) error {
	db, err := c.DB()
	if err != nil {
		return err
	}
	project, err := c.Project()
	if err != nil {
		return err
	}

	saved, err := db.EditorContent().Load(c.Context(), project.ID)
	if errors.Is(err, database.ErrNotFound) {
		c.Statusf("Nothing saved in project '%s'", project.Name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load editor content: %w", err)
	}

	lines := strings.Split(saved.Content, "\n")
	c.Editor().LoadLines(lines)
	c.Publish(event.TypeBufferLoaded, event.BufferLoadedData{Project: project.Name, Lines: len(lines)})
	c.Statusf("Loaded %d lines from project '%s'", len(lines), project.Name)
	return nil
}

// projectCmd shows the current project, or switches to (creating) the named one.
func projectCmd(c *Context, args []string) error {
	if len(args) == 0 {
		project, err := c.Project()
		if err != nil {
			return err
		}
		c.Statusf("Current project: %s", project.Name)
		return nil
	}

	db, err := c.DB()
	if err != nil {
		return err
	}
	name := strings.Join(args, " ")
	project, err := db.Projects().Ensure(c.Context(), name)
	if err != nil {
		return fmt.Errorf("failed to open project '%s': %w", name, err)
	}
	c.SetProject(project)
	c.Publish(event.TypeProjectChanged, event.ProjectChangedData{Name: project.Name})
	c.Statusf("Project set to: %s", project.Name)
	return nil
}

func projectsCmd(c *Context, args []string) error {
	db, err := c.DB()
	if err != nil {
		return err
	}
	current, err := c.Project()
	if err != nil {
		return err
	}
	projects, err := db.Projects().List(c.Context())
	if err != nil {
		return err
	}

	names := make([]string, 0, len(projects))
	for _, p := range projects {
		if p.ID == current.ID {
			names = append(names, "*"+p.Name)
		} else {
			names = append(names, p.Name)
		}
	}
	c.Statusf("Projects: %s", strings.Join(names, ", "))
	return nil
}

// requestCmd stores a request definition: :request <name> <url> [body...].
func requestCmd(c *Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: request <name> <url> [body]")
	}
	db, err := c.DB()
	if err != nil {
		return err
	}
	project, err := c.Project()
	if err != nil {
		return err
	}

	r, err := db.Requests().Create(c.Context(), database.Request{
		ProjectID: project.ID,
		Name:      args[0],
		URL:       args[1],
		Body:      strings.Join(args[2:], " "),
	})
	if err != nil {
		return fmt.Errorf("failed to store request '%s': %w", args[0], err)
	}
	c.Statusf("Stored request '%s' (%s)", r.Name, r.UID)
	return nil
}

func requestsCmd(c *Context, args []string) error {
	db, err := c.DB()
	if err != nil {
		return err
	}
	project, err := c.Project()
	if err != nil {
		return err
	}
	requests, err := db.Requests().ListByProject(c.Context(), project.ID)
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		c.Statusf("No requests in project '%s'", project.Name)
		return nil
	}

	parts := make([]string, 0, len(requests))
	for _, r := range requests {
		parts = append(parts, fmt.Sprintf("%s %s", r.Name, r.URL))
	}
	c.Statusf("Requests: %s", strings.Join(parts, ", "))
	return nil
}

// yankCmd copies the focused editor to the clipboard.
func yankCmd(c *Context, args []string) error {
	cb := c.Clipboard()
	if cb == nil {
		return errors.New("clipboard unavailable")
	}
	lines := c.Editor().ExportLines()
	if err := cb.Yank(lines); err != nil {
		return err
	}
	c.Statusf("Yanked %d lines", len(lines))
	return nil
}

// putCmd pastes the clipboard at the cursor of the focused editor.
func putCmd(c *Context, args []string) error {
	cb := c.Clipboard()
	if cb == nil {
		return errors.New("clipboard unavailable")
	}
	text, err := cb.Paste()
	if errors.Is(err, clipboard.ErrEmpty) {
		c.Statusf("Clipboard empty")
		return nil
	}
	if err != nil {
		return err
	}
	c.Submit(input.Paste(text))
	return nil
}

func helpCmd(c *Context, args []string) error {
	c.Statusf("Commands: %s", strings.Join(c.Commands().Names(), ", "))
	return nil
}
