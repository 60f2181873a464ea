package commands

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bethropolis/jdiff/internal/core/clipboard"
	"github.com/bethropolis/jdiff/internal/database"
	"github.com/bethropolis/jdiff/internal/event"
	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/state"
	"github.com/bethropolis/jdiff/internal/store"
	"github.com/bethropolis/jdiff/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	state    *state.State
	commands *Store
	registry *store.Registry[input.ActionEvent]
	events   *event.Manager
}

func newFixture(t *testing.T, withDB bool) *fixture {
	t.Helper()
	st := state.New(state.Options{MaxEditors: 2, HistoryLimit: 20})
	env := Env{
		State:     st,
		Clipboard: clipboard.NewManager(false),
		Themes:    theme.NewManager("", ""),
		Events:    event.NewManager(),
		Project:   "alpha",
	}
	if withDB {
		db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "jdiff.db"))
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		env.DB = db
	}

	cmds := NewRegistry()
	RegisterBuiltins(cmds)
	s := NewStore(context.Background(), cmds, env)

	reg := store.NewRegistry[input.ActionEvent]()
	reg.Register(st)
	reg.Register(s)
	return &fixture{state: st, commands: s, registry: reg, events: env.Events}
}

func (f *fixture) run(t *testing.T, line string) {
	t.Helper()
	require.NoError(t, f.registry.Dispatch(input.ExecuteCommand(line)))
}

func (f *fixture) typeText(t *testing.T, text string) {
	t.Helper()
	require.NoError(t, f.registry.Dispatch(input.Paste(text)))
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		name string
		args []string
	}{
		{"", "", nil},
		{"   ", "", nil},
		{"save", "save", []string{}},
		{":theme Jdiff Dark", "theme", []string{"Jdiff", "Dark"}},
		{"  request  users   http://x ", "request", []string{"users", "http://x"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, args := Parse(tt.line)
			assert.Equal(t, tt.name, name)
			if tt.args == nil {
				assert.Nil(t, args)
			} else {
				assert.Equal(t, tt.args, args)
			}
		})
	}
}

func TestRegistryRejectsDuplicatesAndBadNames(t *testing.T) {
	r := NewRegistry()
	noop := func(*Context, []string) error { return nil }
	require.NoError(t, r.Register("x", noop))
	assert.Error(t, r.Register("x", noop))
	assert.Error(t, r.Register("", noop))
	assert.Error(t, r.Register("a b", noop))
	assert.Error(t, r.Register("y", nil))
	assert.Equal(t, []string{"x"}, r.Names())
}

func TestUnknownCommandSetsStatus(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.commands.Execute("frobnicate now")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	f.run(t, "frobnicate now")
	assert.Equal(t, "Unknown command: frobnicate", f.state.App.Status)
}

func TestIgnoresOtherActions(t *testing.T) {
	f := newFixture(t, false)
	assert.Nil(t, f.commands.Handle(input.Simple(input.ActionUndo)))
}

func TestPersistenceWithoutDatabase(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.commands.Execute("save")
	assert.ErrorIs(t, err, ErrNoDatabase)

	f.run(t, "save")
	assert.Contains(t, f.state.App.Status, "no database configured")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	f := newFixture(t, true)
	var saved []event.BufferSavedData
	f.events.Subscribe(event.TypeBufferSaved, func(e event.Event) bool {
		saved = append(saved, e.Data.(event.BufferSavedData))
		return false
	})

	f.typeText(t, "hello\nworld")
	editor := f.state.Editors.Active()
	require.True(t, editor.Dirty())

	f.run(t, "save")
	assert.False(t, editor.Dirty())
	assert.Equal(t, "Saved 2 lines to project 'alpha'", f.state.App.Status)
	require.Len(t, saved, 1)
	assert.Equal(t, event.BufferSavedData{Project: "alpha", Bytes: len("hello\nworld")}, saved[0])

	f.typeText(t, "!!")
	f.run(t, "load")
	assert.Equal(t, []string{"hello", "world"}, editor.ExportLines())
	assert.False(t, editor.Dirty())
	assert.False(t, editor.CanUndo(), "loaded content is the new undo floor")
}

func TestLoadWithNothingSaved(t *testing.T) {
	f := newFixture(t, true)
	f.run(t, "load")
	assert.Equal(t, "Nothing saved in project 'alpha'", f.state.App.Status)
}

func TestProjectsAreIsolated(t *testing.T) {
	f := newFixture(t, true)
	f.typeText(t, "alpha text")
	f.run(t, "save")

	f.run(t, "project beta")
	assert.Equal(t, "Project set to: beta", f.state.App.Status)
	assert.Equal(t, "beta", f.commands.ProjectName())

	f.run(t, "load")
	assert.Equal(t, "Nothing saved in project 'beta'", f.state.App.Status)

	f.run(t, "projects")
	assert.Equal(t, "Projects: alpha, *beta", f.state.App.Status)

	f.run(t, "project alpha")
	f.run(t, "load")
	assert.Equal(t, []string{"alpha text"}, f.state.Editors.Active().ExportLines())
}

func TestRequestCommands(t *testing.T) {
	f := newFixture(t, true)
	f.run(t, "requests")
	assert.Equal(t, "No requests in project 'alpha'", f.state.App.Status)

	f.run(t, "request users")
	assert.Contains(t, f.state.App.Status, "usage: request")

	f.run(t, "request users http://localhost/users")
	assert.Contains(t, f.state.App.Status, "Stored request 'users'")

	f.run(t, "requests")
	assert.Equal(t, "Requests: users http://localhost/users", f.state.App.Status)
}

func TestYankAndPut(t *testing.T) {
	f := newFixture(t, false)
	f.run(t, "put")
	assert.Equal(t, "Clipboard empty", f.state.App.Status)

	f.typeText(t, "ab\ncd")
	f.run(t, "yank")
	assert.Equal(t, "Yanked 2 lines", f.state.App.Status)

	require.NoError(t, f.registry.Dispatch(input.Simple(input.ActionAddEditor)))
	f.run(t, "put")
	assert.Equal(t, []string{"ab", "cd"}, f.state.Editors.Active().ExportLines())
}

func TestThemeCommands(t *testing.T) {
	f := newFixture(t, false)
	var changed []string
	f.events.Subscribe(event.TypeThemeChanged, func(e event.Event) bool {
		changed = append(changed, e.Data.(event.ThemeChangedData).Name)
		return false
	})

	f.run(t, "theme")
	assert.Equal(t, "Current theme: Jdiff Dark", f.state.App.Status)

	f.run(t, "themes")
	assert.Equal(t, "Available themes: Jdiff Dark", f.state.App.Status)

	f.run(t, "theme jdiff dark")
	assert.Equal(t, "Theme set to: Jdiff Dark", f.state.App.Status)
	assert.Equal(t, []string{"Jdiff Dark"}, changed)

	f.run(t, "theme neon")
	assert.Contains(t, f.state.App.Status, "theme 'neon' not found")
}

func TestHelpListsCommands(t *testing.T) {
	f := newFixture(t, false)
	f.run(t, "help")
	assert.Contains(t, f.state.App.Status, "save")
	assert.Contains(t, f.state.App.Status, "themes")
}
