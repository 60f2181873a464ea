// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bethropolis/jdiff/internal/commands"
	"github.com/bethropolis/jdiff/internal/config"
	"github.com/bethropolis/jdiff/internal/core/clipboard"
	"github.com/bethropolis/jdiff/internal/database"
	"github.com/bethropolis/jdiff/internal/event"
	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/bethropolis/jdiff/internal/modehandler"
	"github.com/bethropolis/jdiff/internal/plugin"
	"github.com/bethropolis/jdiff/internal/state"
	"github.com/bethropolis/jdiff/internal/statusbar"
	"github.com/bethropolis/jdiff/internal/store"
	"github.com/bethropolis/jdiff/internal/theme"
	"github.com/bethropolis/jdiff/internal/tui"
)

// submitQueueSize bounds actions queued by plugins between two loop iterations.
const submitQueueSize = 64

// App wires the poller, the mode handler, the state owner and the renderer.
type App struct {
	cfg           *config.Config
	tuiManager    *tui.TUI
	db            *database.DB
	themeManager  *theme.Manager
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	commands      *commands.Registry
	owner         *state.Owner
	statusBar     *statusbar.StatusBar
	modeHandler   *modehandler.ModeHandler

	submitted chan input.ActionEvent
}

// New creates the application on top of an initialized terminal. ctx bounds
// the database work done at startup and by commands.
func New(ctx context.Context, cfg *config.Config, tuiManager *tui.TUI) (*App, error) {
	if cfg == nil {
		return nil, errors.New("app: nil config")
	}
	if tuiManager == nil {
		return nil, errors.New("app: nil terminal")
	}

	themesDir := ""
	if dir := config.Dir(); dir != "" {
		themesDir = filepath.Join(dir, config.ThemesDirName)
	}
	themeManager := theme.NewManager(themesDir, cfg.Theme.Name)

	// Storage is optional: without it the editor still works, persistence
	// commands report ErrNoDatabase.
	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Errorf("App: database unavailable, continuing without persistence: %v", err)
		db = nil
	} else {
		logger.Debugf("App: persisting to %s", db.Path())
	}

	clip := clipboard.NewManager(true)
	if !clip.System() {
		logger.Warnf("App: system clipboard unavailable, :yank and :put use an internal register")
	}

	root := state.New(state.Options{
		MaxEditors:   cfg.Editor.MaxEditors,
		HistoryLimit: cfg.Editor.HistoryLimit,
		LineNumbers:  cfg.Editor.LineNumbers,
	})
	eventManager := event.NewManager()

	cmdRegistry := commands.NewRegistry()
	commands.RegisterBuiltins(cmdRegistry)
	cmdStore := commands.NewStore(ctx, cmdRegistry, commands.Env{
		State:     root,
		DB:        db,
		Clipboard: clip,
		Themes:    themeManager,
		Events:    eventManager,
		Project:   cfg.Database.Project,
	})

	registry := store.NewRegistry[input.ActionEvent]()
	registry.Register(root)
	registry.Register(&state.Counter{})
	registry.Register(cmdStore)

	statusBar := statusbar.New(statusbar.DefaultConfig())
	statusBar.SetProject(cmdStore.ProjectName())
	statusBar.Subscribe(eventManager)

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		db:            db,
		themeManager:  themeManager,
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		commands:      cmdRegistry,
		owner:         state.NewOwner(registry, eventManager, state.WithPanicHook(tuiManager.OnPanic)),
		statusBar:     statusBar,
		modeHandler:   modehandler.New(modehandler.Config{}),
		submitted:     make(chan input.ActionEvent, submitQueueSize),
	}

	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	if err := a.pluginManager.InitializePlugins(newPluginAPI(a)); err != nil {
		logger.Warnf("App: %v", err)
	}

	return a, nil
}

// Run starts the state owner and the poller and runs the main loop until a
// quit is requested or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.shutdown()

	ownerErr := make(chan error, 1)
	go func() {
		defer a.tuiManager.Restore()
		ownerErr <- a.owner.Run(ctx)
	}()

	poller := a.tuiManager.Poller(a.cfg.Editor.TickRate())
	go func() {
		defer a.tuiManager.Restore()
		poller.Run(ctx)
	}()

	a.eventManager.Dispatch(event.TypeAppReady, nil)
	a.statusBar.SetTemporaryMessage("jdiff - ':' for commands, Ctrl+C quits")

	snap, err := a.owner.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to read initial state: %w", err)
	}
	if snap, err = a.draw(ctx, snap); err != nil {
		return err
	}

	for !snap.ShouldQuit {
		var (
			action input.ActionEvent
			ok     bool
		)
		select {
		case ev, open := <-poller.Events():
			if !open {
				logger.Debugf("App: poller closed")
				return nil
			}
			action, ok = a.translate(ev, snap)
		case action = <-a.submitted:
			ok = true
		case <-a.owner.Done():
			return <-ownerErr
		case <-ctx.Done():
			return nil
		}

		if ok {
			next, err := a.owner.Apply(ctx, action)
			switch {
			case errors.Is(err, state.ErrOwnerStopped), errors.Is(err, context.Canceled):
				return nil
			case errors.Is(err, store.ErrChainLimit):
				// The state up to the limit is kept; report it and carry on.
				a.statusBar.SetTemporaryMessage("Action chain too long: %v", action)
			case err != nil:
				return err
			}
			snap = next
		}

		if snap, err = a.draw(ctx, snap); err != nil {
			return err
		}
	}

	if view, ok := snap.Active(); ok && view.Dirty {
		logger.Warnf("App: exited with unsaved changes")
	}
	logger.Infof("App: exiting")
	return nil
}

// submit queues an action for the main loop without blocking the caller.
func (a *App) submit(action input.ActionEvent) {
	select {
	case a.submitted <- action:
	default:
		logger.Warnf("App: submit queue full, dropping %v", action)
	}
}

func (a *App) shutdown() {
	a.pluginManager.ShutdownPlugins()
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			logger.Errorf("App: closing database: %v", err)
		}
	}
	a.tuiManager.Close()
}
