package app

import (
	"context"
	"fmt"

	"github.com/bethropolis/jdiff/internal/commands"
	"github.com/bethropolis/jdiff/internal/config"
	"github.com/bethropolis/jdiff/internal/event"
	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/bethropolis/jdiff/internal/plugin"
	"github.com/bethropolis/jdiff/internal/state"
	"github.com/bethropolis/jdiff/plugins/autosave"
	"github.com/bethropolis/jdiff/plugins/wordcount"
)

// registerPlugins registers every built-in plugin with the manager.
func registerPlugins(pm *plugin.Manager) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	pluginConstructors := []func() plugin.Plugin{
		wordcount.New,
		autosave.New,
	}

	var firstErr error
	for _, newPlugin := range pluginConstructors {
		p := newPlugin()
		logger.Debugf("Registering plugin: %s", p.Name())
		if err := pm.Register(p); err != nil {
			wrapped := fmt.Errorf("failed to register plugin '%s': %w", p.Name(), err)
			logger.Errorf("%v", wrapped)
			if firstErr == nil {
				firstErr = wrapped
			}
		}
	}
	return firstErr
}

var _ plugin.API = (*pluginAPI)(nil)

// pluginAPI is the application side of plugin.API.
type pluginAPI struct {
	app *App
}

func newPluginAPI(app *App) *pluginAPI {
	return &pluginAPI{app: app}
}

func (api *pluginAPI) RegisterCommand(name string, fn commands.Func) error {
	return api.app.commands.Register(name, fn)
}

func (api *pluginAPI) Subscribe(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

func (api *pluginAPI) Submit(a input.ActionEvent) {
	api.app.submit(a)
}

func (api *pluginAPI) Snapshot() (state.Snapshot, error) {
	return api.app.owner.Snapshot(context.Background())
}

func (api *pluginAPI) SetStatus(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
}

func (api *pluginAPI) EditorConfig() config.EditorConfig {
	return api.app.cfg.Editor
}
