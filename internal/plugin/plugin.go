// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/jdiff/internal/commands"
	"github.com/bethropolis/jdiff/internal/config"
	"github.com/bethropolis/jdiff/internal/event"
	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/state"
)

// API is what plugins may use to interact with the application.
//
// Event handlers and commands run on the goroutine that owns the state, so
// from there only Submit and SetStatus may be called; Snapshot would deadlock.
type API interface {
	// RegisterCommand exposes a ':' command.
	RegisterCommand(name string, fn commands.Func) error

	// Subscribe listens on the event bus.
	Subscribe(eventType event.Type, handler event.Handler)

	// Submit queues an action for dispatch without waiting for it.
	Submit(a input.ActionEvent)

	// Snapshot returns the current state.
	Snapshot() (state.Snapshot, error)

	// SetStatus shows a temporary message.
	SetStatus(format string, args ...interface{})

	// EditorConfig returns the [editor] configuration.
	EditorConfig() config.EditorConfig
}

// Plugin is implemented by every plugin.
type Plugin interface {
	// Name returns the unique identifier of the plugin.
	Name() string

	// Initialize is called once at startup; subscribe to events and
	// register commands here.
	Initialize(api API) error

	// Shutdown is called once when the application exits.
	Shutdown() error
}
