// internal/modehandler/modehandler.go
package modehandler

import (
	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/bethropolis/jdiff/internal/state"
	"github.com/bethropolis/jdiff/internal/types"
	"github.com/gdamore/tcell/v2"
)

// ModeHandler translates key events into at most one action, depending on
// the current mode and screen. It holds no state of its own; the snapshot
// passed in is the source of truth.
type ModeHandler struct {
	inputProcessor *input.InputProcessor
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	InputProcessor *input.InputProcessor // nil means default bindings
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.InputProcessor == nil {
		cfg.InputProcessor = input.NewInputProcessor()
	}
	return &ModeHandler{inputProcessor: cfg.InputProcessor}
}

// HandleKeyEvent returns the action for ev, or false when the key means
// nothing on the current screen.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey, snap state.Snapshot) (input.ActionEvent, bool) {
	base := mh.inputProcessor.ProcessEvent(ev)

	// Ctrl+C quits from anywhere.
	if base.Action == input.ActionQuit {
		return base, true
	}

	var (
		action input.ActionEvent
		ok     bool
	)
	switch snap.Mode {
	case types.ModeCommand:
		action, ok = mh.handleActionCommand(base)
	case types.ModeEditing:
		action, ok = mh.handleActionEditing(base, snap)
	default:
		action, ok = mh.handleActionNormal(base, snap)
	}

	if ok {
		logger.DebugTagf("input", "ModeHandler: %s %s -> %v", snap.Mode, snap.Route, action)
	}
	return action, ok
}

// HandlePaste returns the action for pasted text. Paste only reaches an editor.
func (mh *ModeHandler) HandlePaste(text string, snap state.Snapshot) (input.ActionEvent, bool) {
	if text == "" || snap.Route != state.RouteEditor || snap.Mode == types.ModeCommand {
		return input.ActionEvent{}, false
	}
	return input.Paste(text), true
}

// HandleResize returns the action for a terminal resize.
func (mh *ModeHandler) HandleResize() input.ActionEvent {
	return input.Simple(input.ActionToggleResize)
}
