package app

import (
	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/bethropolis/jdiff/internal/state"
	"github.com/bethropolis/jdiff/internal/tui"
)

// translate turns one poller event into the action to dispatch, if any.
// Ticks only trigger a redraw.
func (a *App) translate(ev tui.Event, snap state.Snapshot) (input.ActionEvent, bool) {
	switch ev.Kind {
	case tui.EventKey:
		return a.modeHandler.HandleKeyEvent(ev.Key, snap)
	case tui.EventPaste:
		return a.modeHandler.HandlePaste(ev.Text, snap)
	case tui.EventResize:
		logger.DebugTagf("draw", "App: resize to %dx%d", ev.Width, ev.Height)
		a.tuiManager.Sync()
		return a.modeHandler.HandleResize(), true
	}
	return input.ActionEvent{}, false
}
