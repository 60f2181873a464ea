package modehandler

import (
	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/state"
	"github.com/bethropolis/jdiff/internal/types"
)

// vimMoves maps hjkl to cursor directions in the editor's normal mode.
var vimMoves = map[rune]types.Direction{
	'h': types.DirLeft,
	'j': types.DirDown,
	'k': types.DirUp,
	'l': types.DirRight,
}

// handleActionNormal handles keys in normal mode; ':' opens the command bar on every screen.
func (mh *ModeHandler) handleActionNormal(base input.ActionEvent, snap state.Snapshot) (input.ActionEvent, bool) {
	if base.Action == input.ActionInsertRune && base.Rune == ':' {
		return input.ChangeMode(types.ModeCommand), true
	}

	switch snap.Route {
	case state.RouteCounter:
		return counterKeys(base)
	case state.RouteEditor:
		return editorNormalKeys(base)
	default:
		return welcomeKeys(base)
	}
}

func welcomeKeys(base input.ActionEvent) (input.ActionEvent, bool) {
	if base.Action != input.ActionInsertRune {
		return input.ActionEvent{}, false
	}
	switch base.Rune {
	case 'e', 'n':
		return input.Navigate(state.RouteEditor), true
	case 'c':
		return input.Navigate(state.RouteCounter), true
	case 'q':
		return input.Quit(), true
	}
	return input.ActionEvent{}, false
}

func counterKeys(base input.ActionEvent) (input.ActionEvent, bool) {
	switch base.Action {
	case input.ActionCancel:
		return input.Navigate(state.RouteWelcome), true
	case input.ActionMoveCursor:
		switch base.Direction {
		case types.DirUp:
			return input.Simple(input.ActionIncrement), true
		case types.DirDown:
			return input.Simple(input.ActionDecrement), true
		}
	case input.ActionInsertRune:
		switch base.Rune {
		case 'k', '+':
			return input.Simple(input.ActionIncrement), true
		case 'j', '-':
			return input.Simple(input.ActionDecrement), true
		case 'q':
			return input.Navigate(state.RouteWelcome), true
		}
	}
	return input.ActionEvent{}, false
}

func editorNormalKeys(base input.ActionEvent) (input.ActionEvent, bool) {
	switch base.Action {
	case input.ActionCancel:
		return input.Navigate(state.RouteWelcome), true
	case input.ActionInsertRune:
		if dir, ok := vimMoves[base.Rune]; ok {
			return input.MoveCursor(dir), true
		}
		switch base.Rune {
		case 'i':
			return input.ChangeMode(types.ModeEditing), true
		case 'u':
			return input.Simple(input.ActionUndo), true
		case 'p':
			return input.ExecuteCommand("put"), true
		case 'y':
			return input.ExecuteCommand("yank"), true
		}
		return input.ActionEvent{}, false
	case input.ActionInsertNewLine, input.ActionDeleteCharBackward:
		// Text changes need editing mode.
		return input.ActionEvent{}, false
	case input.ActionUnknown:
		return input.ActionEvent{}, false
	}
	// Arrows, undo/redo, focus, add/close, line numbers, save/put shortcuts.
	return base, true
}
