package modehandler

import (
	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/state"
	"github.com/bethropolis/jdiff/internal/types"
)

// handleActionEditing handles keys while typing into the focused editor.
func (mh *ModeHandler) handleActionEditing(base input.ActionEvent, snap state.Snapshot) (input.ActionEvent, bool) {
	if snap.Route != state.RouteEditor {
		// Editing mode only makes sense on the editor screen.
		if base.Action == input.ActionCancel {
			return input.ChangeMode(types.ModeNormal), true
		}
		return input.ActionEvent{}, false
	}

	switch base.Action {
	case input.ActionCancel:
		return input.ChangeMode(types.ModeNormal), true
	case input.ActionUnknown:
		return input.ActionEvent{}, false
	case input.ActionChangeFocus:
		// Tab inserts a tab while typing; Shift-Tab still switches editors.
		if base.Direction == types.DirNext {
			return input.InsertRune('\t'), true
		}
	}
	return base, true
}
