package modehandler

import (
	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/types"
)

// handleActionCommand maps keys onto the command bar.
func (mh *ModeHandler) handleActionCommand(base input.ActionEvent) (input.ActionEvent, bool) {
	switch base.Action {
	case input.ActionInsertRune:
		return input.ActionEvent{Action: input.ActionCommandInput, Rune: base.Rune}, true
	case input.ActionDeleteCharBackward:
		return input.Simple(input.ActionCommandBackspace), true
	case input.ActionMoveCursor:
		if base.Direction == types.DirLeft || base.Direction == types.DirRight {
			return input.ActionEvent{Action: input.ActionCommandMove, Direction: base.Direction}, true
		}
	case input.ActionInsertNewLine:
		return input.Simple(input.ActionCommandEnter), true
	case input.ActionCancel:
		return input.Simple(input.ActionCommandReset), true
	}
	return input.ActionEvent{}, false
}
