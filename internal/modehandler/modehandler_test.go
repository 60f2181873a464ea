package modehandler

import (
	"testing"

	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/state"
	"github.com/bethropolis/jdiff/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func ctrl(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModCtrl)
}

func TestHandleKeyEvent(t *testing.T) {
	welcome := state.Snapshot{Mode: types.ModeNormal, Route: state.RouteWelcome}
	counter := state.Snapshot{Mode: types.ModeNormal, Route: state.RouteCounter}
	editor := state.Snapshot{Mode: types.ModeNormal, Route: state.RouteEditor}
	editing := state.Snapshot{Mode: types.ModeEditing, Route: state.RouteEditor}
	command := state.Snapshot{Mode: types.ModeCommand, Route: state.RouteEditor}

	tests := []struct {
		name string
		snap state.Snapshot
		ev   *tcell.EventKey
		want input.ActionEvent
		ok   bool
	}{
		{"welcome e opens editor", welcome, runeKey('e'), input.Navigate(state.RouteEditor), true},
		{"welcome n opens editor", welcome, runeKey('n'), input.Navigate(state.RouteEditor), true},
		{"welcome c opens counter", welcome, runeKey('c'), input.Navigate(state.RouteCounter), true},
		{"welcome q quits", welcome, runeKey('q'), input.Quit(), true},
		{"welcome other rune ignored", welcome, runeKey('z'), input.ActionEvent{}, false},
		{"colon opens command bar", welcome, runeKey(':'), input.ChangeMode(types.ModeCommand), true},
		{"ctrl-c quits anywhere", editing, ctrl(tcell.KeyCtrlC), input.Quit(), true},

		{"counter k increments", counter, runeKey('k'), input.Simple(input.ActionIncrement), true},
		{"counter j decrements", counter, runeKey('j'), input.Simple(input.ActionDecrement), true},
		{"counter up increments", counter, key(tcell.KeyUp), input.Simple(input.ActionIncrement), true},
		{"counter esc goes back", counter, key(tcell.KeyEscape), input.Navigate(state.RouteWelcome), true},

		{"editor i starts editing", editor, runeKey('i'), input.ChangeMode(types.ModeEditing), true},
		{"editor h moves left", editor, runeKey('h'), input.MoveCursor(types.DirLeft), true},
		{"editor arrow moves", editor, key(tcell.KeyDown), input.MoveCursor(types.DirDown), true},
		{"editor u undoes", editor, runeKey('u'), input.Simple(input.ActionUndo), true},
		{"editor ctrl-r redoes", editor, ctrl(tcell.KeyCtrlR), input.Simple(input.ActionRedo), true},
		{"editor tab changes focus", editor, key(tcell.KeyTab), input.ActionEvent{Action: input.ActionChangeFocus, Direction: types.DirNext}, true},
		{"editor ctrl-n adds", editor, ctrl(tcell.KeyCtrlN), input.Simple(input.ActionAddEditor), true},
		{"editor ctrl-w closes", editor, ctrl(tcell.KeyCtrlW), input.Simple(input.ActionCloseEditor), true},
		{"editor ctrl-l toggles lines", editor, ctrl(tcell.KeyCtrlL), input.Simple(input.ActionToggleLines), true},
		{"editor ctrl-s saves", editor, ctrl(tcell.KeyCtrlS), input.ExecuteCommand("save"), true},
		{"editor esc goes back", editor, key(tcell.KeyEscape), input.Navigate(state.RouteWelcome), true},
		{"editor enter needs editing mode", editor, key(tcell.KeyEnter), input.ActionEvent{}, false},

		{"editing rune inserts", editing, runeKey('x'), input.InsertRune('x'), true},
		{"editing hjkl inserts", editing, runeKey('j'), input.InsertRune('j'), true},
		{"editing enter adds line", editing, key(tcell.KeyEnter), input.Simple(input.ActionInsertNewLine), true},
		{"editing backspace", editing, key(tcell.KeyBackspace2), input.Simple(input.ActionDeleteCharBackward), true},
		{"editing arrow moves", editing, key(tcell.KeyLeft), input.MoveCursor(types.DirLeft), true},
		{"editing tab inserts tab", editing, key(tcell.KeyTab), input.InsertRune('\t'), true},
		{"editing esc returns to normal", editing, key(tcell.KeyEscape), input.ChangeMode(types.ModeNormal), true},

		{"command rune", command, runeKey('w'), input.ActionEvent{Action: input.ActionCommandInput, Rune: 'w'}, true},
		{"command colon is text", command, runeKey(':'), input.ActionEvent{Action: input.ActionCommandInput, Rune: ':'}, true},
		{"command backspace", command, key(tcell.KeyBackspace), input.Simple(input.ActionCommandBackspace), true},
		{"command left", command, key(tcell.KeyLeft), input.ActionEvent{Action: input.ActionCommandMove, Direction: types.DirLeft}, true},
		{"command up ignored", command, key(tcell.KeyUp), input.ActionEvent{}, false},
		{"command enter", command, key(tcell.KeyEnter), input.Simple(input.ActionCommandEnter), true},
		{"command esc resets", command, key(tcell.KeyEscape), input.Simple(input.ActionCommandReset), true},
	}

	mh := New(Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mh.HandleKeyEvent(tt.ev, tt.snap)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestHandlePaste(t *testing.T) {
	mh := New(Config{})
	editor := state.Snapshot{Mode: types.ModeEditing, Route: state.RouteEditor}

	got, ok := mh.HandlePaste("a\nb", editor)
	assert.True(t, ok)
	assert.Equal(t, input.Paste("a\nb"), got)

	_, ok = mh.HandlePaste("x", state.Snapshot{Route: state.RouteWelcome})
	assert.False(t, ok)
	_, ok = mh.HandlePaste("x", state.Snapshot{Mode: types.ModeCommand, Route: state.RouteEditor})
	assert.False(t, ok)
	_, ok = mh.HandlePaste("", editor)
	assert.False(t, ok)
}

func TestHandleResize(t *testing.T) {
	assert.Equal(t, input.Simple(input.ActionToggleResize), New(Config{}).HandleResize())
}
