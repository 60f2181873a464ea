// Package state holds the application state tree and the goroutine that owns it.
package state

import (
	"github.com/bethropolis/jdiff/internal/core"
	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/bethropolis/jdiff/internal/types"
)

// AppModel is the top-level application slice.
type AppModel struct {
	Mode       types.Mode
	ShouldQuit bool
	Status     string
	StatusSeq  int // Bumped on every SetStatus, so repeated messages are still noticed
}

// Options configures a new State.
type Options struct {
	MaxEditors   int
	HistoryLimit int
	LineNumbers  bool
}

// State is the application state tree. Each action is resolved against the
// slice that owns it; Update may return one follow-up action.
type State struct {
	App        AppModel
	CommandBar *CommandBar
	Router     *Router
	Editors    *core.Container
}

// New creates the tree with every route registered.
func New(opts Options) *State {
	editors := core.NewContainer(opts.MaxEditors, opts.HistoryLimit)
	editors.SetLineNumbers(opts.LineNumbers)
	return &State{
		App:        AppModel{Mode: types.ModeNormal},
		CommandBar: NewCommandBar(),
		Router:     NewRouter(RouteCounter, RouteEditor),
		Editors:    editors,
	}
}

// Handle implements store.Store.
func (s *State) Handle(a input.ActionEvent) []input.ActionEvent {
	if next, ok := s.Update(a); ok {
		return []input.ActionEvent{next}
	}
	return nil
}

// Update applies a and returns the follow-up action, if any.
func (s *State) Update(a input.ActionEvent) (input.ActionEvent, bool) {
	switch a.Action {
	case input.ActionQuit:
		s.App.ShouldQuit = true
	case input.ActionChangeMode:
		if a.Mode == types.ModeCommand {
			s.CommandBar.Clear()
		}
		s.App.Mode = a.Mode
	case input.ActionSetStatus:
		s.App.Status = a.Text
		s.App.StatusSeq++

	case input.ActionCommandInput:
		s.CommandBar.Insert(a.Rune)
	case input.ActionCommandMove:
		s.CommandBar.Move(a.Direction)
	case input.ActionCommandBackspace:
		s.CommandBar.Backspace()
	case input.ActionCommandEnter:
		return s.submitCommand()
	case input.ActionCommandReset:
		s.CommandBar.Clear()
		return input.ChangeMode(types.ModeNormal), true

	case input.ActionNavigate:
		s.Router.Navigate(a.Text)

	default:
		s.updateEditors(a)
	}
	return input.ActionEvent{}, false
}

// submitCommand runs the command bar's content and returns to normal mode.
func (s *State) submitCommand() (input.ActionEvent, bool) {
	cmd := s.CommandBar.Command()
	s.CommandBar.Clear()
	s.App.Mode = types.ModeNormal

	switch {
	case cmd == "":
		return input.ActionEvent{}, false
	case IsExit(cmd):
		return input.Quit(), true
	}
	logger.Debugf("State: command %q", cmd)
	return input.ExecuteCommand(cmd), true
}

func (s *State) updateEditors(a input.ActionEvent) {
	c := s.Editors
	switch a.Action {
	case input.ActionInitEditor:
		c.Init(a.Height)
	case input.ActionToggleResize:
		c.ToggleResize()
	case input.ActionResizeEditor:
		c.Resize(a.Height)
	case input.ActionInsertRune:
		c.Active().InsertChar(a.Rune)
	case input.ActionPaste:
		c.Active().InsertText(a.Text)
	case input.ActionInsertNewLine:
		c.Active().AddLine()
	case input.ActionDeleteCharBackward:
		c.Active().Backspace()
	case input.ActionMoveCursor:
		c.Active().MoveCursor(a.Direction)
	case input.ActionUndo:
		c.Active().Undo()
	case input.ActionRedo:
		c.Active().Redo()
	case input.ActionChangeFocus:
		c.ChangeFocus(a.Direction)
	case input.ActionAddEditor:
		c.Add()
	case input.ActionCloseEditor:
		c.Close()
	case input.ActionToggleLines:
		c.ToggleLineNumbers()
	}
}
