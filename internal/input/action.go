// internal/input/action.go
package input

import (
	"fmt"

	"github.com/bethropolis/jdiff/internal/types"
)

// Action names a requested state transition.
type Action int

const (
	ActionUnknown Action = iota

	// --- Application ---
	ActionQuit
	ActionChangeMode // Mode
	ActionSetStatus  // Text
	ActionCancel     // Esc; interpreted by the mode handler, never reaches state

	// --- Command bar ---
	ActionCommandInput // Rune
	ActionCommandMove  // Direction
	ActionCommandBackspace
	ActionCommandEnter
	ActionCommandReset
	ActionExecuteCommand // Text holds the command line without ':'

	// --- Router ---
	ActionNavigate // Text holds the path

	// --- Counter ---
	ActionIncrement
	ActionDecrement

	// --- Editor container ---
	ActionInitEditor   // Height
	ActionToggleResize // Terminal size changed
	ActionResizeEditor // Height
	ActionInsertRune   // Rune
	ActionPaste        // Text
	ActionInsertNewLine
	ActionDeleteCharBackward
	ActionMoveCursor // Direction
	ActionUndo
	ActionRedo
	ActionChangeFocus // Direction
	ActionAddEditor
	ActionCloseEditor
	ActionToggleLines
)

var actionNames = map[Action]string{
	ActionUnknown:            "Unknown",
	ActionQuit:               "Quit",
	ActionChangeMode:         "ChangeMode",
	ActionSetStatus:          "SetStatus",
	ActionCancel:             "Cancel",
	ActionCommandInput:       "CommandInput",
	ActionCommandMove:        "CommandMove",
	ActionCommandBackspace:   "CommandBackspace",
	ActionCommandEnter:       "CommandEnter",
	ActionCommandReset:       "CommandReset",
	ActionExecuteCommand:     "ExecuteCommand",
	ActionNavigate:           "Navigate",
	ActionIncrement:          "Increment",
	ActionDecrement:          "Decrement",
	ActionInitEditor:         "InitEditor",
	ActionToggleResize:       "ToggleResize",
	ActionResizeEditor:       "ResizeEditor",
	ActionInsertRune:         "InsertRune",
	ActionPaste:              "Paste",
	ActionInsertNewLine:      "InsertNewLine",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionMoveCursor:         "MoveCursor",
	ActionUndo:               "Undo",
	ActionRedo:               "Redo",
	ActionChangeFocus:        "ChangeFocus",
	ActionAddEditor:          "AddEditor",
	ActionCloseEditor:        "CloseEditor",
	ActionToggleLines:        "ToggleLines",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ActionEvent is an immutable action plus its payload. It is comparable,
// which the store registry relies on to drop re-queued duplicates.
type ActionEvent struct {
	Action    Action
	Rune      rune
	Mode      types.Mode
	Direction types.Direction
	Height    int
	Text      string
}

func (e ActionEvent) String() string {
	switch e.Action {
	case ActionInsertRune, ActionCommandInput:
		return fmt.Sprintf("%s(%q)", e.Action, e.Rune)
	case ActionChangeMode:
		return fmt.Sprintf("%s(%s)", e.Action, e.Mode)
	case ActionMoveCursor, ActionCommandMove, ActionChangeFocus:
		return fmt.Sprintf("%s(%s)", e.Action, e.Direction)
	case ActionInitEditor, ActionResizeEditor:
		return fmt.Sprintf("%s(%d)", e.Action, e.Height)
	case ActionSetStatus, ActionExecuteCommand, ActionNavigate, ActionPaste:
		return fmt.Sprintf("%s(%q)", e.Action, e.Text)
	}
	return e.Action.String()
}

// Constructors for the actions that carry a payload.

func Quit() ActionEvent { return ActionEvent{Action: ActionQuit} }

func ChangeMode(m types.Mode) ActionEvent { return ActionEvent{Action: ActionChangeMode, Mode: m} }

func SetStatus(text string) ActionEvent { return ActionEvent{Action: ActionSetStatus, Text: text} }

func Navigate(path string) ActionEvent { return ActionEvent{Action: ActionNavigate, Text: path} }

func ExecuteCommand(line string) ActionEvent {
	return ActionEvent{Action: ActionExecuteCommand, Text: line}
}

func InsertRune(r rune) ActionEvent { return ActionEvent{Action: ActionInsertRune, Rune: r} }

func Paste(text string) ActionEvent { return ActionEvent{Action: ActionPaste, Text: text} }

func MoveCursor(d types.Direction) ActionEvent {
	return ActionEvent{Action: ActionMoveCursor, Direction: d}
}

func InitEditor(height int) ActionEvent { return ActionEvent{Action: ActionInitEditor, Height: height} }

func ResizeEditor(height int) ActionEvent {
	return ActionEvent{Action: ActionResizeEditor, Height: height}
}

func Simple(a Action) ActionEvent { return ActionEvent{Action: a} }
