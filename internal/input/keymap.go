// internal/input/keymap.go
package input

import (
	"github.com/bethropolis/jdiff/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]ActionEvent

// ModKeymap maps keys pressed with a modifier.
type ModKeymap map[tcell.ModMask]Keymap

// InputProcessor translates tcell key events into mode-independent ActionEvents.
// The mode handler decides what each one means on the current screen.
type InputProcessor struct {
	keymap    Keymap
	modKeymap ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:    make(Keymap),
		modKeymap: make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = MoveCursor(types.DirUp)
	p.keymap[tcell.KeyDown] = MoveCursor(types.DirDown)
	p.keymap[tcell.KeyLeft] = MoveCursor(types.DirLeft)
	p.keymap[tcell.KeyRight] = MoveCursor(types.DirRight)
	p.keymap[tcell.KeyBackspace] = Simple(ActionDeleteCharBackward)
	p.keymap[tcell.KeyBackspace2] = Simple(ActionDeleteCharBackward)
	p.keymap[tcell.KeyEnter] = Simple(ActionInsertNewLine)
	p.keymap[tcell.KeyEscape] = Simple(ActionCancel)
	p.keymap[tcell.KeyTab] = ActionEvent{Action: ActionChangeFocus, Direction: types.DirNext}
	p.keymap[tcell.KeyBacktab] = ActionEvent{Action: ActionChangeFocus, Direction: types.DirPrev}

	ctrl := make(Keymap)
	ctrl[tcell.KeyCtrlC] = Quit()
	ctrl[tcell.KeyCtrlZ] = Simple(ActionUndo)
	ctrl[tcell.KeyCtrlY] = Simple(ActionRedo)
	ctrl[tcell.KeyCtrlR] = Simple(ActionRedo)
	ctrl[tcell.KeyCtrlN] = Simple(ActionAddEditor)
	ctrl[tcell.KeyCtrlW] = Simple(ActionCloseEditor)
	ctrl[tcell.KeyCtrlL] = Simple(ActionToggleLines)
	ctrl[tcell.KeyCtrlS] = ExecuteCommand("save")
	ctrl[tcell.KeyCtrlV] = ExecuteCommand("put")
	p.modKeymap[tcell.ModCtrl] = ctrl
}

// Bind overrides the action for a key pressed with mod (tcell.ModNone for plain keys).
func (p *InputProcessor) Bind(mod tcell.ModMask, key tcell.Key, ev ActionEvent) {
	if mod == tcell.ModNone {
		p.keymap[key] = ev
		return
	}
	if p.modKeymap[mod] == nil {
		p.modKeymap[mod] = make(Keymap)
	}
	p.modKeymap[mod][key] = ev
}

// ProcessEvent returns the action for ev. Plain runes become ActionInsertRune.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		// Terminals report Ctrl+letter as its own key, with or without ModCtrl.
		if action, ok := p.modKeymap[tcell.ModCtrl][key]; ok {
			return action
		}
	}
	if modMap, ok := p.modKeymap[mod]; ok && mod != tcell.ModNone {
		if action, ok := modMap[key]; ok {
			return action
		}
	}

	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return action
		}
	}

	if key == tcell.KeyRune && mod&(tcell.ModCtrl|tcell.ModAlt) == 0 {
		return InsertRune(ev.Rune())
	}

	return ActionEvent{Action: ActionUnknown}
}
