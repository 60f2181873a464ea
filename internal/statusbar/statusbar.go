// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/jdiff/internal/config"
	"github.com/bethropolis/jdiff/internal/event"
	"github.com/bethropolis/jdiff/internal/state"
	"github.com/bethropolis/jdiff/internal/theme"
	"github.com/bethropolis/jdiff/internal/tui"
	"github.com/bethropolis/jdiff/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{MessageTimeout: config.MessageTimeout}
}

// StatusBar is the status line. Its fields are updated from event handlers
// on the state owner and read by the renderer, hence the mutex.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	mode      types.Mode
	route     string
	cursorPos types.Position
	editor    int
	editors   int
	modified  bool
	project   string

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(cfg Config) *StatusBar {
	if cfg.MessageTimeout <= 0 {
		cfg.MessageTimeout = config.MessageTimeout
	}
	return &StatusBar{config: cfg, now: time.Now, route: state.RouteWelcome}
}

// Subscribe keeps the bar current from the event bus.
func (sb *StatusBar) Subscribe(events *event.Manager) {
	events.Subscribe(event.TypeModeChanged, func(e event.Event) bool {
		if data, ok := e.Data.(event.ModeChangedData); ok {
			sb.SetEditorMode(data.New)
		}
		return false
	})
	events.Subscribe(event.TypeRouteChanged, func(e event.Event) bool {
		if data, ok := e.Data.(event.RouteChangedData); ok {
			sb.mu.Lock()
			sb.route = data.New
			sb.mu.Unlock()
		}
		return false
	})
	events.Subscribe(event.TypeCursorMoved, func(e event.Event) bool {
		if data, ok := e.Data.(event.CursorMovedData); ok {
			sb.SetCursorInfo(data.NewPosition)
		}
		return false
	})
	events.Subscribe(event.TypeStatusMessage, func(e event.Event) bool {
		if data, ok := e.Data.(event.StatusMessageData); ok {
			sb.SetTemporaryMessage("%s", data.Text)
		}
		return false
	})
	events.Subscribe(event.TypeProjectChanged, func(e event.Event) bool {
		if data, ok := e.Data.(event.ProjectChangedData); ok {
			sb.SetProject(data.Name)
		}
		return false
	})
	events.Subscribe(event.TypeBufferSaved, func(e event.Event) bool {
		if data, ok := e.Data.(event.BufferSavedData); ok {
			sb.mu.Lock()
			sb.project = data.Project
			sb.modified = false
			sb.mu.Unlock()
		}
		return false
	})
	events.Subscribe(event.TypeBufferLoaded, func(e event.Event) bool {
		if data, ok := e.Data.(event.BufferLoadedData); ok {
			sb.mu.Lock()
			sb.project = data.Project
			sb.modified = false
			sb.mu.Unlock()
		}
		return false
	})
}

// Sync copies the fields a snapshot knows authoritatively.
func (sb *StatusBar) Sync(snap state.Snapshot) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.mode = snap.Mode
	sb.route = snap.Route
	sb.editor = snap.ActiveEditor
	sb.editors = len(snap.Editors)
	if active, ok := snap.Active(); ok {
		sb.cursorPos = active.Cursor
		sb.modified = active.Dirty
	}
}

// SetProject sets the project name shown.
func (sb *StatusBar) SetProject(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.project = name
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetEditorMode updates the displayed mode.
func (sb *StatusBar) SetEditorMode(mode types.Mode) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.mode = mode
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Message returns the active temporary message, expiring it when due.
func (sb *StatusBar) Message() (string, bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if sb.tempMessageTime.IsZero() {
		return "", false
	}
	if sb.now().Sub(sb.tempMessageTime) > sb.config.MessageTimeout {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
		return "", false
	}
	return sb.tempMessage, true
}

// Text returns the default status line, without the mode block.
func (sb *StatusBar) Text() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	text := sb.route
	if sb.project != "" {
		text = fmt.Sprintf("%s [%s]", text, sb.project)
	}
	if sb.route == state.RouteEditor {
		modifiedIndicator := ""
		if sb.modified {
			modifiedIndicator = " [Modified]"
		}
		text = fmt.Sprintf("%s -- Editor %d/%d%s -- Line: %d, Col: %d",
			text, sb.editor+1, sb.editors, modifiedIndicator, sb.cursorPos.Line+1, sb.cursorPos.Col+1)
	}
	return text
}

// Draw renders the status bar on row y.
func (sb *StatusBar) Draw(screen tcell.Screen, width, y int, th *theme.Theme) {
	if width <= 0 || y < 0 {
		return
	}
	barStyle := th.GetStyle(theme.StyleStatusBar)
	tui.Fill(screen, 0, y, width, 1, barStyle)

	sb.mu.RLock()
	mode, modified := sb.mode, sb.modified
	sb.mu.RUnlock()

	x := tui.DrawText(screen, 0, y, width, fmt.Sprintf(" %s ", mode), th.GetStyle(theme.StyleStatusBarMode))
	x += tui.DrawText(screen, x, y, width-x, " ", barStyle)

	if msg, ok := sb.Message(); ok {
		tui.DrawText(screen, x, y, width-x, msg, th.GetStyle(theme.StyleStatusBarMessage))
		return
	}
	style := barStyle
	if modified {
		style = th.GetStyle(theme.StyleStatusBarModified)
	}
	tui.DrawText(screen, x, y, width-x, sb.Text(), style)
}
