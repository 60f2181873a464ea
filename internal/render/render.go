// internal/render/render.go
package render

import (
	"github.com/bethropolis/jdiff/internal/config"
	"github.com/bethropolis/jdiff/internal/state"
	"github.com/bethropolis/jdiff/internal/statusbar"
	"github.com/bethropolis/jdiff/internal/theme"
	"github.com/bethropolis/jdiff/internal/types"
	"github.com/gdamore/tcell/v2"
)

// EditorHeight returns the number of text rows available to editors on a
// screen of the given height.
func EditorHeight(screenHeight int) int {
	h := screenHeight - config.StatusBarHeight - config.CommandBarHeight - config.TabBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// Frame draws one complete frame for snap. sb may be nil.
func Frame(s tcell.Screen, snap state.Snapshot, th *theme.Theme, sb *statusbar.StatusBar) {
	width, height := s.Size()
	s.SetStyle(th.GetStyle(theme.StyleDefault))
	s.Clear()
	s.HideCursor()

	contentHeight := height - config.StatusBarHeight - config.CommandBarHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	switch snap.Route {
	case state.RouteCounter:
		Counter(s, snap, th, width, contentHeight)
	case state.RouteEditor:
		Editor(s, snap, th, width, contentHeight)
	default:
		Welcome(s, th, width, contentHeight)
	}

	if sb != nil && height >= 2 {
		sb.Draw(s, width, height-2, th)
	}
	if height >= 1 {
		CommandBar(s, snap, th, width, height-1)
	}
	if x, y, ok := Cursor(snap, width, height); ok {
		s.ShowCursor(x, y)
	}
}

// Cursor returns the screen position of the terminal cursor, or false when
// it should stay hidden.
func Cursor(snap state.Snapshot, width, height int) (x, y int, ok bool) {
	if snap.Mode == types.ModeCommand {
		return commandCursor(snap), height - 1, true
	}
	if snap.Route != state.RouteEditor {
		return 0, 0, false
	}
	return editorCursor(snap, width)
}

func centered(width int, text string) int {
	x := (width - len([]rune(text))) / 2
	if x < 0 {
		return 0
	}
	return x
}
