package render

import (
	"fmt"
	"strconv"

	"github.com/bethropolis/jdiff/internal/config"
	"github.com/bethropolis/jdiff/internal/state"
	"github.com/bethropolis/jdiff/internal/theme"
	"github.com/bethropolis/jdiff/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// Editor draws the tab bar and the focused editor's visible rows.
func Editor(s tcell.Screen, snap state.Snapshot, th *theme.Theme, width, height int) {
	if height <= 0 {
		return
	}
	Tabs(s, snap, th, width, 0)

	view, ok := snap.Active()
	if !ok {
		return
	}
	gutter := gutterWidth(snap, view)
	textStyle := th.GetStyle(theme.StyleDefault)
	for i, line := range view.Lines {
		y := config.TabBarHeight + i
		if y >= height {
			break
		}
		if gutter > 0 {
			style := th.GetStyle(theme.StyleLineNumber)
			if line.Number-1 == view.Cursor.Line {
				style = th.GetStyle(theme.StyleLineNumberActive)
			}
			num := fmt.Sprintf("%*d ", gutter-1, line.Number)
			tui.DrawText(s, 0, y, gutter, num, style)
		}
		tui.DrawText(s, gutter, y, width-gutter, line.Text, textStyle)
	}
}

// Tabs draws one label per editor on row y, highlighting the focused one.
func Tabs(s tcell.Screen, snap state.Snapshot, th *theme.Theme, width, y int) {
	tabStyle := th.GetStyle(theme.StyleTab)
	tui.Fill(s, 0, y, width, 1, tabStyle)

	x := 0
	for i, view := range snap.Editors {
		label := " " + strconv.Itoa(i+1) + " "
		if view.Dirty {
			label = " " + strconv.Itoa(i+1) + "* "
		}
		style := tabStyle
		if i == snap.ActiveEditor {
			style = th.GetStyle(theme.StyleTabActive)
		}
		x += tui.DrawText(s, x, y, width-x, label, style)
		if x >= width {
			return
		}
	}
}

// gutterWidth is zero when line numbers are off, otherwise the digits of the
// largest line number plus one space.
func gutterWidth(snap state.Snapshot, view state.EditorView) int {
	if !snap.LineNumbers {
		return 0
	}
	digits := len(strconv.Itoa(view.LineCount))
	if digits < 2 {
		digits = 2
	}
	return digits + 1
}

func editorCursor(snap state.Snapshot, width int) (x, y int, ok bool) {
	view, ok := snap.Active()
	if !ok || !view.Visible.Contains(view.Cursor.Line) {
		return 0, 0, false
	}
	row := view.Cursor.Line - view.Visible.Start
	if row >= len(view.Lines) {
		return 0, 0, false
	}
	x = gutterWidth(snap, view) + tui.VisualColumn(view.Lines[row].Text, view.Cursor.Col)
	if x >= width {
		x = width - 1
	}
	return x, config.TabBarHeight + row, true
}
