package render

import (
	"strconv"

	"github.com/bethropolis/jdiff/internal/state"
	"github.com/bethropolis/jdiff/internal/theme"
	"github.com/bethropolis/jdiff/internal/tui"
	"github.com/gdamore/tcell/v2"
)

const counterHint = "k/+ increment   j/- decrement   esc back"

// Counter draws the counter screen.
func Counter(s tcell.Screen, snap state.Snapshot, th *theme.Theme, width, height int) {
	if height <= 0 {
		return
	}
	value := "Count: " + strconv.Itoa(snap.Counter)
	top := height/2 - 1
	if top < 0 {
		top = 0
	}
	tui.DrawText(s, centered(width, value), top, width, value, th.GetStyle(theme.StyleCounter))
	if top+2 < height {
		tui.DrawText(s, centered(width, counterHint), top+2, width, counterHint, th.GetStyle(theme.StyleHint))
	}
}
