package render

import (
	"github.com/bethropolis/jdiff/internal/theme"
	"github.com/bethropolis/jdiff/internal/tui"
	"github.com/gdamore/tcell/v2"
)

const welcomeTitle = "jdiff"

var welcomeHints = []string{
	"e, n  open the editor",
	"c     open the counter",
	":     enter a command",
	"q     quit",
}

// Welcome draws the landing screen.
func Welcome(s tcell.Screen, th *theme.Theme, width, height int) {
	rows := len(welcomeHints) + 2
	top := (height - rows) / 2
	if top < 0 {
		top = 0
	}

	if top < height {
		tui.DrawText(s, centered(width, welcomeTitle), top, width, welcomeTitle, th.GetStyle(theme.StyleTitle))
	}
	hintStyle := th.GetStyle(theme.StyleHint)
	left := centered(width, welcomeHints[0])
	for i, hint := range welcomeHints {
		y := top + 2 + i
		if y >= height {
			break
		}
		tui.DrawText(s, left, y, width-left, hint, hintStyle)
	}
}
