package render

import (
	"github.com/bethropolis/jdiff/internal/state"
	"github.com/bethropolis/jdiff/internal/theme"
	"github.com/bethropolis/jdiff/internal/tui"
	"github.com/bethropolis/jdiff/internal/types"
	"github.com/gdamore/tcell/v2"
)

// CommandBar draws the command line on row y. It stays blank outside command mode.
func CommandBar(s tcell.Screen, snap state.Snapshot, th *theme.Theme, width, y int) {
	style := th.GetStyle(theme.StyleCommandBar)
	tui.Fill(s, 0, y, width, 1, style)
	if snap.Mode != types.ModeCommand {
		return
	}
	tui.DrawText(s, 0, y, width, snap.CommandInput, style)
}

func commandCursor(snap state.Snapshot) int {
	return tui.VisualColumn(snap.CommandInput, snap.CommandCursor)
}
