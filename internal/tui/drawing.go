// internal/tui/drawing.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// TabWidth is the distance between tab stops.
const TabWidth = 4

// VisualColumn returns the screen column of the rune at runeIndex, counting
// grapheme widths and tab stops.
func VisualColumn(line string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	visualWidth := 0
	currentRuneIndex := 0

	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		if currentRuneIndex >= runeIndex {
			break
		}
		runes := gr.Runes()
		visualWidth += clusterWidth(runes, gr.Width(), visualWidth)
		currentRuneIndex += len(runes)
	}
	return visualWidth
}

// TextWidth returns the number of cells text occupies.
func TextWidth(text string) int {
	return VisualColumn(text, len([]rune(text)))
}

// DrawText draws text at (x, y), clipped to maxWidth cells. It returns the
// number of cells drawn.
func DrawText(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	currentX := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		width := clusterWidth(runes, gr.Width(), currentX)
		if currentX+width > maxWidth {
			break
		}

		if runes[0] == '\t' {
			for i := 0; i < width; i++ {
				s.SetContent(x+currentX+i, y, ' ', nil, style)
			}
		} else {
			s.SetContent(x+currentX, y, runes[0], runes[1:], style)
			// Wide clusters occupy the following cells too.
			for cw := 1; cw < width; cw++ {
				s.SetContent(x+currentX+cw, y, ' ', nil, style)
			}
		}
		currentX += width
	}
	return currentX
}

// Fill paints a w by h rectangle with blanks in style.
func Fill(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}
}

func clusterWidth(runes []rune, width, column int) int {
	if len(runes) > 0 && runes[0] == '\t' {
		return TabWidth - column%TabWidth
	}
	return width
}
