package core

import "github.com/bethropolis/jdiff/internal/types"

// Resize sets the viewport height and recomputes the visible range.
func (e *Editor) Resize(height int) {
	if height < 0 {
		height = 0
	}
	e.height = height
	e.syncViewport()
}

// syncViewport restores the viewport invariants: the range spans exactly
// height rows, or the whole buffer when it is shorter, and contains the cursor.
func (e *Editor) syncViewport() {
	n := e.buffer.LineCount()
	if e.height <= 0 || n <= e.height {
		e.visible = types.Range{Start: 0, End: n}
		return
	}

	start := e.visible.Start
	if start > n-e.height {
		start = n - e.height
	}
	if e.cursor.Line < start {
		start = e.cursor.Line
	}
	if e.cursor.Line >= start+e.height {
		start = e.cursor.Line - e.height + 1
	}
	if start < 0 {
		start = 0
	}
	e.visible = types.Range{Start: start, End: start + e.height}
}

// clampCursor pulls the cursor back inside the buffer.
func (e *Editor) clampCursor() {
	n := e.buffer.LineCount()
	if e.cursor.Line >= n {
		e.cursor.Line = n - 1
	}
	if e.cursor.Line < 0 {
		e.cursor.Line = 0
	}
	if e.cursor.Col < 0 {
		e.cursor.Col = 0
	}
	if limit := e.buffer.RuneCount(e.cursor.Line); e.cursor.Col > limit {
		e.cursor.Col = limit
	}
}

// MoveCursor moves the cursor one step in dir, clamped to the buffer.
// Up and Down clamp the column to the new row's length. It reports whether the cursor moved.
func (e *Editor) MoveCursor(dir types.Direction) bool {
	before := e.cursor
	switch dir {
	case types.DirLeft:
		e.cursor.Col--
	case types.DirRight:
		e.cursor.Col++
	case types.DirUp:
		e.cursor.Line--
	case types.DirDown:
		e.cursor.Line++
	default:
		return false
	}
	e.clampCursor()
	e.syncViewport()
	return e.cursor != before
}
