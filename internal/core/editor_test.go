package core

import (
	"math/rand"
	"testing"

	"github.com/bethropolis/jdiff/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEditorWith(t *testing.T, lines ...string) *Editor {
	t.Helper()
	e := NewEditor(100)
	e.LoadLines(lines)
	return e
}

func requireNumbered(t *testing.T, e *Editor) {
	t.Helper()
	for i, l := range e.Lines() {
		require.Equal(t, i+1, l.Number)
	}
}

func TestInsertAddLineBackspaceScenario(t *testing.T) {
	e := newEditorWith(t, "awdawd")
	assert.Equal(t, types.Position{}, e.Cursor())

	require.True(t, e.InsertChar('X'))
	assert.Equal(t, []string{"Xawdawd"}, e.ExportLines())
	assert.Equal(t, types.Position{Line: 0, Col: 1}, e.Cursor())

	require.True(t, e.AddLine())
	assert.Equal(t, []string{"Xawdawd", ""}, e.ExportLines())
	assert.Equal(t, types.Position{Line: 1, Col: 0}, e.Cursor())

	require.True(t, e.Backspace())
	assert.Equal(t, []string{"Xawdawd"}, e.ExportLines())
	assert.Equal(t, types.Position{Line: 0, Col: 7}, e.Cursor())
	requireNumbered(t, e)
}

func TestViewportScenario(t *testing.T) {
	e := newEditorWith(t, "1", "2", "3", "4", "5")
	e.Resize(3)
	assert.Equal(t, 3, e.VisibleRange().Len())
	assert.Equal(t, types.Range{Start: 0, End: 3}, e.VisibleRange())

	for i := 0; i < 3; i++ {
		e.MoveCursor(types.DirDown)
		r := e.VisibleRange()
		assert.Equal(t, 3, r.Len())
		assert.LessOrEqual(t, r.End, 5)
		assert.True(t, r.Contains(e.Cursor().Line))
	}
	assert.Equal(t, types.Range{Start: 1, End: 4}, e.VisibleRange())

	e.MoveCursor(types.DirDown)
	e.MoveCursor(types.DirDown)
	assert.Equal(t, types.Range{Start: 2, End: 5}, e.VisibleRange())
	assert.Equal(t, 4, e.Cursor().Line)

	for i := 0; i < 4; i++ {
		e.MoveCursor(types.DirUp)
	}
	assert.Equal(t, types.Range{Start: 0, End: 3}, e.VisibleRange())
}

func TestViewportCoversShortBuffer(t *testing.T) {
	e := newEditorWith(t, "a", "b")
	e.Resize(10)
	assert.Equal(t, types.Range{Start: 0, End: 2}, e.VisibleRange())

	e.AddLine()
	assert.Equal(t, types.Range{Start: 0, End: 3}, e.VisibleRange())
	assert.Len(t, e.VisibleLines(), 3)
}

func TestAddLineScrollsViewport(t *testing.T) {
	e := newEditorWith(t, "a", "b")
	e.Resize(2)
	e.MoveCursor(types.DirDown)
	e.AddLine()

	assert.Equal(t, types.Range{Start: 1, End: 3}, e.VisibleRange())
	lines := e.VisibleLines()
	require.Len(t, lines, 2)
	assert.Equal(t, types.Line{Number: 2, Text: "b"}, lines[0])
	assert.Equal(t, types.Line{Number: 3, Text: ""}, lines[1])
}

func TestResizeShrinkKeepsCursorVisible(t *testing.T) {
	e := newEditorWith(t, "1", "2", "3", "4", "5", "6")
	e.Resize(6)
	for i := 0; i < 5; i++ {
		e.MoveCursor(types.DirDown)
	}
	e.Resize(2)
	assert.Equal(t, types.Range{Start: 4, End: 6}, e.VisibleRange())

	e.Resize(0)
	assert.Equal(t, types.Range{Start: 0, End: 6}, e.VisibleRange())
}

func TestMoveRightClampsAtLineLength(t *testing.T) {
	line := "héllo"
	e := newEditorWith(t, line)
	n := len([]rune(line))
	for i := 0; i < n+5; i++ {
		e.MoveCursor(types.DirRight)
		assert.LessOrEqual(t, e.Cursor().Col, n)
	}
	assert.Equal(t, n, e.Cursor().Col)
}

func TestMoveClampsColumnOnRowChange(t *testing.T) {
	e := newEditorWith(t, "long line", "ab")
	for i := 0; i < 6; i++ {
		e.MoveCursor(types.DirRight)
	}
	e.MoveCursor(types.DirDown)
	assert.Equal(t, types.Position{Line: 1, Col: 2}, e.Cursor())

	assert.False(t, e.MoveCursor(types.DirDown), "already on last row")
	e.MoveCursor(types.DirLeft)
	e.MoveCursor(types.DirLeft)
	assert.False(t, e.MoveCursor(types.DirLeft))
	e.MoveCursor(types.DirUp)
	assert.False(t, e.MoveCursor(types.DirUp))
}

func TestDeleteLineOnFirstRowIsNoop(t *testing.T) {
	e := newEditorWith(t, "abc")
	assert.False(t, e.DeleteLine())
	assert.False(t, e.Backspace())
	assert.False(t, e.CanUndo(), "no-ops do not record history")
}

func TestUndoRedoRoundTrip(t *testing.T) {
	ops := []struct {
		name string
		op   func(e *Editor) bool
	}{
		{"insert", func(e *Editor) bool { return e.InsertChar('z') }},
		{"add line", func(e *Editor) bool { return e.AddLine() }},
		{"backspace", func(e *Editor) bool { return e.Backspace() }},
		{"paste", func(e *Editor) bool { return e.InsertText("p\nq") }},
	}

	for _, tt := range ops {
		t.Run(tt.name, func(t *testing.T) {
			e := newEditorWith(t, "first", "second")
			e.MoveCursor(types.DirDown)
			e.MoveCursor(types.DirRight)

			beforeLines, beforeCursor := e.ExportLines(), e.Cursor()
			require.True(t, tt.op(e))
			afterLines, afterCursor := e.ExportLines(), e.Cursor()

			require.True(t, e.Undo())
			assert.Equal(t, beforeLines, e.ExportLines())
			assert.Equal(t, beforeCursor, e.Cursor())

			require.True(t, e.Redo())
			assert.Equal(t, afterLines, e.ExportLines())
			assert.Equal(t, afterCursor, e.Cursor())
		})
	}
}

func TestUndoRedoAcrossCursorMoves(t *testing.T) {
	e := NewEditor(100)
	require.True(t, e.InsertChar('a'))
	afterFirst := e.Cursor()

	require.True(t, e.MoveCursor(types.DirLeft))
	moved := e.Cursor()
	require.True(t, e.InsertChar('b'))
	afterSecond := e.Cursor()
	assert.Equal(t, []string{"ba"}, e.ExportLines())

	require.True(t, e.Undo())
	assert.Equal(t, []string{"a"}, e.ExportLines())
	assert.Equal(t, moved, e.Cursor(), "undo returns to where the edit was made")

	require.True(t, e.Undo())
	assert.Equal(t, []string{""}, e.ExportLines())
	assert.Equal(t, types.Position{}, e.Cursor())

	require.True(t, e.Redo())
	assert.Equal(t, []string{"a"}, e.ExportLines())
	assert.Equal(t, afterFirst, e.Cursor(), "redo restores the cursor the edit left behind")

	require.True(t, e.Redo())
	assert.Equal(t, []string{"ba"}, e.ExportLines())
	assert.Equal(t, afterSecond, e.Cursor())
}

func TestEditAfterUndoDiscardsRedo(t *testing.T) {
	e := newEditorWith(t, "")
	e.InsertChar('a')
	e.InsertChar('b')
	e.Undo()
	e.InsertChar('c')

	assert.False(t, e.Redo())
	assert.Equal(t, []string{"ac"}, e.ExportLines())
}

func TestUndoFloorIsLoadedContent(t *testing.T) {
	e := NewEditor(100)
	e.InsertChar('a')
	require.True(t, e.Undo())
	assert.Equal(t, []string{""}, e.ExportLines())
	assert.False(t, e.Undo())

	e.LoadLines([]string{"loaded"})
	assert.False(t, e.CanUndo())
	assert.False(t, e.Dirty())
}

func TestUndoAfterResizeKeepsCurrentHeight(t *testing.T) {
	e := newEditorWith(t, "1", "2", "3", "4")
	e.Resize(4)
	e.AddLine()
	e.Resize(2)

	require.True(t, e.Undo())
	assert.Equal(t, 2, e.Height())
	assert.Equal(t, 2, e.VisibleRange().Len())
	assert.True(t, e.VisibleRange().Contains(e.Cursor().Line))
}

func TestDirtyTracking(t *testing.T) {
	e := newEditorWith(t, "x")
	assert.False(t, e.Dirty())
	e.InsertChar('y')
	assert.True(t, e.Dirty())
	e.MarkSaved()
	assert.False(t, e.Dirty())
	e.Undo()
	assert.True(t, e.Dirty())
}

func TestRandomEditsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	e := NewEditor(20)
	e.Resize(4)

	for i := 0; i < 2000; i++ {
		switch rng.Intn(9) {
		case 0, 1:
			e.InsertChar(rune('a' + rng.Intn(26)))
		case 2:
			e.AddLine()
		case 3:
			e.DeleteLine()
		case 4:
			e.Backspace()
		case 5:
			e.MoveCursor(types.Direction(1 + rng.Intn(4)))
		case 6:
			e.Undo()
		case 7:
			e.Redo()
		case 8:
			e.Resize(rng.Intn(6))
		}

		lines := e.Lines()
		for j, l := range lines {
			require.Equal(t, j+1, l.Number)
		}
		c := e.Cursor()
		require.True(t, c.Line >= 0 && c.Line < len(lines))
		require.True(t, c.Col >= 0 && c.Col <= len([]rune(lines[c.Line].Text)))

		r := e.VisibleRange()
		if e.Height() == 0 || len(lines) <= e.Height() {
			require.Equal(t, types.Range{Start: 0, End: len(lines)}, r)
		} else {
			require.Equal(t, e.Height(), r.Len())
			require.True(t, r.Contains(c.Line))
		}
	}
}
