// internal/core/editor.go
package core

import (
	"github.com/bethropolis/jdiff/internal/buffer"
	"github.com/bethropolis/jdiff/internal/core/history"
	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/bethropolis/jdiff/internal/types"
)

// Editor is one editable buffer with its cursor, viewport and undo history.
//
// Every mutating operation applies the edit, re-syncs the viewport and
// records a history snapshot before returning. Operations that would leave
// the buffer or cursor out of bounds are no-ops and report false.
type Editor struct {
	buffer  buffer.Buffer
	cursor  types.Position
	height  int         // Rows available for text. 0 until the first resize.
	visible types.Range // Half-open range of rows eligible for rendering
	history *history.Manager

	revision      int // Bumped on every content change, undo and redo included
	savedRevision int
}

// NewEditor creates an editor holding a single empty line.
func NewEditor(historyLimit int) *Editor {
	e := &Editor{buffer: buffer.NewLineBuffer()}
	e.syncViewport()
	e.history = history.NewManager(e.snapshot(), historyLimit)
	return e
}

// Cursor returns the cursor in buffer coordinates.
func (e *Editor) Cursor() types.Position {
	return e.cursor
}

// VisibleRange returns the rows currently eligible for rendering.
func (e *Editor) VisibleRange() types.Range {
	return e.visible
}

// Height returns the viewport height.
func (e *Editor) Height() int {
	return e.height
}

// LineCount returns the number of rows in the buffer.
func (e *Editor) LineCount() int {
	return e.buffer.LineCount()
}

// Lines returns every row.
func (e *Editor) Lines() []types.Line {
	return e.buffer.Lines()
}

// VisibleLines returns the rows inside the viewport.
func (e *Editor) VisibleLines() []types.Line {
	lines := e.buffer.Lines()
	return lines[e.visible.Start:e.visible.End]
}

// ExportLines returns the plain text of every row.
func (e *Editor) ExportLines() []string {
	return e.buffer.Strings()
}

// LoadLines replaces the content, moves the cursor home and starts a fresh
// history with the loaded content as its base.
func (e *Editor) LoadLines(lines []string) {
	e.buffer.Load(lines)
	e.cursor = types.Position{}
	e.visible = types.Range{}
	e.syncViewport()
	e.history.Reset(e.snapshot())
	e.revision++
	e.savedRevision = e.revision
	logger.DebugTagf("editor", "Editor: loaded %d lines", e.buffer.LineCount())
}

// Revision increases every time the content changes.
func (e *Editor) Revision() int {
	return e.revision
}

// Dirty reports whether the content changed since the last LoadLines or MarkSaved.
func (e *Editor) Dirty() bool {
	return e.revision != e.savedRevision
}

// MarkSaved records the current content as persisted.
func (e *Editor) MarkSaved() {
	e.savedRevision = e.revision
	e.buffer.MarkSaved()
}

// CanUndo reports whether Undo would change anything.
func (e *Editor) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo reports whether Redo would change anything.
func (e *Editor) CanRedo() bool {
	return e.history.CanRedo()
}

// HistoryPosition returns the history index and entry count.
func (e *Editor) HistoryPosition() (index, count int) {
	return e.history.Position()
}

func (e *Editor) snapshot() history.Snapshot {
	return history.Snapshot{
		Lines:   e.buffer.Strings(),
		Cursor:  e.cursor,
		Height:  e.height,
		Visible: e.visible,
	}
}

// editMark is the cursor and viewport at the start of a mutating operation.
type editMark struct {
	cursor  types.Position
	visible types.Range
}

func (e *Editor) mark() editMark {
	return editMark{cursor: e.cursor, visible: e.visible}
}

// commit finishes a mutating operation that started at m.
func (e *Editor) commit(info types.EditInfo, m editMark) {
	e.revision++
	e.syncViewport()
	s := e.snapshot()
	s.Before = m.cursor
	s.BeforeVisible = m.visible
	e.history.Backup(s)
	logger.DebugTagf("editor", "Editor: %s at %v, cursor %v, visible %v", info.Kind, info.Start, e.cursor, e.visible)
}

// restore applies a history snapshot. The stored visible range is reused
// only if the viewport has not been resized since it was recorded.
func (e *Editor) restore(s history.Snapshot) {
	e.buffer.Load(s.Lines)
	e.cursor = s.Cursor
	e.clampCursor()
	if s.Height == e.height {
		e.visible = s.Visible
	}
	e.revision++
	e.syncViewport()
}
