package core

import (
	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/bethropolis/jdiff/internal/types"
)

// InsertChar inserts r at the cursor and advances the column.
func (e *Editor) InsertChar(r rune) bool {
	m := e.mark()
	info, err := e.buffer.InsertRune(e.cursor, r)
	if err != nil {
		logger.Debugf("Editor.InsertChar: %v", err)
		return false
	}
	e.cursor = info.End
	e.commit(info, m)
	return true
}

// InsertText inserts text at the cursor, splitting rows on newlines, as one undo step.
func (e *Editor) InsertText(text string) bool {
	if text == "" {
		return false
	}
	m := e.mark()
	info, err := e.buffer.InsertText(e.cursor, text)
	if err != nil {
		logger.Debugf("Editor.InsertText: %v", err)
		return false
	}
	e.cursor = info.End
	e.commit(info, m)
	return true
}

// AddLine opens an empty row below the cursor's row and moves to its start.
func (e *Editor) AddLine() bool {
	m := e.mark()
	info, err := e.buffer.InsertLineAfter(e.cursor.Line)
	if err != nil {
		logger.Debugf("Editor.AddLine: %v", err)
		return false
	}
	e.cursor = types.Position{Line: e.cursor.Line + 1, Col: 0}
	e.commit(info, m)
	return true
}

// DeleteLine merges the cursor's row into the previous one. No-op on the first row.
// The cursor lands where the merged text begins.
func (e *Editor) DeleteLine() bool {
	if e.cursor.Line == 0 {
		return false
	}
	m := e.mark()
	info, err := e.buffer.MergeWithPrevious(e.cursor.Line)
	if err != nil {
		logger.Debugf("Editor.DeleteLine: %v", err)
		return false
	}
	e.cursor = info.End
	e.commit(info, m)
	return true
}

// Backspace removes the rune left of the cursor, or merges with the previous row at column 0.
func (e *Editor) Backspace() bool {
	if e.cursor.Col == 0 {
		return e.DeleteLine()
	}
	m := e.mark()
	info, err := e.buffer.DeleteRuneBefore(e.cursor)
	if err != nil {
		logger.Debugf("Editor.Backspace: %v", err)
		return false
	}
	e.cursor = info.End
	e.commit(info, m)
	return true
}

// Undo restores the state before the last committed edit.
func (e *Editor) Undo() bool {
	s, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.restore(s)
	return true
}

// Redo re-applies the last undone edit.
func (e *Editor) Redo() bool {
	s, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.restore(s)
	return true
}
