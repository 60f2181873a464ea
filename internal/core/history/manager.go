package history

import (
	"sync"

	"github.com/bethropolis/jdiff/internal/logger"
)

// DefaultMaxHistory is the default number of retained snapshots, the base included.
const DefaultMaxHistory = 100

// Manager is a linear undo/redo stack of snapshots.
//
// Entry 0 is the base snapshot (the state before any edit) and is never
// evicted. currentIndex always points at the entry matching the editor's
// current state, so Undo restores currentIndex-1 and Redo currentIndex+1.
type Manager struct {
	entries      []Snapshot
	currentIndex int
	maxHistory   int
	mutex        sync.Mutex
}

// NewManager creates a history whose base entry is base.
// maxHistory below 2 falls back to DefaultMaxHistory.
func NewManager(base Snapshot, maxHistory int) *Manager {
	if maxHistory < 2 {
		maxHistory = DefaultMaxHistory
	}
	m := &Manager{maxHistory: maxHistory}
	m.Reset(base)
	return m
}

// Reset discards all entries and installs base as the new floor.
func (m *Manager) Reset(base Snapshot) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.entries = append(make([]Snapshot, 0, 16), base.Clone())
	m.currentIndex = 0
	logger.DebugTagf("history", "History: reset")
}

// Backup records s as the newest entry. Redo entries past the current index are discarded.
func (m *Manager) Backup(s Snapshot) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.entries = append(m.entries[:m.currentIndex+1], s.Clone())

	// Evict the oldest edit, never the base.
	if len(m.entries) > m.maxHistory {
		m.entries = append(m.entries[:1], m.entries[2:]...)
	}
	m.currentIndex = len(m.entries) - 1

	logger.DebugTagf("history", "History: backup. Index: %d, Count: %d", m.currentIndex, len(m.entries))
}

// Undo steps back one entry. It returns the previous entry's lines with the
// cursor and viewport recorded before the undone edit. Stored entries are
// never modified. ok is false when already at the base.
func (m *Manager) Undo() (Snapshot, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex == 0 {
		logger.DebugTagf("history", "History: nothing to undo")
		return Snapshot{}, false
	}
	undone := m.entries[m.currentIndex]
	m.currentIndex--
	logger.DebugTagf("history", "History: undo to %d", m.currentIndex)

	s := m.entries[m.currentIndex].Clone()
	s.Cursor = undone.Before
	s.Height = undone.Height
	s.Visible = undone.BeforeVisible
	return s, true
}

// Redo steps forward one entry and returns it as recorded. ok is false at the newest entry.
func (m *Manager) Redo() (Snapshot, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex >= len(m.entries)-1 {
		logger.DebugTagf("history", "History: nothing to redo")
		return Snapshot{}, false
	}
	m.currentIndex++
	logger.DebugTagf("history", "History: redo to %d", m.currentIndex)
	return m.entries[m.currentIndex].Clone(), true
}

// CanUndo returns true if there are changes that can be undone.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex > 0
}

// CanRedo returns true if there are changes that can be redone.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex < len(m.entries)-1
}

// Position returns the current index and the number of entries.
func (m *Manager) Position() (index, count int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex, len(m.entries)
}
