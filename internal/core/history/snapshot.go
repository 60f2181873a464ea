// Package history provides bounded undo/redo over editor snapshots.
package history

import "github.com/bethropolis/jdiff/internal/types"

// Snapshot is the editor state recorded after a committed edit, plus where
// the cursor and viewport were just before that edit.
type Snapshot struct {
	Lines   []string
	Cursor  types.Position
	Height  int         // Viewport height when the snapshot was taken
	Visible types.Range // Visible rows when the snapshot was taken

	Before        types.Position // Cursor before the edit
	BeforeVisible types.Range    // Visible rows before the edit
}

// Clone returns a deep copy so stored entries never alias live editor data.
func (s Snapshot) Clone() Snapshot {
	lines := make([]string, len(s.Lines))
	copy(lines, s.Lines)
	s.Lines = lines
	return s
}
