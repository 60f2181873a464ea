package state

import "github.com/bethropolis/jdiff/internal/types"

// EditorView is a read-only copy of one editor for rendering.
type EditorView struct {
	Lines        []types.Line // Visible lines only
	Cursor       types.Position
	Visible      types.Range
	LineCount    int
	Revision     int
	Dirty        bool
	CanUndo      bool
	CanRedo      bool
	HistoryIndex int
	HistoryCount int
}

// Snapshot is a read-only copy of the whole state. It shares no memory with the live tree.
type Snapshot struct {
	Mode          types.Mode
	ShouldQuit    bool
	Status        string
	StatusSeq     int
	Route         string
	CommandInput  string
	CommandCursor int
	Counter       int
	Editors       []EditorView
	ActiveEditor  int
	MaxEditors    int
	Initialized   bool
	ResizePending bool
	LineNumbers   bool
}

// Active returns the focused editor view.
func (s Snapshot) Active() (EditorView, bool) {
	if s.ActiveEditor < 0 || s.ActiveEditor >= len(s.Editors) {
		return EditorView{}, false
	}
	return s.Editors[s.ActiveEditor], true
}

// Capture copies s into a Snapshot. counter may be nil.
func Capture(s *State, counter *Counter) Snapshot {
	if s == nil {
		return Snapshot{ShouldQuit: true}
	}
	snap := Snapshot{
		Mode:          s.App.Mode,
		ShouldQuit:    s.App.ShouldQuit,
		Status:        s.App.Status,
		StatusSeq:     s.App.StatusSeq,
		Route:         s.Router.Current(),
		CommandInput:  s.CommandBar.Input(),
		CommandCursor: s.CommandBar.Cursor(),
		ActiveEditor:  s.Editors.ActiveIndex(),
		MaxEditors:    s.Editors.Max(),
		Initialized:   s.Editors.Initialized(),
		ResizePending: s.Editors.ResizePending(),
		LineNumbers:   s.Editors.LineNumbers(),
	}
	if counter != nil {
		snap.Counter = counter.Value
	}
	for _, e := range s.Editors.Editors() {
		idx, count := e.HistoryPosition()
		snap.Editors = append(snap.Editors, EditorView{
			Lines:        e.VisibleLines(),
			Cursor:       e.Cursor(),
			Visible:      e.VisibleRange(),
			LineCount:    e.LineCount(),
			Revision:     e.Revision(),
			Dirty:        e.Dirty(),
			CanUndo:      e.CanUndo(),
			CanRedo:      e.CanRedo(),
			HistoryIndex: idx,
			HistoryCount: count,
		})
	}
	return snap
}
