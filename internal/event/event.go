// internal/event/event.go
package event

import "github.com/bethropolis/jdiff/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Editor content and cursor
	TypeBufferModified // Content of an editor changed, undo/redo included
	TypeBufferLoaded   // An editor was loaded from storage
	TypeBufferSaved    // An editor was written to storage
	TypeCursorMoved

	// Application state
	TypeModeChanged
	TypeRouteChanged
	TypeStatusMessage
	TypeProjectChanged

	// Lifecycle
	TypeAppReady
	TypeAppQuit

	TypeThemeChanged
)

func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "BufferModified"
	case TypeBufferLoaded:
		return "BufferLoaded"
	case TypeBufferSaved:
		return "BufferSaved"
	case TypeCursorMoved:
		return "CursorMoved"
	case TypeModeChanged:
		return "ModeChanged"
	case TypeRouteChanged:
		return "RouteChanged"
	case TypeStatusMessage:
		return "StatusMessage"
	case TypeProjectChanged:
		return "ProjectChanged"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	case TypeThemeChanged:
		return "ThemeChanged"
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData identifies the editor whose content changed.
type BufferModifiedData struct {
	Editor    int // Index in the editor container
	Revision  int
	LineCount int
}

// BufferLoadedData names the project an editor was loaded from.
type BufferLoadedData struct {
	Project string
	Lines   int
}

// BufferSavedData names the project an editor was saved to.
type BufferSavedData struct {
	Project string
	Bytes   int
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	Editor      int
	NewPosition types.Position
}

// ModeChangedData carries the old and new mode.
type ModeChangedData struct {
	Old types.Mode
	New types.Mode
}

// RouteChangedData carries the old and new route.
type RouteChangedData struct {
	Old string
	New string
}

// StatusMessageData is a one-line message for the status bar.
type StatusMessageData struct {
	Text string
}

// ProjectChangedData names the project commands now operate on.
type ProjectChangedData struct {
	Name string
}

// ThemeChangedData names the new theme.
type ThemeChangedData struct {
	Name string
}
