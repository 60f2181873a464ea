// internal/types/edit.go
package types

// EditKind classifies a committed buffer edit.
type EditKind int

const (
	EditInsert EditKind = iota
	EditDelete
	EditSplit
	EditMerge
	EditReplace
)

func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditDelete:
		return "delete"
	case EditSplit:
		return "split"
	case EditMerge:
		return "merge"
	case EditReplace:
		return "replace"
	}
	return "unknown"
}

// EditInfo describes what a buffer mutation touched.
type EditInfo struct {
	Kind       EditKind
	Start      Position // First position affected
	End        Position // Cursor position after the edit
	LinesDelta int      // Change in line count
}
