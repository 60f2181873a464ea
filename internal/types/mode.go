package types

// Mode is the application's input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeEditing:
		return "EDITING"
	case ModeCommand:
		return "COMMAND"
	}
	return "UNKNOWN"
}

// Direction is a cursor movement or focus direction.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
	DirNext
	DirPrev
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirNext:
		return "next"
	case DirPrev:
		return "prev"
	}
	return "none"
}
