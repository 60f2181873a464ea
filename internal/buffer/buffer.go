// internal/buffer/buffer.go
package buffer

import (
	"errors"

	"github.com/bethropolis/jdiff/internal/types"
)

// ErrOutOfBounds is returned when a position does not address an existing row or column.
var ErrOutOfBounds = errors.New("buffer: position out of bounds")

// Buffer is an in-memory sequence of numbered lines.
type Buffer interface {
	Lines() []types.Line
	Line(row int) (types.Line, error)
	LineCount() int
	RuneCount(row int) int
	InsertRune(pos types.Position, r rune) (types.EditInfo, error)
	InsertText(pos types.Position, text string) (types.EditInfo, error)
	DeleteRuneBefore(pos types.Position) (types.EditInfo, error)
	InsertLineAfter(row int) (types.EditInfo, error)
	MergeWithPrevious(row int) (types.EditInfo, error)
	Load(lines []string)
	Strings() []string
	Bytes() []byte
	IsModified() bool
	MarkSaved()
}
