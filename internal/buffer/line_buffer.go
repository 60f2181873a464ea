// internal/buffer/line_buffer.go
package buffer

import (
	"fmt"
	"strings"

	"github.com/bethropolis/jdiff/internal/types"
)

// LineBuffer keeps lines as numbered text rows. Line numbers are kept
// contiguous and 1-based after every mutation.
type LineBuffer struct {
	lines    []types.Line
	modified bool
}

// NewLineBuffer creates a buffer holding lines, or a single empty line when none are given.
func NewLineBuffer(lines ...string) *LineBuffer {
	lb := &LineBuffer{}
	lb.Load(lines)
	return lb
}

// Load replaces the content. An empty slice yields one empty line.
func (lb *LineBuffer) Load(lines []string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	lb.lines = make([]types.Line, len(lines))
	for i, text := range lines {
		lb.lines[i] = types.Line{Number: i + 1, Text: text}
	}
	lb.modified = false
}

// Lines returns a copy of all rows.
func (lb *LineBuffer) Lines() []types.Line {
	out := make([]types.Line, len(lb.lines))
	copy(out, lb.lines)
	return out
}

// Line returns one row.
func (lb *LineBuffer) Line(row int) (types.Line, error) {
	if row < 0 || row >= len(lb.lines) {
		return types.Line{}, fmt.Errorf("%w: row %d of %d", ErrOutOfBounds, row, len(lb.lines))
	}
	return lb.lines[row], nil
}

// LineCount returns the number of rows. Always at least 1.
func (lb *LineBuffer) LineCount() int {
	return len(lb.lines)
}

// RuneCount returns the length of row in runes, or 0 for an invalid row.
func (lb *LineBuffer) RuneCount(row int) int {
	if row < 0 || row >= len(lb.lines) {
		return 0
	}
	return len([]rune(lb.lines[row].Text))
}

// Strings exports the text of every row.
func (lb *LineBuffer) Strings() []string {
	out := make([]string, len(lb.lines))
	for i, l := range lb.lines {
		out[i] = l.Text
	}
	return out
}

// Bytes returns the content joined with newlines.
func (lb *LineBuffer) Bytes() []byte {
	return []byte(strings.Join(lb.Strings(), "\n"))
}

// IsModified reports whether the buffer changed since Load or MarkSaved.
func (lb *LineBuffer) IsModified() bool {
	return lb.modified
}

// MarkSaved clears the modified flag.
func (lb *LineBuffer) MarkSaved() {
	lb.modified = false
}

func (lb *LineBuffer) validatePosition(pos types.Position) ([]rune, error) {
	if pos.Line < 0 || pos.Line >= len(lb.lines) {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfBounds, pos.Line, len(lb.lines))
	}
	runes := []rune(lb.lines[pos.Line].Text)
	if pos.Col < 0 || pos.Col > len(runes) {
		return nil, fmt.Errorf("%w: column %d of %d on row %d", ErrOutOfBounds, pos.Col, len(runes), pos.Line)
	}
	return runes, nil
}

// renumber restores Number == index+1 from row onwards.
func (lb *LineBuffer) renumber(from int) {
	for i := from; i < len(lb.lines); i++ {
		lb.lines[i].Number = i + 1
	}
}

// InsertRune inserts r before column pos.Col on row pos.Line.
func (lb *LineBuffer) InsertRune(pos types.Position, r rune) (types.EditInfo, error) {
	runes, err := lb.validatePosition(pos)
	if err != nil {
		return types.EditInfo{}, err
	}
	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:pos.Col]...)
	out = append(out, r)
	out = append(out, runes[pos.Col:]...)
	lb.lines[pos.Line].Text = string(out)
	lb.modified = true

	return types.EditInfo{
		Kind:  types.EditInsert,
		Start: pos,
		End:   types.Position{Line: pos.Line, Col: pos.Col + 1},
	}, nil
}

// InsertText inserts text at pos. Newlines in text create new rows.
func (lb *LineBuffer) InsertText(pos types.Position, text string) (types.EditInfo, error) {
	runes, err := lb.validatePosition(pos)
	if err != nil {
		return types.EditInfo{}, err
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	parts := strings.Split(text, "\n")

	head := string(runes[:pos.Col])
	tail := string(runes[pos.Col:])
	end := types.Position{Line: pos.Line + len(parts) - 1}

	if len(parts) == 1 {
		lb.lines[pos.Line].Text = head + parts[0] + tail
		end.Col = pos.Col + len([]rune(parts[0]))
	} else {
		last := parts[len(parts)-1]
		newRows := make([]types.Line, 0, len(parts))
		newRows = append(newRows, types.Line{Text: head + parts[0]})
		for _, p := range parts[1 : len(parts)-1] {
			newRows = append(newRows, types.Line{Text: p})
		}
		newRows = append(newRows, types.Line{Text: last + tail})
		end.Col = len([]rune(last))

		rest := append([]types.Line{}, lb.lines[pos.Line+1:]...)
		lb.lines = append(append(lb.lines[:pos.Line], newRows...), rest...)
		lb.renumber(pos.Line)
	}
	lb.modified = true

	return types.EditInfo{
		Kind:       types.EditInsert,
		Start:      pos,
		End:        end,
		LinesDelta: len(parts) - 1,
	}, nil
}

// DeleteRuneBefore removes the rune left of pos. pos.Col must be > 0.
func (lb *LineBuffer) DeleteRuneBefore(pos types.Position) (types.EditInfo, error) {
	runes, err := lb.validatePosition(pos)
	if err != nil {
		return types.EditInfo{}, err
	}
	if pos.Col == 0 {
		return types.EditInfo{}, fmt.Errorf("%w: nothing left of column 0", ErrOutOfBounds)
	}
	lb.lines[pos.Line].Text = string(append(runes[:pos.Col-1:pos.Col-1], runes[pos.Col:]...))
	lb.modified = true

	return types.EditInfo{
		Kind:  types.EditDelete,
		Start: types.Position{Line: pos.Line, Col: pos.Col - 1},
		End:   types.Position{Line: pos.Line, Col: pos.Col - 1},
	}, nil
}

// InsertLineAfter opens an empty row below row.
func (lb *LineBuffer) InsertLineAfter(row int) (types.EditInfo, error) {
	if row < 0 || row >= len(lb.lines) {
		return types.EditInfo{}, fmt.Errorf("%w: row %d of %d", ErrOutOfBounds, row, len(lb.lines))
	}
	lb.lines = append(lb.lines, types.Line{})
	copy(lb.lines[row+2:], lb.lines[row+1:])
	lb.lines[row+1] = types.Line{}
	lb.renumber(row + 1)
	lb.modified = true

	return types.EditInfo{
		Kind:       types.EditSplit,
		Start:      types.Position{Line: row},
		End:        types.Position{Line: row + 1},
		LinesDelta: 1,
	}, nil
}

// MergeWithPrevious appends row's text to row-1 and removes row.
// The returned End is where the joined text begins on the previous row.
func (lb *LineBuffer) MergeWithPrevious(row int) (types.EditInfo, error) {
	if row <= 0 || row >= len(lb.lines) {
		return types.EditInfo{}, fmt.Errorf("%w: cannot merge row %d of %d", ErrOutOfBounds, row, len(lb.lines))
	}
	prev := lb.lines[row-1].Text
	joinCol := len([]rune(prev))
	lb.lines[row-1].Text = prev + lb.lines[row].Text
	lb.lines = append(lb.lines[:row], lb.lines[row+1:]...)
	lb.renumber(row)
	lb.modified = true

	return types.EditInfo{
		Kind:       types.EditMerge,
		Start:      types.Position{Line: row},
		End:        types.Position{Line: row - 1, Col: joinCol},
		LinesDelta: -1,
	}, nil
}

var _ Buffer = (*LineBuffer)(nil)
