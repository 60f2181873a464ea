// internal/types/position.go
package types

import "fmt"

// Position is a cursor or text position within a buffer.
// Line is the 0-based row, Col the 0-based rune index within that row.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Line)
}

// Range is a half-open [Start, End) span of rows.
type Range struct {
	Start int
	End   int
}

// Len returns the number of rows covered.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Contains reports whether row lies inside the range.
func (r Range) Contains(row int) bool {
	return row >= r.Start && row < r.End
}
