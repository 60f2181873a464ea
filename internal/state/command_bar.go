package state

import (
	"strings"

	"github.com/bethropolis/jdiff/internal/types"
)

// commandPrefix is always the first rune of the command bar input.
const commandPrefix = ':'

// CommandBar is the ':' prompt. The cursor never moves left of the prefix.
type CommandBar struct {
	input  []rune
	cursor int
}

// NewCommandBar returns an empty bar holding only the prefix.
func NewCommandBar() *CommandBar {
	b := &CommandBar{}
	b.Clear()
	return b
}

// Clear resets the input to the prefix.
func (b *CommandBar) Clear() {
	b.input = []rune{commandPrefix}
	b.cursor = 1
}

// Input returns the full text including the prefix.
func (b *CommandBar) Input() string {
	return string(b.input)
}

// Cursor returns the rune index of the cursor within Input.
func (b *CommandBar) Cursor() int {
	return b.cursor
}

// Command returns the trimmed text after the prefix.
func (b *CommandBar) Command() string {
	return strings.TrimSpace(string(b.input[1:]))
}

// Insert adds r at the cursor.
func (b *CommandBar) Insert(r rune) {
	b.input = append(b.input, 0)
	copy(b.input[b.cursor+1:], b.input[b.cursor:])
	b.input[b.cursor] = r
	b.cursor++
}

// Move shifts the cursor left or right, staying within [1, len].
func (b *CommandBar) Move(dir types.Direction) {
	switch dir {
	case types.DirLeft:
		if b.cursor > 1 {
			b.cursor--
		}
	case types.DirRight:
		if b.cursor < len(b.input) {
			b.cursor++
		}
	}
}

// Backspace removes the rune left of the cursor. The prefix cannot be removed.
func (b *CommandBar) Backspace() {
	if b.cursor <= 1 {
		return
	}
	b.input = append(b.input[:b.cursor-1], b.input[b.cursor:]...)
	b.cursor--
}

// IsExit reports whether cmd is one of the quit commands.
func IsExit(cmd string) bool {
	switch cmd {
	case "q", "exit", "quit":
		return true
	}
	return false
}
