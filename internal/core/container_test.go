package core

import (
	"testing"

	"github.com/bethropolis/jdiff/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestContainerCapAndFocus(t *testing.T) {
	c := NewContainer(2, 10)
	assert.Equal(t, 1, c.Len())
	assert.False(t, c.ChangeFocus(types.DirNext), "single editor cannot change focus")

	assert.True(t, c.Add())
	assert.Equal(t, 1, c.ActiveIndex())
	assert.False(t, c.Add(), "capped at two editors")

	assert.True(t, c.ChangeFocus(types.DirNext))
	assert.Equal(t, 0, c.ActiveIndex())
	assert.True(t, c.ChangeFocus(types.DirPrev))
	assert.Equal(t, 1, c.ActiveIndex())
}

func TestContainerClose(t *testing.T) {
	c := NewContainer(3, 10)
	assert.False(t, c.Close(), "last editor stays open")

	c.Add()
	c.Active().InsertChar('b')
	c.ChangeFocus(types.DirPrev)
	c.Active().InsertChar('a')

	assert.True(t, c.Close())
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []string{"b"}, c.Active().ExportLines())
}

func TestContainerInitAndResize(t *testing.T) {
	c := NewContainer(2, 10)
	assert.False(t, c.Initialized())

	c.Init(5)
	assert.True(t, c.Initialized())
	assert.Equal(t, 5, c.Active().Height())

	c.ToggleResize()
	assert.True(t, c.ResizePending())
	c.Resize(3)
	assert.False(t, c.ResizePending())

	c.Add()
	assert.Equal(t, 3, c.Active().Height(), "new editors take the current height")
}

func TestContainerLineNumbers(t *testing.T) {
	c := NewContainer(2, 10)
	assert.True(t, c.LineNumbers())
	c.ToggleLineNumbers()
	assert.False(t, c.LineNumbers())
}
