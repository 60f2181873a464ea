package core

import (
	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/bethropolis/jdiff/internal/types"
)

// DefaultMaxEditors caps the number of open editors.
const DefaultMaxEditors = 2

// Container holds the open editors and owns the active index.
type Container struct {
	editors       []*Editor
	active        int
	maxEditors    int
	historyLimit  int
	height        int
	initialized   bool
	resizePending bool
	lineNumbers   bool
}

// NewContainer creates a container with one empty editor.
func NewContainer(maxEditors, historyLimit int) *Container {
	if maxEditors <= 0 {
		maxEditors = DefaultMaxEditors
	}
	return &Container{
		editors:      []*Editor{NewEditor(historyLimit)},
		maxEditors:   maxEditors,
		historyLimit: historyLimit,
		lineNumbers:  true,
	}
}

// Active returns the focused editor.
func (c *Container) Active() *Editor {
	return c.editors[c.active]
}

// ActiveIndex returns the index of the focused editor.
func (c *Container) ActiveIndex() int {
	return c.active
}

// Editors returns the open editors in tab order.
func (c *Container) Editors() []*Editor {
	return c.editors
}

// Len returns the number of open editors.
func (c *Container) Len() int {
	return len(c.editors)
}

// Max returns the editor cap.
func (c *Container) Max() int {
	return c.maxEditors
}

// Initialized reports whether Init has run.
func (c *Container) Initialized() bool {
	return c.initialized
}

// ResizePending reports whether a terminal resize has not been applied yet.
func (c *Container) ResizePending() bool {
	return c.resizePending
}

// LineNumbers reports whether the line-number gutter is shown.
func (c *Container) LineNumbers() bool {
	return c.lineNumbers
}

// SetLineNumbers sets the gutter visibility.
func (c *Container) SetLineNumbers(on bool) {
	c.lineNumbers = on
}

// ToggleLineNumbers flips the gutter visibility.
func (c *Container) ToggleLineNumbers() {
	c.lineNumbers = !c.lineNumbers
}

// Init marks the container initialized and sizes every editor.
func (c *Container) Init(height int) {
	c.initialized = true
	c.Resize(height)
}

// ToggleResize records that the terminal size changed.
func (c *Container) ToggleResize() {
	c.resizePending = true
}

// Resize applies height to every editor and clears the pending flag.
func (c *Container) Resize(height int) {
	c.height = height
	c.resizePending = false
	for _, e := range c.editors {
		e.Resize(height)
	}
}

// ChangeFocus moves focus to the next or previous editor, wrapping around.
func (c *Container) ChangeFocus(dir types.Direction) bool {
	n := len(c.editors)
	if n < 2 {
		return false
	}
	switch dir {
	case types.DirNext:
		c.active = (c.active + 1) % n
	case types.DirPrev:
		c.active = (c.active - 1 + n) % n
	default:
		return false
	}
	return true
}

// Add opens a new empty editor and focuses it. No-op at the cap.
func (c *Container) Add() bool {
	if len(c.editors) >= c.maxEditors {
		logger.Debugf("Container: editor limit %d reached", c.maxEditors)
		return false
	}
	e := NewEditor(c.historyLimit)
	e.Resize(c.height)
	c.editors = append(c.editors, e)
	c.active = len(c.editors) - 1
	return true
}

// Close closes the focused editor. The last editor is never closed.
func (c *Container) Close() bool {
	if len(c.editors) < 2 {
		return false
	}
	c.editors = append(c.editors[:c.active], c.editors[c.active+1:]...)
	if c.active >= len(c.editors) {
		c.active = len(c.editors) - 1
	}
	return true
}
