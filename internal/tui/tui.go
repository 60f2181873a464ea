// internal/tui/tui.go
package tui

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen   tcell.Screen
	finiOnce sync.Once
}

// New creates and initializes the terminal screen.
func New() (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen initializes s, e.g. a tcell.SimulationScreen in tests.
func NewWithScreen(s tcell.Screen) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	s.EnablePaste()
	return &TUI{screen: s}, nil
}

// Close finalizes the screen, returning the terminal to cooked mode. Safe to call twice.
func (t *TUI) Close() {
	t.finiOnce.Do(func() {
		if t.screen != nil {
			t.screen.Fini()
		}
	})
}

// Restore is deferred by goroutines that draw or own state: on panic it
// restores the terminal, logs the stack and re-panics.
func (t *TUI) Restore() {
	if v := recover(); v != nil {
		t.OnPanic(v)
		panic(v)
	}
}

// OnPanic restores the terminal and logs v with the current stack.
func (t *TUI) OnPanic(v any) {
	t.Close()
	logger.Errorf("panic: %v\n%s", v, debug.Stack())
}

// SetStyle sets the style used for cleared cells.
func (t *TUI) SetStyle(style tcell.Style) {
	t.screen.SetStyle(style)
}

// Clear clears the entire screen.
func (t *TUI) Clear() {
	t.screen.Clear()
}

// Show makes the changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Sync redraws every cell, used after a resize.
func (t *TUI) Sync() {
	t.screen.Sync()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// Screen provides direct access for renderers.
func (t *TUI) Screen() tcell.Screen {
	return t.screen
}
