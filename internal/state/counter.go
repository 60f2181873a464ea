package state

import "github.com/bethropolis/jdiff/internal/input"

// Counter is the slice behind the counter screen. It is registered as its
// own store and ignores every action but Increment and Decrement.
type Counter struct {
	Value int
}

// Handle implements store.Store.
func (c *Counter) Handle(a input.ActionEvent) []input.ActionEvent {
	switch a.Action {
	case input.ActionIncrement:
		c.Value++
	case input.ActionDecrement:
		c.Value--
	}
	return nil
}
