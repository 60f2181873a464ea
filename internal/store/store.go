// Package store implements a registry of independently owned state slices
// that all receive the same stream of actions.
package store

import "errors"

// DefaultMaxRounds bounds how many queued actions one Dispatch call may process.
const DefaultMaxRounds = 64

// ErrChainLimit is returned by Dispatch when follow-up actions keep arriving past the round cap.
var ErrChainLimit = errors.New("store: follow-up chain exceeded round limit")

// Store is one state slice. Handle folds an action into the slice and may
// return follow-up actions, which are queued and dispatched to every slice.
// A slice ignores actions it does not recognize by returning nil.
type Store[A comparable] interface {
	Handle(action A) []A
}

// container owns one slice plus its handled-this-round flag. done only
// stops a container from being visited twice within one round; that no
// slice sees the same action twice across the rounds of one Dispatch is
// guaranteed by the seen set in Registry.Dispatch.
type container[A comparable] struct {
	store Store[A]
	done  bool
}

func (c *container[A]) reset() {
	c.done = false
}

// handle runs the slice unless it already ran this round.
func (c *container[A]) handle(action A) []A {
	if c.done {
		return nil
	}
	c.done = true
	return c.store.Handle(action)
}
