package store

import (
	"fmt"
	"reflect"

	"github.com/bethropolis/jdiff/internal/logger"
)

// Registry maps a slice's dynamic type to its container. It is not safe for
// concurrent use; one goroutine owns it (see state.Owner).
type Registry[A comparable] struct {
	containers map[reflect.Type]*container[A]
	order      []reflect.Type
	maxRounds  int
}

// Option configures a Registry.
type Option func(*registryOptions)

type registryOptions struct {
	maxRounds int
}

// WithMaxRounds overrides DefaultMaxRounds. Values below 1 are ignored.
func WithMaxRounds(n int) Option {
	return func(o *registryOptions) {
		if n > 0 {
			o.maxRounds = n
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry[A comparable](opts ...Option) *Registry[A] {
	o := registryOptions{maxRounds: DefaultMaxRounds}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[A]{
		containers: make(map[reflect.Type]*container[A]),
		maxRounds:  o.maxRounds,
	}
}

// Register adds s keyed by its type. Registering the same type again
// replaces the instance and keeps the original position in dispatch order.
func (r *Registry[A]) Register(s Store[A]) {
	if s == nil {
		return
	}
	t := reflect.TypeOf(s)
	if c, exists := r.containers[t]; exists {
		logger.DebugTagf("store", "Replacing registered store %s", t)
		c.store = s
		c.done = false
		return
	}
	r.containers[t] = &container[A]{store: s}
	r.order = append(r.order, t)
	logger.DebugTagf("store", "Registered store %s (%d total)", t, len(r.order))
}

// Lookup returns the registered slice of type S, or false if none is registered.
func Lookup[S Store[A], A comparable](r *Registry[A]) (S, bool) {
	var zero S
	if r == nil {
		return zero, false
	}
	c, ok := r.containers[reflect.TypeOf((*S)(nil)).Elem()]
	if !ok {
		return zero, false
	}
	s, ok := c.store.(S)
	return s, ok
}

// Len reports the number of registered slices.
func (r *Registry[A]) Len() int {
	return len(r.order)
}

// Types lists registered slice types in dispatch order.
func (r *Registry[A]) Types() []string {
	names := make([]string, len(r.order))
	for i, t := range r.order {
		names[i] = t.String()
	}
	return names
}

// Dispatch runs action through every slice, then drains any follow-up
// actions the slices produced, all before returning. Each queued action is
// one round: containers are reset, then visited in registration order.
// An action equal to one already processed by this call is dropped, so a
// slice never handles the same action twice per Dispatch.
func (r *Registry[A]) Dispatch(action A) error {
	queue := []A{action}
	seen := make(map[A]struct{})
	rounds := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if _, dup := seen[current]; dup {
			logger.DebugTagf("store", "Dropping re-queued action %+v", current)
			continue
		}
		seen[current] = struct{}{}

		rounds++
		if rounds > r.maxRounds {
			return fmt.Errorf("%w: %d rounds, last action %+v", ErrChainLimit, r.maxRounds, current)
		}

		for _, t := range r.order {
			r.containers[t].reset()
		}
		for _, t := range r.order {
			queue = append(queue, r.containers[t].handle(current)...)
		}
	}
	return nil
}
