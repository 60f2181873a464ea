package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/bethropolis/jdiff/internal/event"
	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/bethropolis/jdiff/internal/store"
)

// ErrOwnerStopped is returned when an action is sent after the owner has exited.
var ErrOwnerStopped = errors.New("state: owner stopped")

type request struct {
	action input.ActionEvent
	query  bool // Snapshot only, no dispatch
	reply  chan result
}

type result struct {
	snap Snapshot
	err  error
}

// Owner is the only goroutine that touches the registry and the slices in
// it. Other goroutines send actions over a channel and get back snapshots.
type Owner struct {
	registry *store.Registry[input.ActionEvent]
	events   *event.Manager
	requests chan request
	done     chan struct{}
	onPanic  func(v any)
}

// OwnerOption configures an Owner.
type OwnerOption func(*Owner)

// WithPanicHook runs fn with the recovered value before the owner re-panics.
func WithPanicHook(fn func(v any)) OwnerOption {
	return func(o *Owner) { o.onPanic = fn }
}

// NewOwner wraps registry. events may be nil.
func NewOwner(registry *store.Registry[input.ActionEvent], events *event.Manager, opts ...OwnerOption) *Owner {
	o := &Owner{
		registry: registry,
		events:   events,
		requests: make(chan request),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run serves requests until ctx is cancelled.
func (o *Owner) Run(ctx context.Context) error {
	defer close(o.done)
	defer func() {
		if v := recover(); v != nil {
			if o.onPanic != nil {
				o.onPanic(v)
			}
			panic(v)
		}
	}()

	logger.Debugf("Owner: running with %d stores: %v", o.registry.Len(), o.registry.Types())
	for {
		select {
		case <-ctx.Done():
			logger.Debugf("Owner: stopping: %v", ctx.Err())
			return nil
		case req := <-o.requests:
			if req.query {
				req.reply <- result{snap: o.snapshot()}
				continue
			}
			snap, err := o.apply(req.action)
			req.reply <- result{snap: snap, err: err}
		}
	}
}

// Done is closed once Run returns.
func (o *Owner) Done() <-chan struct{} {
	return o.done
}

// Apply dispatches a on the owner goroutine and returns the resulting snapshot.
func (o *Owner) Apply(ctx context.Context, a input.ActionEvent) (Snapshot, error) {
	return o.send(ctx, request{action: a, reply: make(chan result, 1)})
}

// Snapshot returns the current state without dispatching anything.
func (o *Owner) Snapshot(ctx context.Context) (Snapshot, error) {
	return o.send(ctx, request{query: true, reply: make(chan result, 1)})
}

func (o *Owner) send(ctx context.Context, req request) (Snapshot, error) {
	select {
	case o.requests <- req:
	case <-o.done:
		return Snapshot{ShouldQuit: true}, ErrOwnerStopped
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
	select {
	case r := <-req.reply:
		return r.snap, r.err
	case <-o.done:
		return Snapshot{ShouldQuit: true}, ErrOwnerStopped
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

// snapshot captures the registered root state. A missing root reads as "should quit".
func (o *Owner) snapshot() Snapshot {
	root, ok := store.Lookup[*State](o.registry)
	if !ok {
		return Snapshot{ShouldQuit: true}
	}
	counter, _ := store.Lookup[*Counter](o.registry)
	return Capture(root, counter)
}

func (o *Owner) apply(a input.ActionEvent) (Snapshot, error) {
	before := o.snapshot()
	err := o.registry.Dispatch(a)
	after := o.snapshot()
	if err != nil {
		logger.Errorf("Owner: dispatch %v: %v", a, err)
		err = fmt.Errorf("failed to dispatch %v: %w", a, err)
	}
	o.publish(before, after)
	return after, err
}

// publish reports what changed between two snapshots on the event bus.
func (o *Owner) publish(before, after Snapshot) {
	if o.events == nil {
		return
	}
	if before.Mode != after.Mode {
		o.events.Dispatch(event.TypeModeChanged, event.ModeChangedData{Old: before.Mode, New: after.Mode})
	}
	if before.Route != after.Route {
		o.events.Dispatch(event.TypeRouteChanged, event.RouteChangedData{Old: before.Route, New: after.Route})
	}
	if after.StatusSeq != before.StatusSeq {
		o.events.Dispatch(event.TypeStatusMessage, event.StatusMessageData{Text: after.Status})
	}

	prev, hadPrev := before.Active()
	cur, ok := after.Active()
	if ok {
		sameEditor := hadPrev && before.ActiveEditor == after.ActiveEditor && len(before.Editors) == len(after.Editors)
		if !sameEditor || prev.Revision != cur.Revision {
			o.events.Dispatch(event.TypeBufferModified, event.BufferModifiedData{
				Editor:    after.ActiveEditor,
				Revision:  cur.Revision,
				LineCount: cur.LineCount,
			})
		}
		if !sameEditor || prev.Cursor != cur.Cursor {
			o.events.Dispatch(event.TypeCursorMoved, event.CursorMovedData{Editor: after.ActiveEditor, NewPosition: cur.Cursor})
		}
	}

	if after.ShouldQuit && !before.ShouldQuit {
		o.events.Dispatch(event.TypeAppQuit, nil)
	}
}
