package state

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bethropolis/jdiff/internal/event"
	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/store"
	"github.com/bethropolis/jdiff/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startOwner(t *testing.T, reg *store.Registry[input.ActionEvent], events *event.Manager) (*Owner, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	o := NewOwner(reg, events)
	go func() { _ = o.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-o.Done()
	})
	return o, cancel
}

func TestOwnerAppliesAndReturnsSnapshot(t *testing.T) {
	reg := store.NewRegistry[input.ActionEvent]()
	reg.Register(newTestState())
	reg.Register(&Counter{})
	o, _ := startOwner(t, reg, nil)

	ctx := context.Background()
	snap, err := o.Apply(ctx, input.Simple(input.ActionIncrement))
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Counter)

	snap, err = o.Apply(ctx, input.InsertRune('x'))
	require.NoError(t, err)
	view, _ := snap.Active()
	assert.Equal(t, "x", view.Lines[0].Text)

	snap, err = o.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Counter)
}

func TestOwnerConcurrentSenders(t *testing.T) {
	reg := store.NewRegistry[input.ActionEvent]()
	reg.Register(newTestState())
	c := &Counter{}
	reg.Register(c)
	o, _ := startOwner(t, reg, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := o.Apply(context.Background(), input.Simple(input.ActionIncrement))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	snap, err := o.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, snap.Counter)
}

func TestOwnerMissingRootMeansQuit(t *testing.T) {
	reg := store.NewRegistry[input.ActionEvent]()
	reg.Register(&Counter{})
	o, _ := startOwner(t, reg, nil)

	snap, err := o.Apply(context.Background(), input.Simple(input.ActionIncrement))
	require.NoError(t, err)
	assert.True(t, snap.ShouldQuit)
}

func TestOwnerStopped(t *testing.T) {
	reg := store.NewRegistry[input.ActionEvent]()
	reg.Register(newTestState())
	o, cancel := startOwner(t, reg, nil)
	cancel()

	select {
	case <-o.Done():
	case <-time.After(time.Second):
		t.Fatal("owner did not stop")
	}

	snap, err := o.Apply(context.Background(), input.Quit())
	assert.ErrorIs(t, err, ErrOwnerStopped)
	assert.True(t, snap.ShouldQuit)
}

func TestOwnerPublishesChanges(t *testing.T) {
	reg := store.NewRegistry[input.ActionEvent]()
	reg.Register(newTestState())
	events := event.NewManager()

	var got []event.Type
	for _, typ := range []event.Type{event.TypeModeChanged, event.TypeRouteChanged, event.TypeStatusMessage,
		event.TypeBufferModified, event.TypeCursorMoved, event.TypeAppQuit} {
		events.Subscribe(typ, func(e event.Event) bool {
			got = append(got, e.Type)
			return false
		})
	}
	o, _ := startOwner(t, reg, events)
	ctx := context.Background()

	_, err := o.Apply(ctx, input.ChangeMode(types.ModeEditing))
	require.NoError(t, err)
	_, err = o.Apply(ctx, input.Navigate(RouteEditor))
	require.NoError(t, err)
	_, err = o.Apply(ctx, input.InsertRune('a'))
	require.NoError(t, err)
	_, err = o.Apply(ctx, input.SetStatus("hello"))
	require.NoError(t, err)
	_, err = o.Apply(ctx, input.SetStatus("hello"))
	require.NoError(t, err)
	_, err = o.Apply(ctx, input.Quit())
	require.NoError(t, err)

	assert.Equal(t, []event.Type{
		event.TypeModeChanged,
		event.TypeRouteChanged,
		event.TypeBufferModified, event.TypeCursorMoved,
		event.TypeStatusMessage,
		event.TypeStatusMessage,
		event.TypeAppQuit,
	}, got)
}

// exploder panics on Quit.
type exploder struct{}

func (exploder) Handle(a input.ActionEvent) []input.ActionEvent {
	if a.Action == input.ActionQuit {
		panic("boom")
	}
	return nil
}

func TestOwnerPanicHook(t *testing.T) {
	reg := store.NewRegistry[input.ActionEvent]()
	reg.Register(exploder{})

	hooked := make(chan any, 1)
	o := NewOwner(reg, nil, WithPanicHook(func(v any) { hooked <- v }))
	go func() {
		defer func() { _ = recover() }()
		_ = o.Run(context.Background())
	}()

	_, err := o.Apply(context.Background(), input.Quit())
	assert.ErrorIs(t, err, ErrOwnerStopped)
	assert.Equal(t, "boom", <-hooked)
}
