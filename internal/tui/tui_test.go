package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimTUI(t *testing.T, w, h int) *TUI {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	ui, err := NewWithScreen(sim)
	require.NoError(t, err)
	sim.SetSize(w, h)
	ui.Clear()
	t.Cleanup(ui.Close)
	return ui
}

func rowText(s tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDrawTextClipsAndExpandsTabs(t *testing.T) {
	ui := newSimTUI(t, 10, 2)
	s := ui.Screen()

	n := DrawText(s, 0, 0, 10, "a\tb", tcell.StyleDefault)
	assert.Equal(t, 5, n)
	assert.Equal(t, "a   b", rowText(s, 0, 10))

	n = DrawText(s, 2, 1, 3, "hello", tcell.StyleDefault)
	assert.Equal(t, 3, n)
	assert.Equal(t, "  hel", rowText(s, 1, 10))
}

func TestVisualColumn(t *testing.T) {
	tests := []struct {
		line  string
		index int
		want  int
	}{
		{"abc", 0, 0},
		{"abc", 2, 2},
		{"\tx", 1, TabWidth},
		{"ab\tx", 3, TabWidth},
		{"日本", 1, 2},
		{"日本", 2, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VisualColumn(tt.line, tt.index), "%q[%d]", tt.line, tt.index)
	}
	assert.Equal(t, 4, TextWidth("日本"))
}

func TestRestoreRepanics(t *testing.T) {
	ui := newSimTUI(t, 5, 5)
	assert.PanicsWithValue(t, "boom", func() {
		defer ui.Restore()
		panic("boom")
	})
	ui.Close()
}

// fakeSource feeds queued events to a Poller and returns nil once closed.
func fakeSource(events chan tcell.Event) func() tcell.Event {
	return func() tcell.Event {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return ev
	}
}

func TestPollerTranslatesEvents(t *testing.T) {
	src := make(chan tcell.Event, 16)
	p := NewPoller(fakeSource(src), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	src <- tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	src <- tcell.NewEventPaste(true)
	src <- tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)
	src <- tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	src <- tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone)
	src <- tcell.NewEventPaste(false)
	src <- tcell.NewEventResize(80, 24)

	ev := <-p.Events()
	require.Equal(t, EventKey, ev.Kind)
	assert.Equal(t, 'x', ev.Key.Rune())

	ev = <-p.Events()
	require.Equal(t, EventPaste, ev.Kind)
	assert.Equal(t, "a\nb", ev.Text)

	ev = <-p.Events()
	require.Equal(t, EventResize, ev.Kind)
	assert.Equal(t, 80, ev.Width)
	assert.Equal(t, 24, ev.Height)

	close(src)
	_, ok := <-p.Events()
	assert.False(t, ok, "stream closes with the source")
}

func TestPollerTicksWhenIdle(t *testing.T) {
	src := make(chan tcell.Event)
	defer close(src)
	p := NewPoller(fakeSource(src), 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	go p.Run(ctx)

	select {
	case ev := <-p.Events():
		assert.Equal(t, EventTick, ev.Kind)
	case <-time.After(time.Second):
		t.Fatal("no tick")
	}

	cancel()
	for range p.Events() {
	}
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "Paste", EventPaste.String())
	assert.Equal(t, "Unknown", EventKind(42).String())
}
