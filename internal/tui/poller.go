package tui

import (
	"context"
	"strings"
	"time"

	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// EventKind is the closed set of input events.
type EventKind int

const (
	EventTick EventKind = iota
	EventKey
	EventResize
	EventPaste
)

func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "Tick"
	case EventKey:
		return "Key"
	case EventResize:
		return "Resize"
	case EventPaste:
		return "Paste"
	}
	return "Unknown"
}

// Event is one input event.
type Event struct {
	Kind   EventKind
	Key    *tcell.EventKey // EventKey
	Width  int             // EventResize
	Height int             // EventResize
	Text   string          // EventPaste
}

// Poller turns the blocking tcell event source into a stream of Events on a
// channel. A Tick is emitted whenever no other event arrived for one tick
// interval.
type Poller struct {
	source func() tcell.Event
	tick   time.Duration
	events chan Event
}

// NewPoller creates a poller reading from source, typically Screen.PollEvent.
// source must return nil once the screen is finalized.
func NewPoller(source func() tcell.Event, tick time.Duration) *Poller {
	if tick <= 0 {
		tick = 250 * time.Millisecond
	}
	return &Poller{
		source: source,
		tick:   tick,
		events: make(chan Event),
	}
}

// Poller creates a poller for this screen.
func (t *TUI) Poller(tick time.Duration) *Poller {
	return NewPoller(t.screen.PollEvent, tick)
}

// Events returns the event stream. It is closed when Run returns.
func (p *Poller) Events() <-chan Event {
	return p.events
}

// Run reads events until ctx is cancelled or the source is exhausted.
func (p *Poller) Run(ctx context.Context) {
	defer close(p.events)

	raw := make(chan tcell.Event)
	go func() {
		defer close(raw)
		for {
			ev := p.source()
			if ev == nil {
				return
			}
			select {
			case raw <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	timer := time.NewTimer(p.tick)
	defer timer.Stop()

	var paste strings.Builder
	pasting := false

	for {
		select {
		case <-ctx.Done():
			return

		case <-timer.C:
			if !p.emit(ctx, Event{Kind: EventTick}) {
				return
			}
			timer.Reset(p.tick)

		case ev, ok := <-raw:
			if !ok {
				logger.Debugf("Poller: event source closed")
				return
			}
			out, ready := p.translate(ev, &paste, &pasting)
			if ready && !p.emit(ctx, out) {
				return
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(p.tick)
		}
	}
}

// translate converts one tcell event. Keys between paste start and end are
// collected into a single Paste event.
func (p *Poller) translate(ev tcell.Event, paste *strings.Builder, pasting *bool) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventPaste:
		if e.Start() {
			*pasting = true
			paste.Reset()
			return Event{}, false
		}
		*pasting = false
		text := paste.String()
		paste.Reset()
		return Event{Kind: EventPaste, Text: text}, true

	case *tcell.EventKey:
		if *pasting {
			switch e.Key() {
			case tcell.KeyRune:
				paste.WriteRune(e.Rune())
			case tcell.KeyEnter:
				paste.WriteByte('\n')
			case tcell.KeyTab:
				paste.WriteByte('\t')
			}
			return Event{}, false
		}
		return Event{Kind: EventKey, Key: e}, true

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Kind: EventResize, Width: w, Height: h}, true
	}
	return Event{}, false
}

func (p *Poller) emit(ctx context.Context, e Event) bool {
	select {
	case p.events <- e:
		return true
	case <-ctx.Done():
		return false
	}
}
