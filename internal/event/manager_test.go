package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchOrderAndConsume(t *testing.T) {
	m := NewManager()
	var calls []string
	m.Subscribe(TypeModeChanged, func(e Event) bool {
		calls = append(calls, "first")
		return e.Data.(ModeChangedData).New == 2
	})
	m.Subscribe(TypeModeChanged, func(e Event) bool {
		calls = append(calls, "second")
		return false
	})

	m.Dispatch(TypeModeChanged, ModeChangedData{New: 1})
	assert.Equal(t, []string{"first", "second"}, calls)

	calls = nil
	m.Dispatch(TypeModeChanged, ModeChangedData{New: 2})
	assert.Equal(t, []string{"first"}, calls, "consumed events stop propagating")
}

func TestDispatchWithoutHandlers(t *testing.T) {
	var nilManager *Manager
	assert.NotPanics(t, func() {
		NewManager().Dispatch(TypeAppQuit, nil)
		nilManager.Dispatch(TypeAppQuit, nil)
	})
}

func TestHandlerMaySubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	count := 0
	m.Subscribe(TypeAppReady, func(e Event) bool {
		m.Subscribe(TypeAppReady, func(Event) bool { count++; return false })
		return false
	})
	m.Dispatch(TypeAppReady, nil)
	assert.Equal(t, 0, count)
	m.Dispatch(TypeAppReady, nil)
	assert.Equal(t, 1, count)
}
