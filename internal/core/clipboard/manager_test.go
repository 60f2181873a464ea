package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeSystem(m *Manager, store *string, readErr error) {
	m.system = true
	m.write = func(s string) error {
		*store = s
		return nil
	}
	m.read = func() (string, error) {
		return *store, readErr
	}
}

func TestRegisterOnly(t *testing.T) {
	m := NewManager(false)
	assert.False(t, m.System())
	_, err := m.Paste()
	assert.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, m.Yank([]string{"a", "b"}))
	got, err := m.Paste()
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func TestSystemClipboard(t *testing.T) {
	var store string
	m := NewManager(false)
	fakeSystem(m, &store, nil)

	require.NoError(t, m.Yank([]string{"x"}))
	assert.Equal(t, "x", store)

	store = "from elsewhere"
	got, err := m.Paste()
	require.NoError(t, err)
	assert.Equal(t, "from elsewhere", got)
}

func TestSystemReadFailureFallsBack(t *testing.T) {
	var store string
	m := NewManager(false)
	fakeSystem(m, &store, errors.New("no display"))

	require.NoError(t, m.Yank([]string{"kept"}))
	got, err := m.Paste()
	require.NoError(t, err)
	assert.Equal(t, "kept", got)
}
