// Package clipboard moves text between editors and the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/jdiff/internal/logger"
)

// ErrEmpty is returned by Paste when there is nothing to paste.
var ErrEmpty = errors.New("clipboard: empty")

// Manager copies to the system clipboard when one is available and always
// keeps an internal register as fallback.
type Manager struct {
	register string
	system   bool
	read     func() (string, error)
	write    func(string) error
}

// NewManager creates a manager. With useSystem false only the internal register is used.
func NewManager(useSystem bool) *Manager {
	return &Manager{
		system: useSystem && !clipboard.Unsupported,
		read:   clipboard.ReadAll,
		write:  clipboard.WriteAll,
	}
}

// System reports whether the system clipboard is in use.
func (m *Manager) System() bool {
	return m.system
}

// Yank stores lines in the register and, if enabled, the system clipboard.
func (m *Manager) Yank(lines []string) error {
	m.register = strings.Join(lines, "\n")
	logger.Debugf("ClipboardManager: yanked %d bytes", len(m.register))
	if !m.system {
		return nil
	}
	if err := m.write(m.register); err != nil {
		return fmt.Errorf("failed to write system clipboard: %w", err)
	}
	return nil
}

// Paste returns the system clipboard text, falling back to the register
// when the system clipboard is disabled, unreadable or empty.
func (m *Manager) Paste() (string, error) {
	if m.system {
		text, err := m.read()
		if err != nil {
			logger.Warnf("ClipboardManager: system clipboard read failed: %v", err)
		} else if text != "" {
			return text, nil
		}
	}
	if m.register == "" {
		return "", ErrEmpty
	}
	return m.register, nil
}
