// internal/theme/manager.go
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Manager holds loaded themes and manages the active theme. It is safe for
// concurrent use: commands switch themes while the renderer reads them.
type Manager struct {
	themes      map[string]*Theme // lowercase name -> theme
	activeTheme *Theme
	themesDir   string
	mutex       sync.RWMutex
}

// NewManager loads the built-in theme and every *.toml theme in themesDir
// (skipped when empty), then activates initial if it exists.
func NewManager(themesDir, initial string) *Manager {
	mgr := &Manager{
		themes:    make(map[string]*Theme),
		themesDir: themesDir,
	}

	builtin := JdiffDark
	mgr.themes[strings.ToLower(builtin.Name)] = &builtin
	mgr.activeTheme = &builtin

	if themesDir != "" {
		if err := mgr.LoadThemesFromDir(); err != nil {
			logger.Errorf("Error loading themes from '%s': %v", themesDir, err)
		}
	}

	if initial != "" {
		if err := mgr.SetTheme(initial); err != nil {
			logger.Warnf("Configured theme unavailable, using '%s': %v", mgr.activeTheme.Name, err)
		}
	}
	logger.Infof("Initial active theme set to: %s", mgr.Current().Name)
	return mgr
}

// LoadThemesFromDir scans the themes directory and loads .toml files.
func (m *Manager) LoadThemesFromDir() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.themesDir == "" {
		return errors.New("theme directory path is not set")
	}

	files, err := os.ReadDir(m.themesDir)
	if errors.Is(err, os.ErrNotExist) {
		logger.Infof("Theme directory '%s' does not exist. No custom themes loaded.", m.themesDir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read theme directory '%s': %w", m.themesDir, err)
	}

	loadedCount := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".toml") {
			continue
		}
		filePath := filepath.Join(m.themesDir, file.Name())
		theme, err := LoadThemeFromFile(filePath)
		if err != nil {
			logger.Warnf("Failed to load theme from '%s': %v", filePath, err)
			continue
		}

		key := strings.ToLower(theme.Name)
		if existing, ok := m.themes[key]; ok {
			logger.Warnf("Theme '%s' from '%s' overrides existing theme '%s'", theme.Name, filePath, existing.Name)
			if m.activeTheme == existing {
				m.activeTheme = theme
			}
		}
		m.themes[key] = theme
		loadedCount++
	}
	logger.Infof("Loaded %d custom themes.", loadedCount)
	return nil
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.activeTheme == nil {
		return &Theme{Name: "Fallback", Styles: map[string]tcell.Style{StyleDefault: tcell.StyleDefault}}
	}
	return m.activeTheme
}

// SetTheme activates the theme called name (case-insensitive).
func (m *Manager) SetTheme(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	theme, ok := m.themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}
	if m.activeTheme != theme {
		m.activeTheme = theme
		logger.Infof("Active theme set to: %s", theme.Name)
	}
	return nil
}

// ListThemes returns the names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.themes))
	for _, theme := range m.themes {
		names = append(names, theme.Name)
	}
	sort.Strings(names)
	return names
}

// GetTheme returns a theme by name (case-insensitive).
func (m *Manager) GetTheme(name string) (*Theme, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	theme, ok := m.themes[strings.ToLower(name)]
	return theme, ok
}
