// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/jdiff/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger   logger.Config  `toml:"logger"`
	Editor   EditorConfig   `toml:"editor"`
	Database DatabaseConfig `toml:"database"`
	Theme    ThemeConfig    `toml:"theme"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	HistoryLimit  int  `toml:"history_limit"`
	MaxEditors    int  `toml:"max_editors"`
	TickRateMs    int  `toml:"tick_rate_ms"`
	LineNumbers   bool `toml:"line_numbers"`
	Autosave      bool `toml:"autosave"`
	AutosaveDelay int  `toml:"autosave_delay_ms"`
}

// DatabaseConfig selects the sqlite file and the project opened at startup.
type DatabaseConfig struct {
	Path    string `toml:"path"`
	Project string `toml:"project"`
}

// ThemeConfig names the active theme.
type ThemeConfig struct {
	Name string `toml:"name"`
}

// TickRate returns the poller tick interval.
func (e EditorConfig) TickRate() time.Duration {
	return time.Duration(e.TickRateMs) * time.Millisecond
}

// AutosaveInterval returns the autosave debounce delay.
func (e EditorConfig) AutosaveInterval() time.Duration {
	return time.Duration(e.AutosaveDelay) * time.Millisecond
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			HistoryLimit:  DefaultHistoryLimit,
			MaxEditors:    DefaultMaxEditors,
			TickRateMs:    int(DefaultTickRate / time.Millisecond),
			LineNumbers:   true,
			AutosaveDelay: int(DefaultAutosaveDelay / time.Millisecond),
		},
		Database: DatabaseConfig{
			Path:    defaultDatabasePath(),
			Project: DefaultProjectName,
		},
		Theme: ThemeConfig{Name: DefaultThemeName},
	}
}

// Dir returns the per-user config directory, or "" when it cannot be determined.
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName)
}

func defaultDatabasePath() string {
	if dir := Dir(); dir != "" {
		return filepath.Join(dir, DefaultDatabaseFileName)
	}
	return DefaultDatabaseFileName
}

// decodeFile decodes a TOML file on top of cfg. Keys absent from the file keep their current value.
func decodeFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		// Logged after logger.Init by the caller via Warnings.
		warnings = append(warnings, fmt.Sprintf("config file '%s': unrecognized keys: %v", filePath, undecoded))
	}
	return nil
}

// warnings collects messages produced before the logger exists.
var warnings []string

// Warnings returns problems noticed while loading that did not prevent startup.
func Warnings() []string {
	return warnings
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.HistoryLimit <= 1 {
		c.Editor.HistoryLimit = defaults.Editor.HistoryLimit
	}
	if c.Editor.MaxEditors <= 0 {
		c.Editor.MaxEditors = defaults.Editor.MaxEditors
	}
	if c.Editor.TickRateMs <= 0 {
		c.Editor.TickRateMs = defaults.Editor.TickRateMs
	}
	if c.Editor.AutosaveDelay <= 0 {
		c.Editor.AutosaveDelay = defaults.Editor.AutosaveDelay
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Database.Path == "" {
		c.Database.Path = defaults.Database.Path
	}
	if c.Database.Project == "" {
		c.Database.Project = defaults.Database.Project
	}
	if c.Theme.Name == "" {
		c.Theme.Name = defaults.Theme.Name
	}
}

// Load builds a config from defaults, the TOML file at configFilePath and the flags.
// It has no global side effects and is what LoadConfig uses.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		if dir := Dir(); dir != "" {
			effectivePath = filepath.Join(dir, DefaultConfigFileName)
		}
	}

	var err error
	if effectivePath != "" {
		err = decodeFile(effectivePath, cfg)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, err
}

// LoadConfig loads the configuration once and stores it for Get.
// It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, loadErr = Load(configFilePath, flags)
	})
	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
