// Package logger provides leveled, filterable logging on top of log/slog.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Config holds all settings for the logger.
type Config struct {
	// LogLevel is the minimum level to log: debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// LogFilePath is the output log file. "-" means stderr.
	LogFilePath string `toml:"log_file"`

	// Tag filters apply to records written with DebugTagf.
	EnabledTags  []string `toml:"enabled_tags"`
	DisabledTags []string `toml:"disabled_tags"`

	// Package filters match the directory name of the caller, e.g. "store" or "core".
	EnabledPackages  []string `toml:"enabled_packages"`
	DisabledPackages []string `toml:"disabled_packages"`

	// File filters match the caller's base file name, e.g. "registry.go".
	EnabledFiles  []string `toml:"enabled_files"`
	DisabledFiles []string `toml:"disabled_files"`

	level               slog.Leveler
	enabledTagsSet      map[string]struct{}
	disabledTagsSet     map[string]struct{}
	enabledPackagesSet  map[string]struct{}
	disabledPackagesSet map[string]struct{}
	enabledFilesSet     map[string]struct{}
	disabledFilesSet    map[string]struct{}
}

// NewConfig creates a new Config with default values
func NewConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFilePath: "jdiff.log",
	}
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error", "err":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// process parses string levels/lists into the lookup sets used by the handler.
func (c *Config) process() {
	c.level, _ = ParseLevel(c.LogLevel)

	c.enabledTagsSet = sliceToSet(c.EnabledTags)
	c.disabledTagsSet = sliceToSet(c.DisabledTags)
	c.enabledPackagesSet = sliceToSet(c.EnabledPackages)
	c.disabledPackagesSet = sliceToSet(c.DisabledPackages)
	c.enabledFilesSet = sliceToSet(c.EnabledFiles)
	c.disabledFilesSet = sliceToSet(c.DisabledFiles)

	if debugFilter {
		fmt.Fprintf(os.Stderr, "[logger] level=%s packages +%v -%v files +%v -%v tags +%v -%v\n",
			c.level, c.EnabledPackages, c.DisabledPackages, c.EnabledFiles, c.DisabledFiles,
			c.EnabledTags, c.DisabledTags)
	}
}

func sliceToSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item != "" {
			set[strings.ToLower(item)] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil // nil means "no filter"
	}
	return set
}
