// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"
)

// Flags holds values parsed from command-line flags.
// Pointers distinguish unset flags from zero values.
type Flags struct {
	ConfigFilePath *string
	Version        *bool
	LogLevel       *string
	LogFilePath    *string
	DatabasePath   *string
	Project        *string
	HistoryLimit   *int
	TickRate       *int
	Theme          *string
	EnableTags     *string
	DisableTags    *string
	EnablePkgs     *string
	DisablePkgs    *string
	DebugLog       *bool

	fs *flag.FlagSet
}

// DefineFlags registers the flags on fs.
func (f *Flags) DefineFlags(fs *flag.FlagSet) {
	f.fs = fs
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error)")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr)")
	f.DatabasePath = fs.String("db", "", "Path to the sqlite database file")
	f.Project = fs.String("project", "", "Project opened at startup")
	f.HistoryLimit = fs.Int("history", 0, "Maximum undo history entries per editor")
	f.TickRate = fs.Int("tick", 0, "Event tick interval in milliseconds")
	f.Theme = fs.String("theme", "", "Theme name")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of debug tags to enable")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of debug tags to disable")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable")
	f.DebugLog = fs.Bool("debug-log", false, "Trace logger filter decisions to stderr")
}

// ParseFlags defines the flags on fs and parses args. It returns the remaining arguments.
func (f *Flags) ParseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	f.DefineFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

// ApplyOverrides updates cfg with values from flags that were actually set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.fs == nil {
		return
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "db":
			if *f.DatabasePath != "" {
				cfg.Database.Path = *f.DatabasePath
			}
		case "project":
			if *f.Project != "" {
				cfg.Database.Project = *f.Project
			}
		case "history":
			if *f.HistoryLimit > 1 {
				cfg.Editor.HistoryLimit = *f.HistoryLimit
			}
		case "tick":
			if *f.TickRate > 0 {
				cfg.Editor.TickRateMs = *f.TickRate
			}
		case "theme":
			if *f.Theme != "" {
				cfg.Theme.Name = *f.Theme
			}
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
