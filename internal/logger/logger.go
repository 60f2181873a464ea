// internal/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	defaultLogger *slog.Logger
	logLevel      *slog.LevelVar
	initOnce      sync.Once
	activeConfig  *Config

	// debugFilter traces filter decisions to stderr. Off unless --debug-log is set.
	debugFilter bool
)

// Init initializes the logger package with the given config. Only the first call has effect.
func Init(cfg Config, output io.Writer) {
	initOnce.Do(func() {
		if output == nil {
			output = io.Discard
		}
		cfg.process()
		activeConfig = &cfg

		logLevel = new(slog.LevelVar)
		logLevel.Set(cfg.level.Level())

		opts := slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.SourceKey {
					if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
						source.File = trimSourcePath(source.File)
					}
				}
				if a.Key == slog.TimeKey {
					a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
				}
				return a
			},
		}
		base := slog.NewTextHandler(output, &opts)
		defaultLogger = slog.New(newFilteringHandler(base, activeConfig))

		r := slog.NewRecord(time.Now(), slog.LevelInfo, "Logger initialized", 0)
		r.AddAttrs(slog.String("level", cfg.level.Level().String()))
		_ = base.Handle(context.Background(), r)
	})
}

// SetDebugFilter toggles stderr tracing of filter decisions.
func SetDebugFilter(enabled bool) {
	debugFilter = enabled
}

// SetLevel changes the minimum level at runtime.
func SetLevel(level slog.Level) {
	ensureInitialized()
	logLevel.Set(level)
}

// trimSourcePath keeps "pkg/file.go" so the filtering handler can still see the package.
func trimSourcePath(path string) string {
	return filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path))
}

// ensureInitialized installs a discarding logger if Init was never called (tests, tools).
func ensureInitialized() {
	initOnce.Do(func() {
		logLevel = new(slog.LevelVar)
		logLevel.Set(slog.LevelInfo)
		defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel}))
	})
}

// logAtLevel creates and logs a record, attributing it to the caller of the public wrapper.
func logAtLevel(level slog.Level, tag string, format string, args ...interface{}) {
	ensureInitialized()
	if !defaultLogger.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	// Skip runtime.Callers, logAtLevel and the wrapper (Debugf, DebugTagf, ...).
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = defaultLogger.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, "", format, args...)
}

// DebugTagf logs a debug message carrying a tag attribute that the filter can match on.
func DebugTagf(tag string, format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, tag, format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, "", format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, "", format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
}

// Fatalf logs an error message then exits.
func Fatalf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
	os.Exit(1)
}

// Get retrieves the configured logger instance.
func Get() *slog.Logger {
	ensureInitialized()
	return defaultLogger
}
