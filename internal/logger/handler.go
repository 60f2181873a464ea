package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// filteringHandler wraps a base slog.Handler and drops records by package, file or tag.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{
		baseHandler: base,
		cfg:         cfg,
	}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// allowed applies the disabled-then-enabled rule for one filter dimension.
func allowed(value string, enabled, disabled map[string]struct{}) bool {
	if value == "" {
		return enabled == nil
	}
	value = strings.ToLower(value)
	if _, found := disabled[value]; found {
		return false
	}
	if enabled != nil {
		_, found := enabled[value]
		return found
	}
	return true
}

// Handle applies filtering logic before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	// Warnings and errors are never filtered.
	if h.cfg == nil || r.Level >= slog.LevelWarn {
		return h.baseHandler.Handle(ctx, r)
	}

	var pkg, file string
	if r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if frame.File != "" {
			file = filepath.Base(frame.File)
			pkg = filepath.Base(filepath.Dir(frame.File))
		}
	}

	var tag string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = a.Value.String()
			return false
		}
		return true
	})

	if pkg != "" && !allowed(pkg, h.cfg.enabledPackagesSet, h.cfg.disabledPackagesSet) {
		h.trace("package %q filtered: %s", pkg, r.Message)
		return nil
	}
	if file != "" && !allowed(file, h.cfg.enabledFilesSet, h.cfg.disabledFilesSet) {
		h.trace("file %q filtered: %s", file, r.Message)
		return nil
	}
	if !allowed(tag, h.cfg.enabledTagsSet, h.cfg.disabledTagsSet) {
		h.trace("tag %q filtered: %s", tag, r.Message)
		return nil
	}

	return h.baseHandler.Handle(ctx, r)
}

func (h *filteringHandler) trace(format string, args ...interface{}) {
	if debugFilter {
		fmt.Fprintf(os.Stderr, "[FILTER] "+format+"\n", args...)
	}
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
