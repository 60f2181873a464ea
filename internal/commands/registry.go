// Package commands runs ':' command lines against the state tree. Commands
// execute inside a dispatch round, on the goroutine that owns the state.
package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/jdiff/internal/logger"
)

// ErrUnknownCommand is returned for a command name nobody registered.
var ErrUnknownCommand = errors.New("unknown command")

// Func runs one command. args are the whitespace-separated words after the name.
type Func func(c *Context, args []string) error

// Registry maps command names to functions.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Func)}
}

// Register adds a command. Names are unique and may not contain spaces.
func (r *Registry) Register(name string, fn Func) error {
	if name == "" || strings.ContainsAny(name, " \t") {
		return fmt.Errorf("invalid command name %q", name)
	}
	if fn == nil {
		return fmt.Errorf("command '%s' has no function", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	r.commands[name] = fn
	logger.DebugTagf("commands", "Registered command ':%s'", name)
	return nil
}

// Lookup returns the command called name.
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.commands[name]
	return fn, ok
}

// Names returns every registered command name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse splits a command line into its name and arguments.
func Parse(line string) (name string, args []string) {
	parts := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), ":"))
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}
