package autosave

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/jdiff/internal/commands"
	"github.com/bethropolis/jdiff/internal/config"
	"github.com/bethropolis/jdiff/internal/event"
	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/bethropolis/jdiff/internal/plugin"
	"github.com/bethropolis/jdiff/internal/utils"
)

var _ plugin.Plugin = (*AutoSave)(nil)

// AutoSave runs :save once the focused editor has been idle and dirty for a
// while. It is toggled with :autosave on|off.
type AutoSave struct {
	api plugin.API

	mutex   sync.RWMutex
	enabled bool
	delay   time.Duration

	debouncer utils.Debouncer
}

// New creates a new instance of the AutoSave plugin.
func New() plugin.Plugin {
	return &AutoSave{delay: config.DefaultAutosaveDelay}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize reads the [editor] config, subscribes to buffer changes and
// registers :autosave.
func (p *AutoSave) Initialize(api plugin.API) error {
	p.api = api

	cfg := api.EditorConfig()
	p.mutex.Lock()
	p.enabled = cfg.Autosave
	if d := cfg.AutosaveInterval(); d > 0 {
		p.delay = d
	}
	enabled, delay := p.enabled, p.delay
	p.mutex.Unlock()

	api.Subscribe(event.TypeBufferModified, p.onBufferModified)
	if err := api.RegisterCommand("autosave", p.command); err != nil {
		return fmt.Errorf("failed to register 'autosave' command: %w", err)
	}

	logger.Infof("%s initialized. Enabled: %v, Delay: %v", p.Name(), enabled, delay)
	return nil
}

// Shutdown cancels a pending save.
func (p *AutoSave) Shutdown() error {
	if p.debouncer.Stop() {
		logger.Debugf("%s: pending save cancelled", p.Name())
	}
	return nil
}

// Enabled reports whether autosave is on.
func (p *AutoSave) Enabled() bool {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.enabled
}

// SetEnabled turns autosave on or off. Turning it off cancels a pending save.
func (p *AutoSave) SetEnabled(on bool) {
	p.mutex.Lock()
	p.enabled = on
	p.mutex.Unlock()
	if !on {
		p.debouncer.Stop()
	}
}

// onBufferModified runs on the state owner; it only schedules the save.
func (p *AutoSave) onBufferModified(e event.Event) bool {
	p.mutex.RLock()
	enabled, delay := p.enabled, p.delay
	p.mutex.RUnlock()

	if enabled {
		p.debouncer.Debounce(delay, p.saveIfModified)
	}
	return false
}

func (p *AutoSave) saveIfModified() {
	if !p.Enabled() {
		return
	}
	snap, err := p.api.Snapshot()
	if err != nil {
		logger.Warnf("%s: cannot read state: %v", p.Name(), err)
		return
	}
	active, ok := snap.Active()
	if !ok || !active.Dirty {
		logger.Debugf("%s: buffer not modified, skipping auto-save.", p.Name())
		return
	}
	logger.Infof("%s: auto-saving editor %d", p.Name(), snap.ActiveEditor+1)
	p.api.Submit(input.ExecuteCommand("save"))
}

func (p *AutoSave) command(c *commands.Context, args []string) error {
	if len(args) == 0 {
		p.SetEnabled(!p.Enabled())
	} else {
		switch args[0] {
		case "on":
			p.SetEnabled(true)
		case "off":
			p.SetEnabled(false)
		default:
			return fmt.Errorf("usage: autosave [on|off]")
		}
	}

	state := "off"
	if p.Enabled() {
		state = "on"
	}
	c.Statusf("Autosave %s", state)
	return nil
}
