package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bethropolis/jdiff/internal/event"
	"github.com/bethropolis/jdiff/internal/logger"
)

// RegisterThemeCommands registers :theme and :themes.
func RegisterThemeCommands(r *Registry) {
	themeCmdFunc := func(c *Context, args []string) error {
		themes := c.Themes()
		if themes == nil {
			return errors.New("themes unavailable")
		}
		if len(args) == 0 {
			c.Statusf("Current theme: %s", themes.Current().Name)
			return nil
		}

		themeName := strings.Join(args, " ") // Theme names may contain spaces
		if err := themes.SetTheme(themeName); err != nil {
			return fmt.Errorf("theme '%s' not found. Available: %s", themeName, strings.Join(themes.ListThemes(), ", "))
		}
		current := themes.Current().Name
		c.Publish(event.TypeThemeChanged, event.ThemeChangedData{Name: current})
		c.Statusf("Theme set to: %s", current)
		return nil
	}

	themeListCmdFunc := func(c *Context, args []string) error {
		themes := c.Themes()
		if themes == nil {
			return errors.New("themes unavailable")
		}
		c.Statusf("Available themes: %s", strings.Join(themes.ListThemes(), ", "))
		return nil
	}

	if err := r.Register("theme", themeCmdFunc); err != nil {
		logger.Warnf("Failed to register ':theme' command: %v", err)
	}
	if err := r.Register("themes", themeListCmdFunc); err != nil {
		logger.Warnf("Failed to register ':themes' command: %v", err)
	}
}
