// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// TomlStyleDef is one style in a theme file.
type TomlStyleDef struct {
	Fg        *string `toml:"fg"` // pointers tell unset from false/empty
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
	Dim       *bool   `toml:"dim"`
}

// TomlTheme is the layout of a theme file.
type TomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]TomlStyleDef `toml:"styles"`
}

// LoadThemeFromFile parses a TOML theme file. A missing name defaults to the file name.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}

	theme, err := ParseTheme(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML theme file '%s': %w", filePath, err)
	}
	if theme.Name == "" {
		theme.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		logger.Debugf("Theme file '%s' missing 'name', using filename '%s'", filePath, theme.Name)
	}
	logger.Debugf("Successfully loaded theme '%s' from '%s'", theme.Name, filePath)
	return theme, nil
}

// ParseTheme decodes a TOML theme document. Styles inherit unset
// attributes from the document's Default style.
func ParseTheme(data string) (*Theme, error) {
	var tomlTheme TomlTheme
	metadata, err := toml.Decode(data, &tomlTheme)
	if err != nil {
		return nil, err
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Theme '%s': Unrecognized keys: %v", tomlTheme.Name, undecoded)
	}

	theme := &Theme{
		Name:   tomlTheme.Name,
		IsDark: tomlTheme.IsDark,
		Styles: make(map[string]tcell.Style),
	}

	baseStyle := tcell.StyleDefault
	if defaultTomlStyle, ok := tomlTheme.Styles[StyleDefault]; ok {
		var parseErr error
		baseStyle, parseErr = convertTomlStyle(defaultTomlStyle, tcell.StyleDefault)
		if parseErr != nil {
			logger.Warnf("Theme '%s': Failed to parse 'Default' style, using tcell default as base: %v", theme.Name, parseErr)
			baseStyle = tcell.StyleDefault
		}
	}
	theme.Styles[StyleDefault] = baseStyle

	for name, tomlStyle := range tomlTheme.Styles {
		if name == StyleDefault {
			continue
		}
		style, err := convertTomlStyle(tomlStyle, baseStyle)
		if err != nil {
			logger.Warnf("Theme '%s': Failed to parse style '%s', skipping: %v", theme.Name, name, err)
			continue
		}
		theme.Styles[name] = style
	}
	return theme, nil
}

// convertTomlStyle applies the set fields of tomlStyle on top of baseStyle.
func convertTomlStyle(tomlStyle TomlStyleDef, baseStyle tcell.Style) (tcell.Style, error) {
	style := baseStyle

	if tomlStyle.Fg != nil {
		color, err := parseColorString(*tomlStyle.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground color '%s': %w", *tomlStyle.Fg, err)
		}
		style = style.Foreground(color)
	}
	if tomlStyle.Bg != nil {
		color, err := parseColorString(*tomlStyle.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background color '%s': %w", *tomlStyle.Bg, err)
		}
		style = style.Background(color)
	}

	if tomlStyle.Bold != nil {
		style = style.Bold(*tomlStyle.Bold)
	}
	if tomlStyle.Italic != nil {
		style = style.Italic(*tomlStyle.Italic)
	}
	if tomlStyle.Underline != nil {
		style = style.Underline(*tomlStyle.Underline)
	}
	if tomlStyle.Reverse != nil {
		style = style.Reverse(*tomlStyle.Reverse)
	}
	if tomlStyle.Dim != nil {
		style = style.Dim(*tomlStyle.Dim)
	}
	return style, nil
}

// parseColorString accepts #RRGGBB, "reset", "default" and tcell color names.
func parseColorString(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color format '%s', must be #RRGGBB", s)
		}
		val, err := strconv.ParseInt(s[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex value '%s': %w", s, err)
		}
		return tcell.NewHexColor(int32(val)), nil
	}

	switch s {
	case "reset":
		return tcell.ColorReset, nil
	case "default":
		return tcell.ColorDefault, nil
	}
	if color, ok := tcell.ColorNames[s]; ok {
		return color, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color format or name '%s'", s)
}
