// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names used by the renderers.
const (
	StyleDefault           = "Default"
	StyleTitle             = "Title"
	StyleHint              = "Hint"
	StyleLineNumber        = "LineNumber"
	StyleLineNumberActive  = "LineNumber.active"
	StyleTab               = "Tab"
	StyleTabActive         = "Tab.active"
	StyleCommandBar        = "CommandBar"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBar.modified"
	StyleStatusBarMode     = "StatusBar.mode"
	StyleStatusBarMessage  = "StatusBar.message"
	StyleCounter           = "Counter"
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style. Missing names fall back to the part
// before the first dot, then to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// JdiffDark is the built-in theme.
var JdiffDark = newJdiffDark()

func newJdiffDark() Theme {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	blue := tcell.NewHexColor(0x61afef)
	cyan := tcell.NewHexColor(0x56b6c2)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)
	bar := tcell.StyleDefault.Background(background).Foreground(foreground)

	return Theme{
		Name:   "Jdiff Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:           base,
			StyleTitle:             base.Foreground(blue).Bold(true),
			StyleHint:              base.Foreground(muted),
			StyleLineNumber:        base.Foreground(muted),
			StyleLineNumberActive:  base.Foreground(yellow).Bold(true),
			StyleTab:               bar.Foreground(muted),
			StyleTabActive:         bar.Foreground(foreground).Bold(true).Underline(true),
			StyleCommandBar:        base,
			StyleStatusBar:         bar,
			StyleStatusBarModified: bar.Foreground(yellow),
			StyleStatusBarMode:     bar.Foreground(green).Bold(true),
			StyleStatusBarMessage:  bar.Bold(true),
			StyleCounter:           base.Foreground(cyan).Bold(true),
		},
	}
}
