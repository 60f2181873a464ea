// plugins/wordcount/wordcount.go
package wordcount

import (
	"fmt"
	"strings"

	"github.com/bethropolis/jdiff/internal/commands"
	"github.com/bethropolis/jdiff/internal/plugin"
)

var _ plugin.Plugin = (*WordCount)(nil)

// WordCount counts lines, words and bytes of the focused editor.
type WordCount struct{}

// New creates a new instance of the WordCount plugin.
func New() plugin.Plugin {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "wordcount"
}

// Initialize registers :wordcount and its short alias :wc.
func (p *WordCount) Initialize(api plugin.API) error {
	for _, name := range []string{"wordcount", "wc"} {
		if err := api.RegisterCommand(name, p.executeWordCount); err != nil {
			return fmt.Errorf("failed to register '%s' command: %w", name, err)
		}
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

func (p *WordCount) executeWordCount(c *commands.Context, args []string) error {
	lines := c.Editor().ExportLines()
	stats := Count(lines)
	c.Statusf("Lines: %d, Words: %d, Bytes: %d", stats.Lines, stats.Words, stats.Bytes)
	return nil
}

// Stats is the result of Count.
type Stats struct {
	Lines int
	Words int
	Bytes int
}

// Count counts lines, whitespace-separated words and bytes, newlines included.
func Count(lines []string) Stats {
	s := Stats{Lines: len(lines)}
	for i, line := range lines {
		s.Words += len(strings.Fields(line))
		s.Bytes += len(line)
		if i > 0 {
			s.Bytes++
		}
	}
	return s
}
