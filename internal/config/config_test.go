package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"), nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultHistoryLimit, cfg.Editor.HistoryLimit)
	assert.Equal(t, DefaultMaxEditors, cfg.Editor.MaxEditors)
	assert.Equal(t, DefaultTickRate, cfg.Editor.TickRate())
	assert.True(t, cfg.Editor.LineNumbers)
	assert.Equal(t, DefaultProjectName, cfg.Database.Project)
}

func TestLoadFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[logger]
log_level = "debug"

[editor]
history_limit = 10
max_editors = 0
line_numbers = false

[database]
path = "/tmp/x.db"
project = "api"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var flags Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	_, err := flags.ParseFlags(fs, []string{"-project", "other", "-log-tags", "store, history"})
	require.NoError(t, err)

	cfg, err := Load(path, &flags)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, 10, cfg.Editor.HistoryLimit)
	assert.Equal(t, DefaultMaxEditors, cfg.Editor.MaxEditors, "invalid value reset by validate")
	assert.False(t, cfg.Editor.LineNumbers)
	assert.Equal(t, "/tmp/x.db", cfg.Database.Path)
	assert.Equal(t, "other", cfg.Database.Project, "flag overrides file")
	assert.Equal(t, []string{"store", "history"}, cfg.Logger.EnabledTags)
}

func TestLoadRejectsBrokenToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[editor\n"), 0o644))

	cfg, err := Load(path, nil)
	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultHistoryLimit, cfg.Editor.HistoryLimit)
}
