package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "questlog.toml")
		content := `
[quest_log]
count_hidden = false
show_tasks = "onlyCurrent"

[view]
locale = "fr"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.False(t, cfg.QuestLog.CountHidden)
		require.Equal(t, "onlyCurrent", cfg.QuestLog.ShowTasks)
		require.Equal(t, "fr", cfg.View.Locale)
		require.Equal(t, 8, cfg.View.Concurrency)
		require.Equal(t, "bookmarks", cfg.QuestLog.NavStyle)
	})

	t.Run("example file matches defaults", func(t *testing.T) {
		cfg, err := Load("questlog.example.toml")
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err)
	})
}
