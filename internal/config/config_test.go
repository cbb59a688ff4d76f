package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, fileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the yml file", func(t *testing.T) {
		// Given: a config file asking the AI to open
		path := writeConfig(t, t.TempDir(), "log-level: debug\nfirst-turn: ai\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.True(t, conf.AIMovesFirst())
	})

	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "log-level: info\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, FirstTurnHuman, conf.FirstTurn)
		assert.False(t, conf.AIMovesFirst())
	})

	t.Run("Reads the environment when no file is given", func(t *testing.T) {
		t.Setenv("TICTACTOE_FIRST_TURN", FirstTurnAI)

		conf, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, FirstTurnAI, conf.FirstTurn)
	})

	t.Run("Rejects an unknown first turn", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "first-turn: nobody\n")

		_, err := Load(path)

		assert.ErrorIs(t, err, ErrInvalidFirstTurn)
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestLocate(t *testing.T) {
	t.Run("Prefers the working directory", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "first-turn: human\n")

		assert.Equal(t, path, Locate(dir))
	})

	t.Run("Falls back to the XDG config home", func(t *testing.T) {
		// Given: no local config but one under XDG_CONFIG_HOME
		home := t.TempDir()
		t.Cleanup(xdg.Reload)
		t.Setenv("XDG_CONFIG_HOME", home)
		xdg.Reload()

		require.NoError(t, os.MkdirAll(filepath.Join(home, appDir), 0o700))
		path := writeConfig(t, filepath.Join(home, appDir), "first-turn: ai\n")

		// Then: the XDG file is found
		assert.Equal(t, path, Locate(t.TempDir()))
	})

	t.Run("Returns empty when nothing is found", func(t *testing.T) {
		t.Cleanup(xdg.Reload)
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
		xdg.Reload()

		assert.Empty(t, Locate(t.TempDir()))
	})
}
