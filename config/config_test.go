package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/anvil/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.toml")
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, path, cfg.Source)
		assert.Empty(t, cfg.Shell)
	})

	t.Run("parses the file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
shell = "/bin/zsh"
log_level = "debug"
log_file = "/tmp/anvil.log"

[env]
EDITOR = "${env:EDITOR}"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/bin/zsh", cfg.Shell)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "/tmp/anvil.log", cfg.LogFile)
		assert.Equal(t, "${env:EDITOR}", cfg.Env["EDITOR"])
	})

	t.Run("rejects malformed toml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("shell = ["), 0o644))

		_, err := config.Load(path)
		require.Error(t, err)
	})
}
