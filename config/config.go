// Package config loads the host configuration for the tool runner.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the persisted config file schema.
type Config struct {
	// Shell overrides the shell binary used by the command execution tool.
	// Equivalent to setting ANVIL_SHELL.
	Shell string `toml:"shell"`

	// Env holds extra environment pairs injected into executed commands.
	// Values may reference the host environment as ${env:NAME}.
	Env map[string]string `toml:"env"`

	// LogLevel is a zerolog level name; empty disables logging.
	LogLevel string `toml:"log_level"`

	// LogFile receives the structured log. Empty means no log output.
	LogFile string `toml:"log_file"`

	Source string `toml:"-"`
}

func Default() Config {
	return Config{}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".anvil", "config.toml")
}

// Load reads the config at path, falling back to DefaultPath. A missing
// file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
