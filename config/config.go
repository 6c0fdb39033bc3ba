// Package config loads the tool configuration file: named source
// connections and the scratch directory for defaulted outputs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Connection describes a single named source the tools can read from.
type Connection struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	URL  string `yaml:"url"`
}

// Config is the root of the configuration file.
type Config struct {
	// ScratchDir is where outputs land when the user doesn't name a
	// destination. Defaults to the system temp directory.
	ScratchDir string `yaml:"scratch_dir"`

	Connections []Connection `yaml:"connections"`
}

var ErrUnknownConnection = func(name string) error {
	return fmt.Errorf("no connection named %q in config", name)
}

func Default() *Config {
	return &Config{
		ScratchDir: os.TempDir(),
	}
}

// Load reads the configuration from path. A missing file yields the
// defaults, any other read or parse failure is an error.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	cfg := new(Config)
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	if cfg.ScratchDir == "" {
		cfg.ScratchDir = os.TempDir()
	}

	return cfg, nil
}

// GetConnection finds a connection by name or id.
func (c *Config) GetConnection(nameOrID string) (*Connection, error) {
	for i := range c.Connections {
		conn := &c.Connections[i]
		if conn.Name == nameOrID || conn.ID == nameOrID {
			return conn, nil
		}
	}

	return nil, ErrUnknownConnection(nameOrID)
}
