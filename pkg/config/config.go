// Package config loads server settings from a TOML or YAML file.
//
// The config path can be given explicitly or through the DIVIDE_CONFIG
// environment variable. Without a file, Default is used.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "DIVIDE_CONFIG"

// Config is the root configuration
type Config struct {
	Server  ServerConfig  `toml:"server" yaml:"server"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Display DisplayConfig `toml:"display" yaml:"display"`
}

// ServerConfig configures the MCP server identity
type ServerConfig struct {
	Name string `toml:"name" yaml:"name"`
}

// LogConfig configures logging
type LogConfig struct {
	Level string `toml:"level" yaml:"level"` // debug, info, warn, error
	File  string `toml:"file" yaml:"file"`   // Optional log file, stderr when empty
}

// DisplayConfig controls how results are printed by the CLI
type DisplayConfig struct {
	// Decimal places for printed numbers, -1 for the shortest representation
	Precision *int `toml:"precision" yaml:"precision"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a .toml, .yaml or .yml file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by DIVIDE_CONFIG, or returns Default when unset
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		cfg := Default()
		return &cfg, nil
	}
	return Load(path)
}

// PrecisionOrDefault returns the configured display precision
func (c Config) PrecisionOrDefault() int {
	if c.Display.Precision == nil {
		return -1
	}
	return *c.Display.Precision
}

// Validate checks values that defaults cannot repair
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if p := c.PrecisionOrDefault(); p < -1 {
		return fmt.Errorf("invalid display precision %d", p)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Name == "" {
		c.Server.Name = "Go Divide MCP"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Display.Precision == nil {
		p := -1
		c.Display.Precision = &p
	}
}
