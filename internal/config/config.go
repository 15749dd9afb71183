// Package config loads the YAML configuration of the gridpath command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/internal/puzzles"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Search SearchConfig `yaml:"search"`
	Risk   RiskConfig   `yaml:"risk"`
	Valley ValleyConfig `yaml:"valley"`
	Basins BasinsConfig `yaml:"basins"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// SearchConfig configures the search engine.
type SearchConfig struct {
	Heuristic bool `yaml:"heuristic"` // A* with a Manhattan estimate
}

// RiskConfig configures the risk puzzle.
type RiskConfig struct {
	Tiles   int `yaml:"tiles"`
	Modulus int `yaml:"modulus"`
}

// ValleyConfig configures the valley puzzle.
type ValleyConfig struct {
	Trips int `yaml:"trips"`
}

// BasinsConfig configures the basins puzzle.
type BasinsConfig struct {
	Top int `yaml:"top"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	d := puzzles.DefaultSettings()
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Search: SearchConfig{
			Heuristic: d.AStar,
		},
		Risk: RiskConfig{
			Tiles:   d.RiskTiles,
			Modulus: d.RiskModulus,
		},
		Valley: ValleyConfig{
			Trips: d.ValleyTrips,
		},
		Basins: BasinsConfig{
			Top: d.BasinsTop,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks the log level and every puzzle setting.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if err := c.Settings().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Settings converts the puzzle sections into solver settings.
func (c *Config) Settings() puzzles.Settings {
	return puzzles.Settings{
		AStar:       c.Search.Heuristic,
		RiskTiles:   c.Risk.Tiles,
		RiskModulus: c.Risk.Modulus,
		ValleyTrips: c.Valley.Trips,
		BasinsTop:   c.Basins.Top,
	}
}
