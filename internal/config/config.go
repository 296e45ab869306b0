package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Defaults mirror the stock simulator: a 101x100 grid drawn at 5
// pixels per cell, 60 frames per second, one sim tick every 10th
// frame.
const (
	DefaultScale     = 5
	DefaultTPS       = 60
	DefaultTickEvery = 10
)

// Config carries the runtime settings shared by the GUI, TUI and
// trace frontends.
type Config struct {
	Scale     int `yaml:"scale"`
	TPS       int `yaml:"tps"`
	TickEvery int `yaml:"tick_every"`
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
}

// Default returns a Config populated with the stock settings. Width
// and Height zero means "let the simulation pick its defaults".
func Default() *Config {
	return &Config{
		Scale:     DefaultScale,
		TPS:       DefaultTPS,
		TickEvery: DefaultTickEvery,
	}
}

// Bind attaches the tunable settings to a cobra command's flag set.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.TickEvery, "tick-every", c.TickEvery, "advance the sim every Nth frame")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells (0 = default)")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells (0 = default)")
}

// Validate rejects settings the frontends cannot run with.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.TickEvery <= 0 {
		return fmt.Errorf("tick-every must be positive, got %d", c.TickEvery)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("grid dimensions must not be negative")
	}
	return nil
}

// Load reads a yaml config file, applying its values over defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to a yaml file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
