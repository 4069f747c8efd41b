package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"agent-ecosystem/internal/sims/ecosystem"

	"gopkg.in/yaml.v3"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	AgentsFile string
	FeedURL    string
	ConfigFile string

	Width int
	Tick  time.Duration
	Seed  int64
	HUD   bool

	// Ecosystem holds key/value overrides understood by ecosystem.FromMap.
	Ecosystem map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 960, Tick: 250 * time.Millisecond, HUD: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.AgentsFile, "agents", c.AgentsFile, "agents document (YAML or JSON)")
	fs.StringVar(&c.FeedURL, "feed", c.FeedURL, "websocket URL streaming agents documents")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML configuration file")
	fs.IntVar(&c.Width, "width", c.Width, "initial grid width in pixels")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "simulation tick interval")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "background noise seed (0 = time based)")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the side panel")
}

type fileConfig struct {
	Agents    *string           `yaml:"agents"`
	Feed      *string           `yaml:"feed"`
	Width     *int              `yaml:"width"`
	TickMs    *int              `yaml:"tick_ms"`
	Seed      *int64            `yaml:"seed"`
	HUD       *bool             `yaml:"hud"`
	Ecosystem map[string]string `yaml:"ecosystem"`
}

// LoadFile overlays settings from a YAML file. Keys absent from the file keep
// their current values.
func (c *Config) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if fc.Agents != nil {
		c.AgentsFile = *fc.Agents
	}
	if fc.Feed != nil {
		c.FeedURL = *fc.Feed
	}
	if fc.Width != nil {
		c.Width = *fc.Width
	}
	if fc.TickMs != nil {
		if *fc.TickMs <= 0 {
			return fmt.Errorf("%s: tick_ms must be positive, got %d", path, *fc.TickMs)
		}
		c.Tick = time.Duration(*fc.TickMs) * time.Millisecond
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if fc.HUD != nil {
		c.HUD = *fc.HUD
	}
	if len(fc.Ecosystem) > 0 {
		if c.Ecosystem == nil {
			c.Ecosystem = map[string]string{}
		}
		for k, v := range fc.Ecosystem {
			c.Ecosystem[k] = v
		}
	}
	return nil
}

// EcosystemConfig builds the world configuration, applying the seed flag.
func (c *Config) EcosystemConfig() ecosystem.Config {
	overrides := map[string]string{}
	for k, v := range c.Ecosystem {
		overrides[k] = v
	}
	if c.Seed != 0 {
		overrides["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return ecosystem.FromMap(overrides)
}
