// Package config loads the HCL file that describes a game session.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	DefaultHandSize = 3
	DefaultLogLevel = "info"
	DefaultFile     = "jokerpoker.hcl"
)

// DefaultPlayers is the table used when the config names nobody
var DefaultPlayers = []string{"Dean", "Alice", "Bob", "Charlie", "Kailash"}

// Config represents the complete session configuration
type Config struct {
	Game  *GameSettings `hcl:"game,block"`
	Log   *LogSettings  `hcl:"log,block"`
	Tasks []TaskConfig  `hcl:"task,block"`
}

// GameSettings contains the table and deck setup
type GameSettings struct {
	Players       []string `hcl:"players,optional"`
	HandSize      int      `hcl:"hand_size,optional"`
	IncludeJokers *bool    `hcl:"include_jokers,optional"`
	Seed          int64    `hcl:"seed,optional"`
	Drop          []string `hcl:"drop,optional"`
}

// LogSettings contains logging configuration
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// TaskConfig defines a scheduled task
type TaskConfig struct {
	Name  string `hcl:"name,label"`
	Delay string `hcl:"delay,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if len(c.Game.Players) == 0 {
		c.Game.Players = append([]string(nil), DefaultPlayers...)
	}
	if c.Game.HandSize == 0 {
		c.Game.HandSize = DefaultHandSize
	}
	if c.Game.IncludeJokers == nil {
		include := true
		c.Game.IncludeJokers = &include
	}

	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}

	for i := range c.Tasks {
		if c.Tasks[i].Delay == "" {
			c.Tasks[i].Delay = "0s"
		}
	}
}

// Jokers reports whether the deck carries the two Jokers
func (c *Config) Jokers() bool {
	return c.Game.IncludeJokers == nil || *c.Game.IncludeJokers
}

// DeckSize returns the number of cards in a fresh deck
func (c *Config) DeckSize() int {
	if c.Jokers() {
		return 54
	}
	return 52
}

// Validate validates the configuration
func (c *Config) Validate() error {
	players := c.Game.Players
	if len(players) < 2 {
		return fmt.Errorf("at least two players must be configured, got %d", len(players))
	}

	seen := make(map[string]bool, len(players))
	for _, name := range players {
		if name == "" {
			return fmt.Errorf("player names must not be empty")
		}
		if seen[name] {
			return fmt.Errorf("duplicate player %s", name)
		}
		seen[name] = true
	}

	maxHand := c.DeckSize() / len(players)
	if c.Game.HandSize < 1 || c.Game.HandSize > maxHand {
		return fmt.Errorf("hand size must be between 1 and %d for %d players, got %d",
			maxHand, len(players), c.Game.HandSize)
	}

	for _, name := range c.Game.Drop {
		if !seen[name] {
			return fmt.Errorf("cannot drop %s: not a player", name)
		}
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	for _, task := range c.Tasks {
		d, err := time.ParseDuration(task.Delay)
		if err != nil {
			return fmt.Errorf("task %s: invalid delay %q: %w", task.Name, task.Delay, err)
		}
		if d < 0 {
			return fmt.Errorf("task %s: delay must not be negative", task.Name)
		}
	}

	return nil
}

// Level returns the configured log level
func (c *Config) Level() (log.Level, error) {
	switch c.Log.Level {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("invalid log level %q", c.Log.Level)
	}
}

// Delays returns every task's delay in order. Validate first.
func (c *Config) Delays() []time.Duration {
	delays := make([]time.Duration, len(c.Tasks))
	for i, task := range c.Tasks {
		delays[i], _ = time.ParseDuration(task.Delay)
	}
	return delays
}
