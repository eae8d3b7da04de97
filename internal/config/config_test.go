package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jokerpoker.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, DefaultPlayers, cfg.Game.Players)
	assert.Equal(t, DefaultHandSize, cfg.Game.HandSize)
	assert.True(t, cfg.Jokers())
	assert.Equal(t, 54, cfg.DeckSize())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Tasks)
	require.NoError(t, cfg.Validate())
}

func TestLoadFullFile(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
game {
  players        = ["Dean", "Alice", "Bob"]
  hand_size      = 5
  include_jokers = false
  seed           = 42
  drop           = ["Bob"]
}

log {
  level = "debug"
}

task "shuffle" {
  delay = "1s"
}

task "deal" {
  delay = "250ms"
}

task "reveal" {}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"Dean", "Alice", "Bob"}, cfg.Game.Players)
	assert.Equal(t, 5, cfg.Game.HandSize)
	assert.False(t, cfg.Jokers())
	assert.Equal(t, 52, cfg.DeckSize())
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, []string{"Bob"}, cfg.Game.Drop)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)

	require.Len(t, cfg.Tasks, 3)
	assert.Equal(t, "shuffle", cfg.Tasks[0].Name)
	assert.Equal(t, []time.Duration{time.Second, 250 * time.Millisecond, 0}, cfg.Delays())
}

func TestLoadPartialFileAppliesDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
game {
  seed = 7
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Game.Seed)
	assert.Equal(t, DefaultPlayers, cfg.Game.Players)
	assert.Equal(t, DefaultHandSize, cfg.Game.HandSize)
	assert.True(t, cfg.Jokers())
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoadRejectsBadHCL(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, `game {`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")

	_, err = Load(writeConfig(t, `game { colour = "red" }`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"one player", func(c *Config) { c.Game.Players = []string{"Dean"} }},
		{"duplicate player", func(c *Config) { c.Game.Players = []string{"Dean", "Dean"} }},
		{"empty name", func(c *Config) { c.Game.Players = []string{"Dean", ""} }},
		{"negative hand", func(c *Config) { c.Game.HandSize = -1 }},
		{"hand too big", func(c *Config) { c.Game.HandSize = 11 }},
		{"drop stranger", func(c *Config) { c.Game.Drop = []string{"Zed"} }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad delay", func(c *Config) { c.Tasks = []TaskConfig{{Name: "x", Delay: "soon"}} }},
		{"negative delay", func(c *Config) { c.Tasks = []TaskConfig{{Name: "x", Delay: "-1s"}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			require.NoError(t, cfg.Validate())
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateHandSizeLimit(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.Game.Players = []string{"A", "B", "C", "D", "E", "F"}

	// 54 cards cover nine each for six players
	cfg.Game.HandSize = 9
	require.NoError(t, cfg.Validate())

	no := false
	cfg.Game.IncludeJokers = &no
	require.Error(t, cfg.Validate(), "52 cards only cover eight each")
}
