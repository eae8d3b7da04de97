package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/jokerpoker/internal/config"
	"github.com/lox/jokerpoker/internal/game"
	"github.com/lox/jokerpoker/internal/randutil"
)

// PlayCmd deals one game. Flags override the config file.
type PlayCmd struct {
	Players  []string `short:"p" help:"Player names in seating order"`
	HandSize int      `short:"n" help:"Cards dealt to each player"`
	NoJokers bool     `help:"Play without the two Jokers"`
	Seed     int64    `help:"RNG seed (0 for random)"`
	Drop     []string `short:"d" help:"Players who leave before the showdown"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return playSession(os.Stdout, cfg, logger, !g.NoColor)
}

func (c *PlayCmd) apply(cfg *config.Config) {
	if len(c.Players) > 0 {
		cfg.Game.Players = c.Players
	}
	if c.HandSize > 0 {
		cfg.Game.HandSize = c.HandSize
	}
	if c.NoJokers {
		no := false
		cfg.Game.IncludeJokers = &no
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if len(c.Drop) > 0 {
		cfg.Game.Drop = c.Drop
	}
}

// playSession deals, shows the hands, lets the dropped players leave and
// announces the winner
func playSession(w io.Writer, cfg *config.Config, logger *log.Logger, color bool) error {
	seed := randutil.Seed(cfg.Game.Seed)
	g, err := game.NewGame(cfg.Game.Players,
		game.WithJokers(cfg.Jokers()),
		game.WithRNG(randutil.New(seed)),
		game.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	logger.Debug("Starting game", "game", g.ID(), "seed", seed, "players", len(cfg.Game.Players))

	if err := g.Deal(cfg.Game.HandSize); err != nil {
		return err
	}

	display := game.NewHandDisplay(w, color)
	display.ShowHands(g)

	for _, name := range cfg.Game.Drop {
		fmt.Fprintln(w)
		display.ShowNotice(fmt.Sprintf("%s drops out of the game.", name))
		if !g.RemovePlayer(name) {
			logger.Warn("Player not seated", "player", name)
		}
		display.ShowHands(g)
	}

	result, ok := g.DetermineWinner()
	fmt.Fprintln(w)
	if !ok {
		display.ShowNotice("Nobody is left at the table.")
		return nil
	}
	display.ShowWinner(result)
	return nil
}
