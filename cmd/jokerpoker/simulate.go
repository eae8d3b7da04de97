package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/jokerpoker/internal/fileutil"
	"github.com/lox/jokerpoker/internal/simulator"
)

// SimulateCmd plays many games with the configured table
type SimulateCmd struct {
	Games   int    `default:"10000" help:"Number of games to simulate"`
	Seed    int64  `help:"RNG seed (0 uses the config seed, then random)"`
	Workers int    `help:"Worker goroutines (0 for one per CPU)"`
	Output  string `short:"o" help:"Also write the summary to this file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	seed := cfg.Game.Seed
	if c.Seed != 0 {
		seed = c.Seed
	}

	// Per-game logs are too chatty for thousands of games
	gameLogger := logger.WithPrefix("sim")
	if !g.Debug {
		gameLogger.SetLevel(log.WarnLevel)
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	sim := simulator.New(simulator.Config{
		Games:    c.Games,
		Players:  cfg.Game.Players,
		HandSize: cfg.Game.HandSize,
		Jokers:   cfg.Jokers(),
		Drop:     cfg.Game.Drop,
		Seed:     seed,
		Workers:  c.Workers,
		Logger:   gameLogger,
	})

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("Simulation finished", "games", stats.Games, "seed", sim.Seed(), "elapsed", time.Since(start).Round(time.Millisecond))

	summary := stats.Summary()
	fmt.Fprint(os.Stdout, summary)

	if c.Output != "" {
		if err := fileutil.WriteFileAtomic(c.Output, []byte(summary), 0o644); err != nil {
			return err
		}
		logger.Info("Wrote summary", "file", c.Output)
	}
	return nil
}
