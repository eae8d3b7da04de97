package main

import (
	"fmt"
	"os"

	"github.com/coder/quartz"

	"github.com/lox/jokerpoker/internal/scheduler"
)

// ScheduleCmd runs the tasks declared in the config file
type ScheduleCmd struct{}

func (c *ScheduleCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if len(cfg.Tasks) == 0 {
		logger.Warn("No tasks configured", "config", g.Config)
		return nil
	}

	s := scheduler.New(quartz.NewReal(), os.Stdout, logger)
	for i, delay := range cfg.Delays() {
		if err := s.Add(cfg.Tasks[i].Name, delay); err != nil {
			return err
		}
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	logger.Info("Running schedule", "tasks", s.Len())
	return s.Run(ctx)
}
