package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lox/jokerpoker/internal/config"
)

// Globals are the flags shared by every command
type Globals struct {
	Config  string `short:"c" default:"jokerpoker.hcl" help:"Path to HCL configuration file"`
	Debug   bool   `help:"Enable debug logging (overrides config)"`
	NoColor bool   `help:"Disable coloured output"`
}

// load reads the config file and builds the logger it asks for
func (g *Globals) load() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	return cfg, setupLogger(os.Stderr, level), nil
}

// setupLogger writes timestamped, levelled logs to w
func setupLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}

// setupSignalHandler creates a context that is cancelled on interrupt signals
func setupSignalHandler(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
