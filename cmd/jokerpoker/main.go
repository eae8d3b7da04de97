package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Deal a game, drop players and announce the winner"`
	Eval     EvalCmd          `cmd:"" help:"Evaluate a hand given as text"`
	Simulate SimulateCmd      `cmd:"" help:"Play many seeded games and report hand statistics"`
	Schedule ScheduleCmd      `cmd:"" help:"Run the configured tasks one after another"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("jokerpoker"),
		kong.Description("Card table with a Joker-aware poker hand evaluator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
