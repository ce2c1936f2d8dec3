package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play an interactive game (default)"`
	Odds    OddsCmd          `cmd:"" help:"Show the odds of scoring each category with a single throw"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("yatzy"),
		kong.Description("Turn-based Yatzy for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
