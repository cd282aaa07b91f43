package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Parse   ParseCmd         `cmd:"" help:"Parse PokerCraft hand history exports into hand and action tables"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hhparse"),
		kong.Description("PokerOK / GGNetwork hand history parser"),
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
