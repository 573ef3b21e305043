package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/notesync/cmd/notesync/commands"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("notesync"),
		kong.Description("Sync Markdown notes into a documentation tree with navigation front matter."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	err := ctx.Run(&commands.Global{})
	ctx.FatalIfErrorf(err)
}
