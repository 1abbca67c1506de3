package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/obsidian2md/cmd/obsidian2md/commands"
	"git.home.luguber.info/inful/obsidian2md/internal/version"
)

func main() {
	// Optional .env for local overrides; absence is not an error.
	_ = godotenv.Load()

	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("obsidian2md"),
		kong.Description("Rewrite an Obsidian vault into portable markdown."),
		kong.Vars{"version": fmt.Sprintf("obsidian2md %s (commit %s, built %s)",
			version.Version, version.GitCommit, version.BuildTime)},
	)

	err := ctx.Run(&commands.Global{}, &cli)
	ctx.FatalIfErrorf(err)
}
