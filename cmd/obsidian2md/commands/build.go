package commands

import (
	"log/slog"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/obsidian2md/internal/logfields"
	"git.home.luguber.info/inful/obsidian2md/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Root   string `short:"r" help:"Vault root directory (overrides source.root from config)"`
	Output string `short:"o" help:"Output directory (overrides output.directory from config)"`
	Render bool   `help:"Render HTML instead of portable markdown"`
	Clean  bool   `help:"Clean the output directory before building"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config, b.Root)
	if err != nil {
		return err
	}
	if b.Output != "" {
		cfg.Output.Directory = b.Output
	}
	cfg.Output.Render = cfg.Output.Render || b.Render
	cfg.Output.Clean = cfg.Output.Clean || b.Clean

	buildID := uuid.NewString()
	slog.Info("Starting vault build",
		logfields.BuildID(buildID),
		logfields.Root(cfg.Source.Root),
		slog.String("output", cfg.Output.Directory),
		slog.Bool("render", cfg.Output.Render))

	result, err := site.NewBuilder(cfg, nil).Build()
	if err != nil {
		return err
	}

	slog.Info("Vault build finished",
		logfields.BuildID(buildID),
		slog.Int("documents", result.Documents),
		slog.Int("drafts", result.Drafts),
		logfields.Assets(result.Assets))
	return nil
}
