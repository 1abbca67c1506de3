package commands

import (
	"context"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/obsidian2md/internal/config"
	"git.home.luguber.info/inful/obsidian2md/internal/metrics"
	"git.home.luguber.info/inful/obsidian2md/internal/preview"
)

// PreviewCmd implements the 'preview' command.
type PreviewCmd struct {
	Root   string `short:"r" help:"Vault root directory (overrides source.root from config)"`
	Listen string `short:"l" help:"Listen address (overrides preview.listen from config)"`
	Render *bool  `negatable:"" help:"Render HTML, recommended for browser preview (overrides output.render from config)"`
}

// applyOverrides folds the command flags into the loaded configuration. The
// render flag only overrides when given on the command line.
func (p *PreviewCmd) applyOverrides(cfg *config.Config) {
	if p.Listen != "" {
		cfg.Preview.Listen = p.Listen
	}
	if p.Render != nil {
		cfg.Output.Render = *p.Render
	}
}

func (p *PreviewCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config, p.Root)
	if err != nil {
		return err
	}
	p.applyOverrides(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rec := metrics.NewPrometheusRecorder(nil)
	return preview.NewServer(cfg, rec).Run(ctx)
}
