package commands

import (
	"fmt"

	"git.home.luguber.info/inful/obsidian2md/internal/vault"
)

// IndexCmd implements the 'index' command: scan only, print a summary.
type IndexCmd struct {
	Root string `short:"r" help:"Vault root directory (overrides source.root from config)"`
}

func (i *IndexCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config, i.Root)
	if err != nil {
		return err
	}

	ix := vault.Scan(cfg.Source.Root, vault.ScanOptions{
		DocExtensions:   cfg.Source.DocExtensions,
		ImageExtensions: cfg.Source.ImageExtensions,
		FileExtensions:  cfg.Source.FileExtensions,
	})

	fmt.Printf("Vault: %s\n", cfg.Source.Root)
	fmt.Printf("Articles: %d\n", ix.ArticleCount())
	fmt.Printf("Assets:   %d\n", ix.AssetCount())
	return nil
}
