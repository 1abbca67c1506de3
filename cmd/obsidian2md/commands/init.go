package commands

import (
	"fmt"
	"os"
)

// InitCmd writes a starter configuration file.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

const starterConfig = `# obsidian2md configuration
source:
  root: ./vault
  # image_extensions: [png, jpg, jpeg, svg, gif, webp, avif]
  # file_extensions: [apkg, pdf, doc, docx, txt]

markdown:
  strip_hashtags: true
  convert_callouts: true
  callout_style: admonition  # admonition | legacy

output:
  directory: ./out
  render: false
  clean: false

preview:
  listen: ":8080"
  debounce_ms: 300
`

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	if _, err := os.Stat(root.Config); err == nil && !i.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", root.Config)
	}

	if err := os.WriteFile(root.Config, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", root.Config, err)
	}
	fmt.Printf("Wrote %s\n", root.Config)
	return nil
}
