package site

import (
	"strings"

	"git.home.luguber.info/inful/obsidian2md/internal/config"
)

// Placeholder prefixes the resolver passes emit. The downstream renderer owns
// final URL computation; expansion here only applies when the configuration
// overrides the bases (for example for direct HTML rendering).
const (
	FilenamePlaceholder = "{filename}"
	StaticPlaceholder   = "{static}"
)

// ExpandPlaceholders rewrites the resolver placeholders against the
// configured base paths. With default configuration both bases equal the
// placeholders themselves, making this a pass-through.
func ExpandPlaceholders(text string, out config.OutputConfig) string {
	if out.FilenameBase == FilenamePlaceholder && out.StaticBase == StaticPlaceholder {
		return text
	}
	return strings.NewReplacer(
		FilenamePlaceholder, out.FilenameBase,
		StaticPlaceholder, out.StaticBase,
	).Replace(text)
}
