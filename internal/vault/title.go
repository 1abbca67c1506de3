package vault

import (
	"log/slog"
	"os"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/obsidian2md/internal/frontmatter"
	"git.home.luguber.info/inful/obsidian2md/internal/logfields"
)

// titleRe matches a `title:` line anywhere in a block, case-insensitively.
// The rest of the line is the value.
var titleRe = regexp.MustCompile(`(?im)^title:\s*(.*)$`)

// readTitle extracts the title of the document at path, degrading to key on
// any failure. Read errors are logged and swallowed so a single unreadable
// file cannot abort the scan.
func readTitle(path, key string) string {
	// #nosec G304 -- path comes from the vault walk, not user input
	content, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Could not read document for title extraction", logfields.Path(path), logfields.Error(err))
		return key
	}
	return extractTitle(content, key)
}

// extractTitle searches the metadata block for a title line, then the whole
// document, and finally falls back to key. Matching surrounding quotes are
// stripped from the value.
func extractTitle(content []byte, key string) string {
	if doc, err := frontmatter.Split(content); err == nil && doc.HasMeta {
		if m := titleRe.FindSubmatch(doc.Raw); m != nil {
			if title := cleanTitle(string(m[1])); title != "" {
				return title
			}
		}
	}
	if m := titleRe.FindSubmatch(content); m != nil {
		if title := cleanTitle(string(m[1])); title != "" {
			return title
		}
	}
	return key
}

func cleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	if len(title) >= 2 {
		first, last := title[0], title[len(title)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			title = title[1 : len(title)-1]
		}
	}
	return title
}
