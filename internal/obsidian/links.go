// Package obsidian rewrites Obsidian-flavored markdown into portable markdown.
//
// Each pass is a pure text -> text function over a document body; the only
// shared state is the read-only vault index. Pass ordering matters and is
// owned by Pipeline.
package obsidian

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/obsidian2md/internal/logfields"
	"git.home.luguber.info/inful/obsidian2md/internal/vault"
)

// wikilinkPattern matches [[filename]] and [[filename|display]]. The first
// group is the filename, the second the optional display name; both are
// trimmed by parseWikilink.
const wikilinkPattern = `\[\[([^|\]]+)(?:\|([^\]]*))?\]\]`

var (
	linkRe  = regexp.MustCompile(wikilinkPattern)
	embedRe = regexp.MustCompile(`!` + wikilinkPattern)
)

// parseWikilink extracts the trimmed filename and display name from a
// wikilink submatch. Without an explicit display name the filename doubles as
// the label.
func parseWikilink(sub []string) (filename, display string) {
	filename = strings.TrimSpace(sub[1])
	display = strings.TrimSpace(sub[2])
	if display == "" {
		display = filename
	}
	return filename, display
}

// ResolveEmbeds replaces ![[file]] embeds with image references against the
// asset index. Unresolved embeds are dropped entirely so readers never see a
// broken image. Must run before ResolveLinks: the embed pattern is a strict
// superset of the link pattern and has to claim its matches first.
func ResolveEmbeds(text string, ix *vault.Index) string {
	return embedRe.ReplaceAllStringFunc(text, func(m string) string {
		filename, display := parseWikilink(embedRe.FindStringSubmatch(m))
		asset, ok := ix.Asset(filename)
		if !ok {
			slog.Debug("Dropping embed, asset not indexed", logfields.Target(filename))
			return ""
		}
		return fmt.Sprintf("![%s]({static}%s%s)", display, asset.Path, asset.Key)
	})
}

// ResolveLinks replaces [[file]] wikilinks with markdown links against the
// article index. The visible text of a resolved link is the indexed article
// title, not the display name. Unresolved links degrade to the bare display
// name.
func ResolveLinks(text string, ix *vault.Index) string {
	return linkRe.ReplaceAllStringFunc(text, func(m string) string {
		filename, display := parseWikilink(linkRe.FindStringSubmatch(m))
		article, ok := ix.Article(filename)
		if !ok {
			slog.Debug("Unresolved wikilink, emitting display text", logfields.Target(filename))
			return display
		}
		return fmt.Sprintf("[%s]({filename}%s%s.md)", article.Title, article.Path, article.Key)
	})
}
