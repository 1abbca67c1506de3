package obsidian

import (
	"log/slog"
	"regexp"

	"git.home.luguber.info/inful/obsidian2md/internal/logfields"
	"git.home.luguber.info/inful/obsidian2md/internal/vault"
)

// breadcrumbRe matches a breadcrumb annotation: an X::, Up:: or Down:: prefix
// (case-insensitive) immediately followed by one wikilink.
var breadcrumbRe = regexp.MustCompile(`(?i)(?:X|Up|Down)::\s*` + wikilinkPattern)

// PruneBreadcrumbs rewrites breadcrumb annotations ahead of link resolution.
//
// When the linked article exists the prefix is dropped and the raw wikilink
// survives for ResolveLinks to process. When it does not exist the whole
// annotation vanishes. Must run before ResolveLinks, which consumes the
// bracket syntax this pass emits.
func PruneBreadcrumbs(text string, ix *vault.Index) string {
	return breadcrumbRe.ReplaceAllStringFunc(text, func(m string) string {
		inner := linkRe.FindString(m)
		filename, _ := parseWikilink(linkRe.FindStringSubmatch(inner))
		if _, ok := ix.Article(filename); !ok {
			slog.Debug("Removing breadcrumb, target not indexed", logfields.Target(filename))
			return ""
		}
		return inner
	})
}
