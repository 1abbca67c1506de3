package obsidian

import (
	"log/slog"

	"git.home.luguber.info/inful/obsidian2md/internal/config"
	"git.home.luguber.info/inful/obsidian2md/internal/frontmatter"
	"git.home.luguber.info/inful/obsidian2md/internal/vault"
)

// Pipeline applies the ordered transformation passes to document bodies. It
// carries the read-only vault index and the markdown configuration, so one
// pipeline can serve any number of documents, concurrently if the caller
// wants to.
type Pipeline struct {
	index *vault.Index
	cfg   config.MarkdownConfig
}

// NewPipeline builds a pipeline over a scanned index.
func NewPipeline(index *vault.Index, cfg config.MarkdownConfig) *Pipeline {
	return &Pipeline{index: index, cfg: cfg}
}

// Transform rewrites one document body.
//
// Drafts bypass every pass so authors can preview their raw wiki syntax. For
// published documents the pass order is fixed: hashtags, callouts,
// breadcrumbs, embeds, links. Callouts run before breadcrumb and link
// handling because their bodies may contain links; embeds run before links
// because the embed syntax is a superset of the link syntax.
func (p *Pipeline) Transform(body string, meta frontmatter.Meta) string {
	if meta.IsDraft() {
		slog.Debug("Draft document, skipping transformation")
		return body
	}

	body = StripHashtags(body, p.cfg.HashtagsEnabled())
	body = ConvertCallouts(body, p.cfg.CalloutsEnabled(), CalloutStyle(p.cfg.CalloutStyle))
	body = PruneBreadcrumbs(body, p.index)
	body = ResolveEmbeds(body, p.index)
	body = ResolveLinks(body, p.index)
	return body
}
