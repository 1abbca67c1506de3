// Package vault indexes an Obsidian vault: which articles and static assets
// exist, where they live, and what their titles are.
//
// The index is built once per run by Scan and is read-only afterwards, so a
// single index can safely serve concurrent document transformations.
package vault

import "strings"

// Article is an indexed markdown document.
type Article struct {
	Key   string // filename without extension, exact case as on disk
	Path  string // directory relative to the vault root, "/" delimited with leading and trailing slash
	Title string // extracted title, falls back to Key
}

// Asset is an indexed static file (image, pdf, ...).
type Asset struct {
	Key  string // filename including extension, exact case as on disk
	Path string // directory relative to the vault root, normalized like Article.Path
}

// Index holds the lookup tables for one scanned vault. The lowercase tables
// give case-insensitive fallback while still yielding the canonical entry.
type Index struct {
	articles      map[string]Article
	articlesLower map[string]Article
	assets        map[string]Asset
	assetsLower   map[string]Asset
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		articles:      make(map[string]Article),
		articlesLower: make(map[string]Article),
		assets:        make(map[string]Asset),
		assetsLower:   make(map[string]Asset),
	}
}

// Article looks up an article by key, exact match first, then
// case-insensitive. The returned entry is always the canonical one.
func (ix *Index) Article(key string) (Article, bool) {
	if a, ok := ix.articles[key]; ok {
		return a, true
	}
	a, ok := ix.articlesLower[strings.ToLower(key)]
	return a, ok
}

// Asset looks up an asset by filename, exact match first, then
// case-insensitive.
func (ix *Index) Asset(key string) (Asset, bool) {
	if a, ok := ix.assets[key]; ok {
		return a, true
	}
	a, ok := ix.assetsLower[strings.ToLower(key)]
	return a, ok
}

// ArticleCount returns the number of indexed articles.
func (ix *Index) ArticleCount() int { return len(ix.articles) }

// AssetCount returns the number of indexed assets.
func (ix *Index) AssetCount() int { return len(ix.assets) }

// AddArticle records an article under its exact and lowercased key.
// Last write wins on key collisions.
func (ix *Index) AddArticle(a Article) (previous Article, collided bool) {
	previous, collided = ix.articles[a.Key]
	ix.articles[a.Key] = a
	ix.articlesLower[strings.ToLower(a.Key)] = a
	return previous, collided
}

// AddAsset records an asset under its exact and lowercased filename.
func (ix *Index) AddAsset(a Asset) {
	ix.assets[a.Key] = a
	ix.assetsLower[strings.ToLower(a.Key)] = a
}
