package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID  = "build_id"
	KeyRoot     = "root"
	KeyPath     = "path"
	KeyFile     = "file"
	KeyKey      = "key"
	KeyTitle    = "title"
	KeyTarget   = "target"
	KeyStage    = "stage"
	KeyArticles = "articles"
	KeyAssets   = "assets"
	KeyCount    = "count"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr   { return slog.String(KeyBuildID, id) }
func Root(root string) slog.Attr    { return slog.String(KeyRoot, root) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func File(f string) slog.Attr       { return slog.String(KeyFile, f) }
func Key(k string) slog.Attr        { return slog.String(KeyKey, k) }
func Title(t string) slog.Attr      { return slog.String(KeyTitle, t) }
func Target(t string) slog.Attr     { return slog.String(KeyTarget, t) }
func Stage(name string) slog.Attr   { return slog.String(KeyStage, name) }
func Articles(n int) slog.Attr      { return slog.Int(KeyArticles, n) }
func Assets(n int) slog.Attr        { return slog.Int(KeyAssets, n) }
func Count(n int) slog.Attr         { return slog.Int(KeyCount, n) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
