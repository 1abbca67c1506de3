package vault

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/obsidian2md/internal/logfields"
)

// untitledWarnLimit caps how many untitled documents are named in the scan
// summary warning.
const untitledWarnLimit = 10

// ScanOptions controls which files a Scan indexes.
type ScanOptions struct {
	DocExtensions   []string // lowercased, without dots; e.g. "md"
	ImageExtensions []string
	FileExtensions  []string

	// ExcludeDirs are directory trees skipped entirely, compared by absolute
	// path. Callers use this to keep a build output directory nested under
	// the vault root out of the index.
	ExcludeDirs []string
}

// Scan walks the vault under root and builds a fresh Index.
//
// Scan never fails hard: a missing or unreadable root logs an error and
// yields an empty index; unreadable individual documents degrade to the
// filename as title. The previous index, if any, is simply abandoned by the
// caller in favor of the returned one.
func Scan(root string, opts ScanOptions) *Index {
	ix := NewIndex()

	info, err := os.Stat(root)
	if err != nil {
		slog.Error("Vault root not accessible, index left empty", logfields.Root(root), logfields.Error(err))
		return ix
	}
	if !info.IsDir() {
		slog.Error("Vault root is not a directory, index left empty", logfields.Root(root))
		return ix
	}

	docExts := extensionSet(opts.DocExtensions)
	assetExts := extensionSet(append(append([]string(nil), opts.ImageExtensions...), opts.FileExtensions...))
	excluded := absPathSet(opts.ExcludeDirs)

	var untitled []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("Skipping unreadable path", logfields.Path(path), logfields.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if abs, absErr := filepath.Abs(path); absErr == nil && excluded[abs] {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))

		switch {
		case docExts[ext]:
			key := strings.TrimSuffix(name, filepath.Ext(name))
			article := Article{
				Key:   key,
				Path:  relativeDir(root, path),
				Title: readTitle(path, key),
			}
			slog.Debug("Indexed article",
				logfields.File(name), logfields.Key(key), logfields.Title(article.Title))
			if article.Title == key {
				untitled = append(untitled, key)
			}
			if prev, collided := ix.AddArticle(article); collided {
				slog.Warn("Duplicate article key, keeping last scanned",
					logfields.Key(key), logfields.Path(article.Path), slog.String("shadowed_path", prev.Path))
			}
		case assetExts[ext]:
			ix.AddAsset(Asset{Key: name, Path: relativeDir(root, path)})
		}
		return nil
	})
	if walkErr != nil {
		slog.Error("Vault walk aborted", logfields.Root(root), logfields.Error(walkErr))
	}

	slog.Info("Vault scan complete",
		logfields.Root(root), logfields.Articles(ix.ArticleCount()), logfields.Assets(ix.AssetCount()))
	if len(untitled) > 0 {
		listed := untitled
		if len(listed) > untitledWarnLimit {
			listed = listed[:untitledWarnLimit]
		}
		slog.Warn("Documents without an explicit title use their filename",
			logfields.Count(len(untitled)), slog.Any("keys", listed))
	}

	return ix
}

// relativeDir returns the directory of path relative to root, normalized to
// "/" separators with a leading and trailing slash. Files directly under the
// root map to "/".
func relativeDir(root, path string) string {
	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil || rel == "." {
		return "/"
	}
	return "/" + filepath.ToSlash(rel) + "/"
}

func absPathSet(dirs []string) map[string]bool {
	set := make(map[string]bool, len(dirs))
	for _, dir := range dirs {
		if abs, err := filepath.Abs(dir); err == nil {
			set[abs] = true
		}
	}
	return set
}

func extensionSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		set[strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}
	return set
}
