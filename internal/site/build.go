package site

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/obsidian2md/internal/config"
	"git.home.luguber.info/inful/obsidian2md/internal/frontmatter"
	"git.home.luguber.info/inful/obsidian2md/internal/logfields"
	"git.home.luguber.info/inful/obsidian2md/internal/metrics"
	"git.home.luguber.info/inful/obsidian2md/internal/obsidian"
	"git.home.luguber.info/inful/obsidian2md/internal/vault"
)

// Builder runs full builds: one index scan, then every document through the
// pipeline into the output tree.
type Builder struct {
	cfg *config.Config
	rec metrics.Recorder
}

// NewBuilder constructs a Builder. A nil recorder degrades to no-op metrics.
func NewBuilder(cfg *config.Config, rec metrics.Recorder) *Builder {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Builder{cfg: cfg, rec: rec}
}

// Result summarizes one build.
type Result struct {
	Index     *vault.Index
	Documents int
	Drafts    int
	Assets    int
}

// Build scans the vault and writes the transformed tree into the configured
// output directory. Per-document problems degrade and are logged; only
// output-tree I/O failures abort the build.
func (b *Builder) Build() (*Result, error) {
	buildStart := time.Now()
	outDir := b.cfg.Output.Directory

	// The output tree may be nested under the vault root; it must never be
	// indexed or re-copied, or every build would feed on the previous one.
	outAbs, err := filepath.Abs(outDir)
	if err != nil {
		return nil, fmt.Errorf("resolve output directory %s: %w", outDir, err)
	}

	scanStart := time.Now()
	ix := vault.Scan(b.cfg.Source.Root, vault.ScanOptions{
		DocExtensions:   b.cfg.Source.DocExtensions,
		ImageExtensions: b.cfg.Source.ImageExtensions,
		FileExtensions:  b.cfg.Source.FileExtensions,
		ExcludeDirs:     []string{outDir},
	})
	b.rec.ObserveScanDuration(time.Since(scanStart))
	b.rec.SetIndexSize(ix.ArticleCount(), ix.AssetCount())
	slog.Debug("Scan stage complete", logfields.Stage("scan"), slog.Duration("elapsed", time.Since(scanStart)))
	if b.cfg.Output.Clean {
		if err := os.RemoveAll(outDir); err != nil {
			return nil, fmt.Errorf("clean output directory %s: %w", outDir, err)
		}
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", outDir, err)
	}

	pipe := obsidian.NewPipeline(ix, b.cfg.Markdown)
	result := &Result{Index: ix}

	docExts := make(map[string]bool, len(b.cfg.Source.DocExtensions))
	for _, e := range b.cfg.Source.DocExtensions {
		docExts[e] = true
	}
	assetExts := make(map[string]bool)
	for _, e := range append(append([]string(nil), b.cfg.Source.ImageExtensions...), b.cfg.Source.FileExtensions...) {
		assetExts[e] = true
	}

	root := b.cfg.Source.Root
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if abs, absErr := filepath.Abs(path); absErr == nil && abs == outAbs {
				return filepath.SkipDir
			}
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(d.Name()), "."))
		switch {
		case docExts[ext]:
			return b.writeDocument(pipe, path, rel, result)
		case assetExts[ext]:
			if err := copyFile(path, filepath.Join(outDir, rel)); err != nil {
				return fmt.Errorf("copy asset %s: %w", rel, err)
			}
			b.rec.IncAssetCopied()
			result.Assets++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("build walk: %w", err)
	}

	b.rec.ObserveBuildDuration(time.Since(buildStart))
	slog.Info("Build complete",
		slog.Int("documents", result.Documents),
		slog.Int("drafts", result.Drafts),
		logfields.Assets(result.Assets),
		slog.Duration("elapsed", time.Since(buildStart)))
	return result, nil
}

// writeDocument transforms one source document and writes it to the output
// tree, as portable markdown or rendered HTML depending on configuration.
func (b *Builder) writeDocument(pipe *obsidian.Pipeline, path, rel string, result *Result) error {
	// #nosec G304 -- path comes from the build walk, not user input
	raw, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Skipping unreadable document", logfields.Path(path), logfields.Error(err))
		b.rec.IncDocument(metrics.DocumentFailed)
		return nil
	}

	doc, err := frontmatter.Split(raw)
	if err != nil {
		// Malformed metadata: pass the document through untouched rather than
		// guessing where the body starts.
		slog.Warn("Document metadata malformed, copying verbatim", logfields.Path(path), logfields.Error(err))
		b.rec.IncDocument(metrics.DocumentFailed)
		return writeFile(filepath.Join(b.cfg.Output.Directory, rel), raw)
	}

	meta, err := frontmatter.ParseMeta(doc.Raw)
	if err != nil {
		slog.Warn("Document metadata unparseable, treating as published", logfields.Path(path), logfields.Error(err))
		meta = frontmatter.Meta{}
	}

	body := pipe.Transform(string(doc.Body), meta)
	if meta.IsDraft() {
		b.rec.IncDocument(metrics.DocumentDraft)
		result.Drafts++
	} else {
		b.rec.IncDocument(metrics.DocumentPublished)
		result.Documents++
	}
	body = ExpandPlaceholders(body, b.cfg.Output)

	if b.cfg.Output.Render {
		title := meta.Title
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
		}
		page, err := RenderHTML([]byte(body), title)
		if err != nil {
			slog.Warn("Rendering failed, skipping document", logfields.Path(path), logfields.Error(err))
			b.rec.IncDocument(metrics.DocumentFailed)
			return nil
		}
		htmlRel := strings.TrimSuffix(rel, filepath.Ext(rel)) + ".html"
		return writeFile(filepath.Join(b.cfg.Output.Directory, htmlRel), page)
	}

	doc.Body = []byte(body)
	return writeFile(filepath.Join(b.cfg.Output.Directory, rel), doc.Join())
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	// #nosec G304 -- src comes from the build walk, not user input
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return writeFile(dst, data)
}
