package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Output   OutputConfig   `yaml:"output"`
	Preview  PreviewConfig  `yaml:"preview"`
}

// SourceConfig locates the vault and controls which files are indexed.
type SourceConfig struct {
	Root            string   `yaml:"root"`
	DocExtensions   []string `yaml:"doc_extensions,omitempty"`
	ImageExtensions []string `yaml:"image_extensions,omitempty"`
	FileExtensions  []string `yaml:"file_extensions,omitempty"`
}

// MarkdownConfig controls the transformation passes.
//
// Boolean toggles are pointers so an absent key can default to enabled while
// an explicit `false` still wins.
type MarkdownConfig struct {
	StripHashtags   *bool  `yaml:"strip_hashtags,omitempty"`
	ConvertCallouts *bool  `yaml:"convert_callouts,omitempty"`
	CalloutStyle    string `yaml:"callout_style,omitempty"` // admonition | legacy
}

// HashtagsEnabled reports whether the hashtag stripping pass should run.
func (m MarkdownConfig) HashtagsEnabled() bool {
	return m.StripHashtags == nil || *m.StripHashtags
}

// CalloutsEnabled reports whether the callout conversion pass should run.
func (m MarkdownConfig) CalloutsEnabled() bool {
	return m.ConvertCallouts == nil || *m.ConvertCallouts
}

// OutputConfig controls where and how transformed documents are written.
type OutputConfig struct {
	Directory    string `yaml:"directory"`
	Render       bool   `yaml:"render"` // render HTML instead of portable markdown
	Clean        bool   `yaml:"clean"`  // clean output directory before build
	FilenameBase string `yaml:"filename_base,omitempty"`
	StaticBase   string `yaml:"static_base,omitempty"`
}

// PreviewConfig controls the local preview server.
type PreviewConfig struct {
	Listen     string `yaml:"listen,omitempty"`
	DebounceMS int    `yaml:"debounce_ms,omitempty"`
}

// Load reads, defaults and validates a configuration file.
func Load(path string) (*Config, error) {
	// #nosec G304 -- path comes from the CLI flag, this is a local tool
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks constraints that defaults cannot repair.
func (c *Config) Validate() error {
	if c.Source.Root == "" {
		return fmt.Errorf("source.root must be set")
	}
	switch c.Markdown.CalloutStyle {
	case CalloutStyleAdmonition, CalloutStyleLegacy:
	default:
		return fmt.Errorf("markdown.callout_style must be %q or %q, got %q",
			CalloutStyleAdmonition, CalloutStyleLegacy, c.Markdown.CalloutStyle)
	}
	return nil
}

// normalizeExtensions lowercases extensions and strips leading dots so both
// "PNG" and ".png" configure the same thing.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}
