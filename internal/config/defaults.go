package config

// Callout output styles.
const (
	CalloutStyleAdmonition = "admonition"
	CalloutStyleLegacy     = "legacy"
)

// Default extension sets for index discovery.
var (
	DefaultDocExtensions   = []string{"md"}
	DefaultImageExtensions = []string{"png", "jpg", "jpeg", "svg", "gif", "webp", "avif"}
	DefaultFileExtensions  = []string{"apkg", "pdf", "doc", "docx", "txt"}
)

const (
	DefaultOutputDirectory = "./out"
	DefaultPreviewListen   = ":8080"
	DefaultDebounceMS      = 300

	// Placeholder prefixes the downstream renderer expands to final URLs.
	DefaultFilenameBase = "{filename}"
	DefaultStaticBase   = "{static}"
)

// DefaultConfig returns a fully defaulted configuration rooted at the current
// directory.
func DefaultConfig() *Config {
	cfg := &Config{Source: SourceConfig{Root: "."}}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills in zero values. Explicitly configured values are kept.
func (c *Config) ApplyDefaults() {
	if len(c.Source.DocExtensions) == 0 {
		c.Source.DocExtensions = append([]string(nil), DefaultDocExtensions...)
	}
	if len(c.Source.ImageExtensions) == 0 {
		c.Source.ImageExtensions = append([]string(nil), DefaultImageExtensions...)
	}
	if len(c.Source.FileExtensions) == 0 {
		c.Source.FileExtensions = append([]string(nil), DefaultFileExtensions...)
	}
	c.Source.DocExtensions = normalizeExtensions(c.Source.DocExtensions)
	c.Source.ImageExtensions = normalizeExtensions(c.Source.ImageExtensions)
	c.Source.FileExtensions = normalizeExtensions(c.Source.FileExtensions)

	if c.Markdown.CalloutStyle == "" {
		c.Markdown.CalloutStyle = CalloutStyleAdmonition
	}

	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutputDirectory
	}
	if c.Output.FilenameBase == "" {
		c.Output.FilenameBase = DefaultFilenameBase
	}
	if c.Output.StaticBase == "" {
		c.Output.StaticBase = DefaultStaticBase
	}

	if c.Preview.Listen == "" {
		c.Preview.Listen = DefaultPreviewListen
	}
	if c.Preview.DebounceMS <= 0 {
		c.Preview.DebounceMS = DefaultDebounceMS
	}
}
