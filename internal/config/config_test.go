package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig_CarriesDocumentedDefaults(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, []string{"md"}, cfg.Source.DocExtensions)
	require.Equal(t, []string{"png", "jpg", "jpeg", "svg", "gif", "webp", "avif"}, cfg.Source.ImageExtensions)
	require.Equal(t, []string{"apkg", "pdf", "doc", "docx", "txt"}, cfg.Source.FileExtensions)
	require.True(t, cfg.Markdown.HashtagsEnabled())
	require.True(t, cfg.Markdown.CalloutsEnabled())
	require.Equal(t, CalloutStyleAdmonition, cfg.Markdown.CalloutStyle)
	require.Equal(t, "{filename}", cfg.Output.FilenameBase)
	require.Equal(t, "{static}", cfg.Output.StaticBase)
}

func TestLoad_MinimalConfig_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, "source:\n  root: ./vault\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "./vault", cfg.Source.Root)
	require.Equal(t, DefaultOutputDirectory, cfg.Output.Directory)
	require.Equal(t, DefaultPreviewListen, cfg.Preview.Listen)
}

func TestLoad_ExplicitFalseToggle_Wins(t *testing.T) {
	path := writeConfig(t, `
source:
  root: ./vault
markdown:
  strip_hashtags: false
  convert_callouts: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.False(t, cfg.Markdown.HashtagsEnabled())
	require.False(t, cfg.Markdown.CalloutsEnabled())
}

func TestLoad_ExtensionsNormalized(t *testing.T) {
	path := writeConfig(t, `
source:
  root: ./vault
  image_extensions: [".PNG", "Jpg"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"png", "jpg"}, cfg.Source.ImageExtensions)
}

func TestLoad_MissingRoot_Fails(t *testing.T) {
	path := writeConfig(t, "output:\n  directory: ./out\n")

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "source.root")
}

func TestLoad_InvalidCalloutStyle_Fails(t *testing.T) {
	path := writeConfig(t, `
source:
  root: ./vault
markdown:
  callout_style: fancy
`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "callout_style")
}

func TestLoad_MissingFile_Fails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
