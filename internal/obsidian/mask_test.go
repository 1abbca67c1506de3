package obsidian

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMasker_MaskRestore_RoundTrips(t *testing.T) {
	m := newMasker()
	re := regexp.MustCompile(`b+`)

	masked := m.mask("a bb c bbb d", re)
	require.NotContains(t, masked, "bb")
	require.Equal(t, "a bb c bbb d", m.restore(masked))
}

func TestMasker_TokensAreUnique(t *testing.T) {
	m := newMasker()
	re := regexp.MustCompile(`x`)

	masked := m.mask("x x x", re)
	tokens := strings.Fields(masked)
	require.Len(t, tokens, 3)
	seen := map[string]bool{}
	for _, tok := range tokens {
		require.False(t, seen[tok], "token %q repeated", tok)
		seen[tok] = true
	}
}

func TestMasker_TokenSurvivesHashtagPattern(t *testing.T) {
	m := newMasker()
	masked := m.mask("text `#code` text", inlineCodeRe)

	stripped := hashtagRe.ReplaceAllString(masked, "$1$2")
	require.Equal(t, masked, stripped)
	require.Equal(t, "text `#code` text", m.restore(stripped))
}

func TestMasker_NoSpans_RestoreIsIdentity(t *testing.T) {
	m := newMasker()
	require.Equal(t, "unchanged", m.restore("unchanged"))
}
