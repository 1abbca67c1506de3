package obsidian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPruneBreadcrumbs_ResolvableTarget_PrefixRemovedLinkKept(t *testing.T) {
	out := PruneBreadcrumbs("X::[[my-note]]", testIndex())
	require.Equal(t, "[[my-note]]", out)
}

func TestPruneBreadcrumbs_PrefixCaseInsensitive(t *testing.T) {
	for _, prefix := range []string{"X::", "x::", "Up::", "up::", "UP::", "Down::", "DOWN::"} {
		out := PruneBreadcrumbs(prefix+"[[my-note]]", testIndex())
		require.Equal(t, "[[my-note]]", out, "prefix %q", prefix)
	}
}

func TestPruneBreadcrumbs_WhitespaceBetweenPrefixAndLink_Allowed(t *testing.T) {
	out := PruneBreadcrumbs("Up:: [[my-note]]", testIndex())
	require.Equal(t, "[[my-note]]", out)
}

func TestPruneBreadcrumbs_UnresolvableTarget_WholeAnnotationRemoved(t *testing.T) {
	out := PruneBreadcrumbs("Down::[[missing-article]]", testIndex())
	require.Equal(t, "", out)
}

func TestPruneBreadcrumbs_DisplayNameForm_ResolvesOnFilename(t *testing.T) {
	out := PruneBreadcrumbs("X::[[my-note|label]]", testIndex())
	require.Equal(t, "[[my-note|label]]", out)
}

func TestPruneBreadcrumbs_CaseVariantTarget_Resolves(t *testing.T) {
	out := PruneBreadcrumbs("Up::[[MY-NOTE]]", testIndex())
	require.Equal(t, "[[MY-NOTE]]", out)
}

func TestPruneBreadcrumbs_SurroundingTextPreserved(t *testing.T) {
	out := PruneBreadcrumbs("intro Up::[[missing]] outro", testIndex())
	require.Equal(t, "intro  outro", out)
}

func TestPruneBreadcrumbs_PlainLinksUntouched(t *testing.T) {
	out := PruneBreadcrumbs("[[missing]] stays", testIndex())
	require.Equal(t, "[[missing]] stays", out)
}

func TestPruneBreadcrumbs_ThenResolve_ProducesFinalLink(t *testing.T) {
	ix := testIndex()
	out := ResolveLinks(PruneBreadcrumbs("X::[[my-note]]", ix), ix)
	require.Equal(t, "[My Note]({filename}/my-note.md)", out)
}
