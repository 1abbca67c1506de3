package obsidian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripHashtags_MidLine_RemovedKeepingBoundaries(t *testing.T) {
	require.Equal(t, "text  text", StripHashtags("text #agile text", true))
}

func TestStripHashtags_StartOfLine_Removed(t *testing.T) {
	require.Equal(t, " at start", StripHashtags("#python at start", true))
}

func TestStripHashtags_StartOfSecondLine_Removed(t *testing.T) {
	require.Equal(t, "first\n here", StripHashtags("first\n#tag here", true))
}

func TestStripHashtags_DigitLeading_Removed(t *testing.T) {
	require.Equal(t, "year  notes", StripHashtags("year #2024 notes", true))
}

func TestStripHashtags_TagCharacterSet_SlashUnderscoreDash(t *testing.T) {
	require.Equal(t, "a  b", StripHashtags("a #proj/sub_task-1 b", true))
}

func TestStripHashtags_TrailingPunctuation_Kept(t *testing.T) {
	require.Equal(t, "done .", StripHashtags("done #task.", true))
	require.Equal(t, "(see )", StripHashtags("(see #ref)", true))
}

func TestStripHashtags_EndOfLine_Removed(t *testing.T) {
	require.Equal(t, "trailing ", StripHashtags("trailing #tag", true))
}

func TestStripHashtags_EndOfCRLFLine_Removed(t *testing.T) {
	require.Equal(t, "text \r\nnext", StripHashtags("text #tag\r\nnext", true))
}

func TestStripHashtags_MidLineCRLFDocument_Removed(t *testing.T) {
	require.Equal(t, "a  b\r\nc\r\n", StripHashtags("a #tag b\r\nc\r\n", true))
}

func TestStripHashtags_AdjacentTags_AllRemoved(t *testing.T) {
	require.Equal(t, "x  ", StripHashtags("x #a #b", true))
}

func TestStripHashtags_URLFragment_Untouched(t *testing.T) {
	in := "http://example.com/#section stays"
	require.Equal(t, in, StripHashtags(in, true))
}

func TestStripHashtags_MarkdownHeading_Untouched(t *testing.T) {
	in := "# Heading\n## Sub\n"
	require.Equal(t, in, StripHashtags(in, true))
}

func TestStripHashtags_InlineCode_Protected(t *testing.T) {
	in := "keep `#kept` but drop #gone"
	require.Equal(t, "keep `#kept` but drop ", StripHashtags(in, true))
}

func TestStripHashtags_FencedCode_Protected(t *testing.T) {
	in := "before #gone\n```\n#kept inside\n```\nafter\n"
	require.Equal(t, "before \n```\n#kept inside\n```\nafter\n", StripHashtags(in, true))
}

func TestStripHashtags_Disabled_NoOp(t *testing.T) {
	in := "text #agile text"
	require.Equal(t, in, StripHashtags(in, false))
}

func TestStripHashtags_Idempotent(t *testing.T) {
	once := StripHashtags("mix #a `#b` text", true)
	require.Equal(t, once, StripHashtags(once, true))
}
