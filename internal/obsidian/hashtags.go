package obsidian

import "regexp"

var (
	// Code regions are protected from hashtag stripping. Fenced blocks are
	// masked before inline spans so a backtick inside a fence cannot open a
	// bogus inline span.
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`\n]*`")

	// hashtagRe matches an Obsidian hashtag: '#' plus an alphanumeric first
	// character and a tail of letters, digits, '_', '/', '-'. The tag must
	// follow start-of-line or horizontal whitespace (group 1) and be closed
	// by whitespace, end-of-line or trailing punctuation (group 2); both
	// boundaries are re-emitted by the replacement. The closer includes '\r'
	// because (?m)$ only matches before '\n' and vault bodies may be CRLF.
	// A '#' glued to preceding text, like a URL fragment, never matches;
	// '#' followed by a space, like a markdown heading, fails the
	// first-character class.
	hashtagRe = regexp.MustCompile(`(?m)(^|[ \t])#[0-9A-Za-z][0-9A-Za-z_/-]*([.,;:!?)]|[ \t\r]|$)`)
)

// StripHashtags removes Obsidian hashtags from text while leaving markdown
// headings, URL fragments and code regions untouched. A no-op when disabled.
func StripHashtags(text string, enabled bool) string {
	if !enabled {
		return text
	}

	m := newMasker()
	text = m.mask(text, fencedCodeRe)
	text = m.mask(text, inlineCodeRe)

	// The closing boundary of one tag can be the opening boundary of the
	// next ("#a #b"), so substitute until a fixed point is reached.
	for {
		next := hashtagRe.ReplaceAllString(text, "$1$2")
		if next == text {
			break
		}
		text = next
	}

	return m.restore(text)
}
