package obsidian

import (
	"fmt"
	"hash/crc32"
	"regexp"
	"strings"
	"time"
)

// masker is a two-phase protect/restore buffer for spans that must survive a
// rewrite untouched, such as code regions during hashtag stripping.
//
// Each protected span is swapped for a token of the form
// "\x00<checksum>.<counter>\x00". The NUL framing cannot appear in valid
// markdown input, the payload contains no characters the hashtag pattern
// matches beyond digits (and never a '#'), and the time-derived checksum plus
// a monotonically increasing counter keeps tokens unique per masker.
type masker struct {
	salt  string
	spans []string
}

func newMasker() *masker {
	sum := crc32.ChecksumIEEE([]byte(time.Now().Format(time.RFC3339Nano)))
	return &masker{salt: fmt.Sprintf("%08x", sum)}
}

// mask replaces every match of re in text with a fresh token, remembering the
// original span for restore.
func (m *masker) mask(text string, re *regexp.Regexp) string {
	return re.ReplaceAllStringFunc(text, func(span string) string {
		token := fmt.Sprintf("\x00%s.%d\x00", m.salt, len(m.spans))
		m.spans = append(m.spans, span)
		return token
	})
}

// restore substitutes all tokens back with their original spans.
func (m *masker) restore(text string) string {
	if len(m.spans) == 0 {
		return text
	}
	pairs := make([]string, 0, 2*len(m.spans))
	for i, span := range m.spans {
		pairs = append(pairs, fmt.Sprintf("\x00%s.%d\x00", m.salt, i), span)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
