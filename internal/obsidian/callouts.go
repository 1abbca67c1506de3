package obsidian

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CalloutStyle selects the markup emitted for converted callouts.
type CalloutStyle string

const (
	// CalloutStyleAdmonition emits admonition containers with the callout
	// type mapped through admonitionClasses.
	CalloutStyleAdmonition CalloutStyle = "admonition"
	// CalloutStyleLegacy emits callout containers keeping the original type
	// name in the class names.
	CalloutStyleLegacy CalloutStyle = "legacy"
)

// admonitionClasses maps recognized callout types to admonition classes.
// Several types share a class; the key set doubles as the recognized-type
// set, so an unknown type falls through unconverted.
var admonitionClasses = map[string]string{
	"note":      "note",
	"info":      "note",
	"tip":       "tip",
	"important": "tip",
	"warning":   "warning",
	"caution":   "warning",
	"attention": "warning",
	"danger":    "danger",
	"question":  "question",
	"example":   "example",
	"quote":     "quote",
	"abstract":  "abstract",
	"success":   "success",
	"failure":   "failure",
	"bug":       "bug",
}

// calloutRe matches a callout block: a possibly indented `> [!type]` opening
// line with an optional title, plus any directly following `>` lines. The
// block ends at the first blank or non-quoted line.
var calloutRe = regexp.MustCompile(`(?m)^[ \t]*>[ \t]*\[!(\w+)\][ \t]*([^\n]*)(?:\n((?:[ \t]*>[^\n]*(?:\n|$))*))?`)

// continuation line -> content: strip the quote marker and at most one
// following space.
var calloutLineRe = regexp.MustCompile(`^[ \t]*> ?`)

var titleCaser = cases.Title(language.English)

// ConvertCallouts rewrites Obsidian callout blocks into container markup the
// downstream renderer passes through. Unrecognized types are left alone. A
// no-op when disabled.
func ConvertCallouts(text string, enabled bool, style CalloutStyle) string {
	if !enabled {
		return text
	}

	return calloutRe.ReplaceAllStringFunc(text, func(block string) string {
		sub := calloutRe.FindStringSubmatch(block)
		typeName := strings.ToLower(sub[1])
		class, recognized := admonitionClasses[typeName]
		if !recognized {
			return block
		}

		title := strings.TrimSpace(sub[2])
		if title == "" {
			title = titleCaser.String(typeName)
		}

		body := calloutBody(sub[3])
		trailing := ""
		if strings.HasSuffix(block, "\n") {
			trailing = "\n"
		}

		if style == CalloutStyleLegacy {
			return fmt.Sprintf(
				"<div class=\"callout callout-%s\">\n<div class=\"callout-title\">%s</div>\n<div class=\"callout-content\">%s</div>\n</div>%s",
				typeName, title, body, trailing)
		}
		return fmt.Sprintf(
			"<div class=\"admonition %s\">\n<p class=\"admonition-title\">%s</p>\n<p>%s</p>\n</div>%s",
			class, title, body, trailing)
	})
}

// calloutBody strips quote markers from continuation lines and trims trailing
// empty lines.
func calloutBody(raw string) string {
	if raw == "" {
		return ""
	}
	lines := strings.Split(strings.TrimSuffix(raw, "\n"), "\n")
	for i, line := range lines {
		lines[i] = calloutLineRe.ReplaceAllString(line, "")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
