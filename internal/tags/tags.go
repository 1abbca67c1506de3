// Package tags normalizes taxonomy values coming out of Obsidian vaults.
//
// Obsidian authors write tags as `#topic` hashtags and frequently keep several
// tags on one comma-separated line. Downstream taxonomy handling expects one
// clean name per tag, so both shapes are flattened here.
package tags

import "strings"

// Tag is the taxonomy value object consumed by the host generator. Only the
// name is of interest to this module.
type Tag struct {
	Name string
}

// Normalize splits comma-separated tag names into individual tags and strips
// `#` characters from each name. Empty results are dropped.
func Normalize(in []Tag) []Tag {
	out := make([]Tag, 0, len(in))
	for _, t := range in {
		for _, name := range NormalizeName(t.Name) {
			out = append(out, Tag{Name: name})
		}
	}
	return out
}

// NormalizeName splits a single raw tag name on commas and strips `#` from
// each part. Blank parts are dropped.
func NormalizeName(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.ReplaceAll(p, "#", ""))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NormalizeNames applies NormalizeName across a list of raw names.
func NormalizeNames(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		out = append(out, NormalizeName(r)...)
	}
	return out
}
