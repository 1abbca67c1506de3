package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/obsidian2md/internal/tags"
)

// Meta is the typed view of the metadata fields this module reads. Everything
// else in the block is passed through untouched.
type Meta struct {
	Title  string
	Status string
	Tags   []string
}

// IsDraft reports whether the document is flagged as a draft. The comparison
// is case-insensitive so `Draft` and `DRAFT` behave like `draft`.
func (m Meta) IsDraft() bool {
	return strings.EqualFold(strings.TrimSpace(m.Status), "draft")
}

// ParseMeta decodes raw YAML metadata (without delimiters) into a Meta.
//
// Tags tolerate both YAML shapes authors use: a list of names or a single
// comma-separated scalar. Names are normalized (comma split, `#` stripped).
func ParseMeta(raw []byte) (Meta, error) {
	if len(raw) == 0 {
		return Meta{}, nil
	}

	var fields struct {
		Title  string    `yaml:"title"`
		Status string    `yaml:"status"`
		Tags   yaml.Node `yaml:"tags"`
	}
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return Meta{}, fmt.Errorf("parse metadata: %w", err)
	}

	meta := Meta{
		Title:  strings.TrimSpace(fields.Title),
		Status: strings.TrimSpace(fields.Status),
	}

	raws, err := tagNames(&fields.Tags)
	if err != nil {
		return Meta{}, err
	}
	meta.Tags = tags.NormalizeNames(raws)
	return meta, nil
}

func tagNames(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case 0: // absent
		return nil, nil
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, fmt.Errorf("parse tags: %w", err)
		}
		return []string{s}, nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return nil, fmt.Errorf("parse tags: %w", err)
		}
		return list, nil
	default:
		return nil, fmt.Errorf("parse tags: unsupported YAML node kind %d", node.Kind)
	}
}
