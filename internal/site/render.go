// Package site drives full vault builds: scan the index, run every document
// through the transformation pipeline, and write a portable markdown tree or
// a rendered HTML tree.
package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// renderer converts the transformed portable markdown to HTML. Raw HTML must
// stay enabled: converted callouts are emitted as container markup.
var renderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Content}}
</body>
</html>
`))

// RenderHTML converts markdown to a standalone HTML page.
func RenderHTML(markdown []byte, title string) ([]byte, error) {
	var body bytes.Buffer
	if err := renderer.Convert(markdown, &body); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	var page bytes.Buffer
	data := struct {
		Title   string
		Content template.HTML
	}{Title: title, Content: template.HTML(body.String())} // #nosec G203 -- goldmark output
	if err := pageTemplate.Execute(&page, data); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return page.Bytes(), nil
}
