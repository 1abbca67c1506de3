package frontmatter

import (
	"bytes"
	"errors"
)

// delimiter is the line that opens and closes a YAML metadata block.
const delimiter = "---"

// ErrMissingClosingDelimiter indicates the document started with a metadata
// delimiter but never closed it.
var ErrMissingClosingDelimiter = errors.New("metadata start delimiter found but closing delimiter is missing")

// Document is a source file split into its YAML metadata block and markdown body.
//
// Raw holds the metadata bytes without the surrounding delimiter lines. The
// newline flavor of the source is retained so Join can reassemble a document
// without normalizing line endings.
type Document struct {
	Raw     []byte
	Body    []byte
	HasMeta bool
	newline string
}

// Split separates a `---` delimited YAML metadata block from the markdown body.
//
// When the content does not open with a delimiter line, the whole input is the
// body and HasMeta is false.
func Split(content []byte) (Document, error) {
	nl := detectNewline(content)
	doc := Document{Body: content, newline: nl}

	open := []byte(delimiter + nl)
	if !bytes.HasPrefix(content, open) {
		return doc, nil
	}

	rest := content[len(open):]
	// An immediately closed block is legal: empty metadata.
	if bytes.HasPrefix(rest, open) {
		doc.Raw = []byte{}
		doc.Body = rest[len(open):]
		doc.HasMeta = true
		return doc, nil
	}

	closing := []byte(nl + delimiter + nl)
	idx := bytes.Index(rest, closing)
	if idx < 0 {
		return Document{newline: nl}, ErrMissingClosingDelimiter
	}

	doc.Raw = rest[: idx+len(nl) : idx+len(nl)]
	doc.Body = rest[idx+len(closing):]
	doc.HasMeta = true
	return doc, nil
}

// Join reassembles the document. Documents without metadata round-trip to the
// bare body.
func (d Document) Join() []byte {
	if !d.HasMeta {
		return d.Body
	}
	nl := d.newline
	if nl == "" {
		nl = "\n"
	}
	fence := []byte(delimiter + nl)

	out := make([]byte, 0, 2*len(fence)+len(d.Raw)+len(d.Body))
	out = append(out, fence...)
	out = append(out, d.Raw...)
	out = append(out, fence...)
	out = append(out, d.Body...)
	return out
}

// detectNewline returns the newline sequence used by the first line break in
// content, defaulting to "\n" for single-line input.
func detectNewline(content []byte) string {
	if idx := bytes.IndexByte(content, '\n'); idx > 0 && content[idx-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
