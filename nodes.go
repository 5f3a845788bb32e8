package md2docx

import (
	"strings"

	"github.com/yuin/goldmark/ast"
)

// nodeText concatenates the source text of all text descendants of n.
// Used for image alt text and other places where inline structure is
// deliberately flattened.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	appendNodeText(&b, n, source)
	return b.String()
}

func appendNodeText(b *strings.Builder, n ast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		default:
			appendNodeText(b, c, source)
		}
	}
}

// firstTextValue returns the raw value of the first direct text child of n,
// or "" when n has none. Table cells carry their inline metadata payload
// this way.
func firstTextValue(n ast.Node, source []byte) string {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			return string(t.Segment.Value(source))
		}
	}
	return ""
}

// normalizeInline converts newlines to spaces and collapses whitespace runs
// to single spaces, preserving at most one leading and one trailing space so
// adjacent runs keep their word boundaries.
func normalizeInline(s string) string {
	if s == "" {
		return s
	}
	fields := strings.Fields(strings.ReplaceAll(s, "\n", " "))
	out := strings.Join(fields, " ")
	if out == "" {
		// Whitespace-only text still separates words.
		return " "
	}
	if s[0] == ' ' || s[0] == '\t' || s[0] == '\n' {
		out = " " + out
	}
	last := s[len(s)-1]
	if last == ' ' || last == '\t' || last == '\n' {
		out += " "
	}
	return out
}
