package md2docx

import (
	"io"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// testLogger discards diagnostics; tests assert on output, not logs.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// parseMarkdown builds the node tree the same way the service does.
func parseMarkdown(source []byte) ast.Node {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	return md.Parser().Parse(text.NewReader(source))
}

// emitBlocks runs both passes over markdown source.
func emitBlocks(source string, baseDir string) []Block {
	src := []byte(source)
	root := parseMarkdown(src)
	refs := collectReferences(root, src, testLogger())
	return newEmitter(src, refs, baseDir, testLogger()).emit(root)
}

// paragraphs filters the block sequence down to paragraphs.
func paragraphs(blocks []Block) []*Paragraph {
	var out []*Paragraph
	for _, b := range blocks {
		if p, ok := b.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// runTexts concatenates the text of all runs in a paragraph.
func runTexts(p *Paragraph) string {
	var s string
	for _, r := range p.Runs {
		s += r.Text
	}
	return s
}
