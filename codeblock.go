package md2docx

import (
	"log/slog"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// codeStyleName selects the chroma style whose bold/italic attributes map
// onto run formatting.
const codeStyleName = "github"

func (e *emitter) visitFencedCode(cb *ast.FencedCodeBlock) {
	lang := ""
	if info := cb.Language(e.source); info != nil {
		lang = string(info)
	}
	e.emitCode(codeText(cb.Lines(), e.source), lang)
}

func (e *emitter) visitIndentedCode(cb *ast.CodeBlock) {
	e.emitCode(codeText(cb.Lines(), e.source), "")
}

func (e *emitter) emitCode(source, lang string) {
	if source == "" {
		return
	}
	e.blocks = append(e.blocks, &Paragraph{
		Runs:   codeRuns(strings.TrimRight(source, "\n"), lang, e.logger),
		Indent: &Indent{Left: paragraphIndent},
	})
}

func codeText(lines *text.Segments, source []byte) string {
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

// codeRuns tokenizes code and emits one monospace run per token, carrying
// the bold/italic attributes of the style entry for that token type.
// Any tokenization failure degrades to a single plain run.
func codeRuns(source, lang string, logger *slog.Logger) []Run {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		logger.Warn("code tokenization failed, emitting plain runs", "language", lang, "error", err)
		return []Run{{Text: source, Mono: true}}
	}

	style := styles.Get(codeStyleName)
	if style == nil {
		style = styles.Fallback
	}

	var runs []Run
	for token := iterator(); token != chroma.EOF; token = iterator() {
		if token.Value == "" {
			continue
		}
		entry := style.Get(token.Type)
		runs = append(runs, Run{
			Text:   token.Value,
			Mono:   true,
			Bold:   entry.Bold == chroma.Yes,
			Italic: entry.Italic == chroma.Yes,
		})
	}
	if len(runs) == 0 {
		return []Run{{Text: source, Mono: true}}
	}
	return runs
}
