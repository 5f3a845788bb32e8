package md2docx

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

// Heading size tiers in half-points, depth 1 through 4+.
func headingSize(level int) int {
	switch level {
	case 1:
		return 36
	case 2:
		return 28
	case 3:
		return 24
	default:
		return 20
	}
}

// emitter is the second pass over the tree. It consumes the reference map
// built by the collection pass and produces the ordered block sequence.
// All of its state is private to a single emission and does not outlive it.
type emitter struct {
	source  []byte
	refs    *ReferenceMap
	baseDir string
	logger  *slog.Logger

	strong   stackCounter
	emphasis stackCounter
	lists    []listKind

	// Accumulator for the paragraph currently being built. Runs emitted by
	// inline handlers land here until the enclosing block handler flushes.
	para      *Paragraph
	paraAlign Alignment

	blocks []Block
}

func newEmitter(source []byte, refs *ReferenceMap, baseDir string, logger *slog.Logger) *emitter {
	return &emitter{source: source, refs: refs, baseDir: baseDir, logger: logger}
}

// emit walks the tree and returns the block sequence. Formatting depths and
// the list stack are zero/empty before and after a balanced traversal.
func (e *emitter) emit(root ast.Node) []Block {
	e.dispatch(root)
	if e.strong.active() || e.emphasis.active() || len(e.lists) > 0 {
		e.logger.Error("formatting state not balanced after emission",
			"boldDepth", e.strong.depth, "italicDepth", e.emphasis.depth, "listDepth", len(e.lists))
	}
	return e.blocks
}

// dispatch routes a node to its handler. The variant set is closed:
// recognized kinds get dedicated handlers, anything else degrades through
// visitUnsupported rather than aborting the conversion.
func (e *emitter) dispatch(n ast.Node) {
	switch t := n.(type) {
	case *ast.Document:
		e.walkChildren(t)
	case *ast.Heading:
		e.visitHeading(t)
	case *ast.Paragraph:
		e.visitParagraph(t)
	case *ast.TextBlock:
		e.walkChildren(t)
	case *ast.Blockquote:
		// No dedicated styling; the quoted content still renders.
		e.walkChildren(t)
	case *ast.Text:
		e.visitText(t)
	case *ast.String:
		e.visitString(t)
	case *ast.Emphasis:
		e.visitEmphasis(t)
	case *ast.Link:
		// Link text renders as ordinary runs; the target is dropped.
		e.walkChildren(t)
	case *ast.AutoLink:
		e.visitAutoLink(t)
	case *ast.List:
		e.visitList(t)
	case *ast.ListItem:
		e.visitListItem(t)
	case *ast.Image:
		e.visitImage(t)
	case *ast.CodeSpan:
		e.visitCodeSpan(t)
	case *ast.FencedCodeBlock:
		e.visitFencedCode(t)
	case *ast.CodeBlock:
		e.visitIndentedCode(t)
	case *east.Table:
		e.visitTable(t)
	case *east.TableHeader:
		e.visitTableRow(t)
	case *east.TableRow:
		e.visitTableRow(t)
	case *east.TableCell:
		e.visitTableCell(t)
	case *east.Strikethrough:
		e.logger.Debug("strikethrough styling is not supported, rendering plain")
		e.walkChildren(t)
	case *east.TaskCheckBox:
		e.logger.Debug("task list markers are not supported, rendering as a plain item")
	case *ast.ThematicBreak:
		e.logger.Debug("thematic breaks have no block equivalent, skipping")
	case *ast.HTMLBlock, *ast.RawHTML:
		e.logger.Warn("embedded HTML is not supported, skipping", "kind", n.Kind().String())
	default:
		e.visitUnsupported(n)
	}
}

// visitUnsupported degrades unrecognized kinds instead of aborting:
// containers pass through to their children, leaves are skipped.
func (e *emitter) visitUnsupported(n ast.Node) {
	if n.HasChildren() {
		e.logger.Warn("unsupported container kind, passing through", "kind", n.Kind().String())
		e.walkChildren(n)
		return
	}
	e.logger.Warn("unsupported leaf kind, skipping", "kind", n.Kind().String())
}

func (e *emitter) walkChildren(n ast.Node) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		e.dispatch(child)
	}
}

// openParagraph starts a fresh run accumulator.
func (e *emitter) openParagraph(p *Paragraph) {
	e.para = p
	e.paraAlign = ""
}

// flushParagraph appends the accumulated paragraph, applying any alignment
// override set during child processing. A paragraph with zero runs is still
// emitted; empty paragraphs provide vertical spacing.
func (e *emitter) flushParagraph() {
	if e.para == nil {
		return
	}
	if e.paraAlign != "" {
		e.para.Alignment = e.paraAlign
	}
	e.blocks = append(e.blocks, e.para)
	e.para = nil
	e.paraAlign = ""
}

// addRun contributes a styled run to the open paragraph accumulator, or
// emits a standalone paragraph when inline content appears outside any
// paragraph context.
func (e *emitter) addRun(r Run) {
	if e.para != nil {
		e.para.Runs = append(e.para.Runs, r)
		return
	}
	e.blocks = append(e.blocks, &Paragraph{Runs: []Run{r}})
}

// styledRun builds a run carrying the current bold/italic depth state.
func (e *emitter) styledRun(text string) Run {
	return Run{Text: text, Bold: e.strong.active(), Italic: e.emphasis.active()}
}

// visitHeading concatenates the heading's direct text children into one
// bold run sized by depth. No reference resolution happens inside headings.
func (e *emitter) visitHeading(h *ast.Heading) {
	var b strings.Builder
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(e.source))
		case *ast.String:
			b.Write(t.Value)
		default:
			e.logger.Warn("non-text node inside heading, skipping", "kind", c.Kind().String())
		}
	}
	e.blocks = append(e.blocks, &Paragraph{
		Runs: []Run{{Text: b.String(), Bold: true, Size: headingSize(h.Level)}},
	})
}

func (e *emitter) visitParagraph(p *ast.Paragraph) {
	e.openParagraph(&Paragraph{Indent: &Indent{Left: paragraphIndent, FirstLine: firstLineIndent}})
	e.walkChildren(p)
	e.flushParagraph()
}

func (e *emitter) visitText(t *ast.Text) {
	val := normalizeInline(string(t.Segment.Value(e.source)))
	val = e.refs.Resolve(val, e.logger)
	if t.SoftLineBreak() || t.HardLineBreak() {
		if !strings.HasSuffix(val, " ") {
			val += " "
		}
	}
	if val == "" {
		return
	}
	e.addRun(e.styledRun(val))
}

func (e *emitter) visitString(s *ast.String) {
	val := e.refs.Resolve(normalizeInline(string(s.Value)), e.logger)
	if val == "" {
		return
	}
	e.addRun(e.styledRun(val))
}

// visitEmphasis pushes the matching depth counter around its children.
// Goldmark models both spans as Emphasis: level 2 and up is strong.
func (e *emitter) visitEmphasis(em *ast.Emphasis) {
	counter := &e.emphasis
	if em.Level >= 2 {
		counter = &e.strong
	}
	counter.push()
	e.walkChildren(em)
	counter.pop()
}

func (e *emitter) visitAutoLink(l *ast.AutoLink) {
	e.addRun(e.styledRun(string(l.Label(e.source))))
}

func (e *emitter) visitList(l *ast.List) {
	kind := listUnordered
	if l.IsOrdered() {
		kind = listOrdered
	}
	e.lists = append(e.lists, kind)
	e.walkChildren(l)
	e.lists = e.lists[:len(e.lists)-1]
}

// visitListItem renders one item of the innermost list context. Paragraph
// children are flattened into the item's own paragraph to avoid an extra
// nested paragraph; other children (nested lists) dispatch normally after
// the item's text has been flushed.
func (e *emitter) visitListItem(item *ast.ListItem) {
	if len(e.lists) == 0 {
		e.logger.Warn("list item found outside of a list context")
		return
	}

	kind := e.lists[len(e.lists)-1]
	level := len(e.lists) - 1
	if level > maxNumberingLevel {
		// Deeper nesting reuses the deepest defined level.
		level = maxNumberingLevel
	}

	e.openParagraph(&Paragraph{Numbering: &NumberingRef{ID: kind.numberingID(), Level: level}})

	var nested []ast.Node
	loose := 0
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.TextBlock:
			e.walkChildren(t)
		case *ast.Paragraph:
			loose++
			e.walkChildren(t)
		default:
			nested = append(nested, c)
		}
	}
	if loose > 0 {
		e.logger.Debug("loose list items are not supported, rendering tight")
	}
	e.flushParagraph()

	for _, c := range nested {
		e.dispatch(c)
	}
}

func (e *emitter) visitCodeSpan(cs *ast.CodeSpan) {
	val := nodeText(cs, e.source)
	if val == "" {
		return
	}
	r := e.styledRun(val)
	r.Mono = true
	e.addRun(r)
}

// visitTable renders each row as a tab-separated paragraph of styled runs
// and, when a cell carries caption metadata, a trailing caption paragraph.
func (e *emitter) visitTable(t *east.Table) {
	var caption *TableCellMetadata
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		if caption == nil {
			caption = findRowCaption(row, e.source)
		}
		e.visitTableRow(row)
	}
	if caption == nil {
		return
	}

	text := "Table ??: " + caption.Caption
	if n, ok := e.refs.Table(caption.Ref); ok {
		text = fmt.Sprintf("Table %d: %s", n, caption.Caption)
	}
	e.blocks = append(e.blocks, &Paragraph{
		Runs:      []Run{{Text: text, Italic: true}},
		Alignment: AlignCenter,
	})
}

func findRowCaption(row ast.Node, source []byte) *TableCellMetadata {
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		if meta, ok := decodeCellMetadata(firstTextValue(cell, source)); ok {
			return &meta
		}
	}
	return nil
}

func (e *emitter) visitTableRow(row ast.Node) {
	e.openParagraph(&Paragraph{})
	first := true
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		c, ok := cell.(*east.TableCell)
		if !ok {
			continue
		}
		if !first {
			e.addRun(Run{Text: "\t"})
		}
		first = false
		e.visitTableCell(c)
	}
	e.flushParagraph()
}

// visitTableCell renders a cell's inline content into the row paragraph.
// A leading metadata payload is consumed, not rendered.
func (e *emitter) visitTableCell(cell *east.TableCell) {
	// Alignment is a row-paragraph attribute; with mixed column specs the
	// first aligned column sets it and later columns do not override.
	if e.paraAlign == "" {
		switch cell.Alignment {
		case east.AlignCenter:
			e.paraAlign = AlignCenter
		case east.AlignRight:
			e.paraAlign = AlignRight
		}
	}

	checkedFirst := false
	for c := cell.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok && !checkedFirst {
			checkedFirst = true
			if _, isMeta := decodeCellMetadata(string(t.Segment.Value(e.source))); isMeta {
				continue
			}
		}
		e.dispatch(c)
	}
}
