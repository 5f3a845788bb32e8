package md2docx

import (
	"log/slog"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

// referenceCollector is the first pass over the tree. It assigns sequence
// numbers to keyed figures and to tables in encounter order, so that the
// emission pass can resolve placeholders that appear before their targets.
// The tree itself is never mutated.
type referenceCollector struct {
	source      []byte
	logger      *slog.Logger
	figureCount int
	tableCount  int
	refs        *ReferenceMap
}

// collectReferences traverses the full tree once and returns the two
// reference namespaces. The emission pass must not start before this
// returns: references may be defined anywhere relative to their uses.
func collectReferences(root ast.Node, source []byte, logger *slog.Logger) *ReferenceMap {
	c := &referenceCollector{source: source, logger: logger, refs: newReferenceMap()}
	c.dispatch(root)
	return c.refs
}

func (c *referenceCollector) dispatch(n ast.Node) {
	switch t := n.(type) {
	case *ast.Image:
		c.collectImage(t)
	case *east.Table:
		c.collectTable(t)
	default:
		c.walkChildren(n)
	}
}

func (c *referenceCollector) walkChildren(n ast.Node) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		c.dispatch(child)
	}
}

// collectImage registers an image's reference key, if it carries one.
// Images without a key do not consume a figure number in this pass.
func (c *referenceCollector) collectImage(img *ast.Image) {
	mods := decodeImageModifiers(nodeText(img, c.source), c.logger)
	if mods.Ref == "" {
		return
	}

	c.figureCount++
	if _, exists := c.refs.figures[mods.Ref]; exists {
		// First registration wins; the collision is reported but the
		// conversion continues.
		c.logger.Error("multiply defined figure reference", "key", mods.Ref)
		return
	}
	c.logger.Info("adding figure reference", "key", mods.Ref, "number", c.figureCount)
	c.refs.figures[mods.Ref] = c.figureCount
}

// collectTable counts every table, captioned or not, then registers any
// reference keys its cells carry against the table's number.
func (c *referenceCollector) collectTable(table *east.Table) {
	c.tableCount++

	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			meta, ok := decodeCellMetadata(firstTextValue(cell, c.source))
			if !ok || meta.Ref == "" {
				continue
			}
			if _, exists := c.refs.tables[meta.Ref]; exists {
				c.logger.Error("multiply defined table reference", "key", meta.Ref)
				continue
			}
			c.logger.Info("adding table reference", "key", meta.Ref, "number", c.tableCount)
			c.refs.tables[meta.Ref] = c.tableCount
		}
	}

	// Cells may still contain keyed images.
	c.walkChildren(table)
}
