package md2docx

// stackCounter tracks how deep the emitter currently is inside a nested
// formatting span. A depth counter rather than a boolean: strong and
// emphasis spans can nest or interleave, and formatting must only switch
// off when the outermost enclosing span closes.
type stackCounter struct {
	depth uint
}

func (c *stackCounter) push() {
	c.depth++
}

// pop decrements the counter. Popping at zero is a no-op, never a panic:
// an unbalanced tree must degrade, not crash the conversion.
func (c *stackCounter) pop() {
	if c.depth > 0 {
		c.depth--
	}
}

func (c *stackCounter) active() bool {
	return c.depth > 0
}

// listKind distinguishes ordered from unordered list contexts.
type listKind int

const (
	listUnordered listKind = iota
	listOrdered
)

func (k listKind) numberingID() int {
	if k == listOrdered {
		return DecimalNumberingID
	}
	return BulletNumberingID
}
