package md2docx

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// refPattern matches inline placeholder tokens of the shape {ref: key}.
// Whitespace around the key is ignored.
var refPattern = regexp.MustCompile(`\{ref:\s*([^}]*)\}`)

// ReferenceMap holds the figure and table numbers assigned during the
// collection pass. The two namespaces are independent, each with its own
// counter. The map is built once and is immutable during emission.
type ReferenceMap struct {
	figures map[string]int
	tables  map[string]int
}

func newReferenceMap() *ReferenceMap {
	return &ReferenceMap{
		figures: make(map[string]int),
		tables:  make(map[string]int),
	}
}

// Figure returns the number assigned to a figure reference key.
func (m *ReferenceMap) Figure(key string) (int, bool) {
	n, ok := m.figures[key]
	return n, ok
}

// Table returns the number assigned to a table reference key.
func (m *ReferenceMap) Table(key string) (int, bool) {
	n, ok := m.tables[key]
	return n, ok
}

// FigureCount returns the number of keyed figures registered.
func (m *ReferenceMap) FigureCount() int {
	return len(m.figures)
}

// TableCount returns the number of keyed tables registered.
func (m *ReferenceMap) TableCount() int {
	return len(m.tables)
}

// Resolve rewrites every {ref: key} placeholder in text. Keys are looked up
// in the figure namespace first, then the table namespace. Matches resolve
// to "Figure N" or "Table N"; unknown keys are logged and left verbatim.
//
// The scan moves strictly left to right and never revisits replacement
// text, so a replacement that itself resembles the pattern cannot loop.
// A string without any placeholder is returned unchanged.
func (m *ReferenceMap) Resolve(text string, logger *slog.Logger) string {
	loc := refPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}

	var b strings.Builder
	cursor := 0
	for loc != nil {
		start, end := cursor+loc[0], cursor+loc[1]
		key := strings.TrimSpace(text[cursor+loc[2] : cursor+loc[3]])

		b.WriteString(text[cursor:start])
		if n, ok := m.figures[key]; ok {
			fmt.Fprintf(&b, "Figure %d", n)
		} else if n, ok := m.tables[key]; ok {
			fmt.Fprintf(&b, "Table %d", n)
		} else {
			logger.Warn("reference not found in collected references", "key", key)
			b.WriteString(text[start:end])
		}

		cursor = end
		loc = refPattern.FindStringSubmatchIndex(text[cursor:])
	}
	b.WriteString(text[cursor:])
	return b.String()
}
