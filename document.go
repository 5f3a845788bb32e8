package md2docx

import "encoding/json"

// Alignment positions a block within the page column.
type Alignment string

// Alignment constants.
const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Numbering style identifiers. Both definitions are registered exactly once
// per document, before any paragraph references them.
const (
	BulletNumberingID  = 1
	DecimalNumberingID = 2

	// Deepest defined numbering level. Lists nested further reuse it.
	maxNumberingLevel = 1
)

// Fixed indentation values in twips.
const (
	levelOneIndent  = 720
	levelTwoIndent  = 1440
	hangingIndent   = 360
	paragraphIndent = 720
	firstLineIndent = 720
)

// Run is a span of text sharing one formatting state within a paragraph.
// Size is in half-points; zero means inherit the document default.
type Run struct {
	Text   string `json:"text"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
	Mono   bool   `json:"mono,omitempty"`
	Size   int    `json:"size,omitempty"`
}

// Block is one element of the emitted document sequence.
// The set of implementations is closed: *Paragraph and *Image.
type Block interface {
	block()
}

// Indent holds paragraph indentation in twips.
type Indent struct {
	Left      int `json:"left"`
	FirstLine int `json:"firstLine"`
}

// NumberingRef attaches a paragraph to a registered numbering definition.
type NumberingRef struct {
	ID    int `json:"id"`
	Level int `json:"level"`
}

// Paragraph is an ordered sequence of styled runs.
type Paragraph struct {
	Runs      []Run         `json:"runs"`
	Alignment Alignment     `json:"alignment,omitempty"`
	Indent    *Indent       `json:"indent,omitempty"`
	Numbering *NumberingRef `json:"numbering,omitempty"`
}

func (*Paragraph) block() {}

// Image is an embedded picture sized in EMUs, conventionally followed by a
// caption paragraph.
type Image struct {
	Data      []byte    `json:"data"`
	WidthEMU  uint32    `json:"widthEmu"`
	HeightEMU uint32    `json:"heightEmu"`
	Alignment Alignment `json:"alignment,omitempty"`
}

func (*Image) block() {}

// NumberingLevel defines one visual level of a numbering style.
type NumberingLevel struct {
	Level      int    `json:"level"`
	Format     string `json:"format"` // "bullet", "decimal", "lowerLetter"
	Text       string `json:"text"`   // level text, e.g. "•" or "%1."
	Justify    string `json:"justify"`
	Start      int    `json:"start"`
	IndentLeft int    `json:"indentLeft"` // twips
	Hanging    int    `json:"hanging"`    // twips
}

// NumberingDefinition is a document-scoped list style.
type NumberingDefinition struct {
	ID     int              `json:"id"`
	Levels []NumberingLevel `json:"levels"`
}

// Document is the ordered block sequence handed to the packaging collaborator.
type Document struct {
	Metadata   *Metadata             `json:"metadata,omitempty"`
	Numberings []NumberingDefinition `json:"numberings"`
	Blocks     []Block               `json:"blocks"`
}

// defaultNumberings returns the two list styles every document declares:
// a bullet style (disc, then hollow circle) and a numbered style
// (decimal, then lower-case letter).
func defaultNumberings() []NumberingDefinition {
	return []NumberingDefinition{
		{
			ID: BulletNumberingID,
			Levels: []NumberingLevel{
				{Level: 0, Format: "bullet", Text: "•", Justify: "left", Start: 1, IndentLeft: levelOneIndent, Hanging: hangingIndent},
				{Level: 1, Format: "bullet", Text: "○", Justify: "left", Start: 1, IndentLeft: levelTwoIndent, Hanging: hangingIndent},
			},
		},
		{
			ID: DecimalNumberingID,
			Levels: []NumberingLevel{
				{Level: 0, Format: "decimal", Text: "%1.", Justify: "left", Start: 1, IndentLeft: levelOneIndent, Hanging: hangingIndent},
				{Level: 1, Format: "lowerLetter", Text: "%2)", Justify: "left", Start: 1, IndentLeft: levelTwoIndent, Hanging: hangingIndent},
			},
		},
	}
}

// MarshalJSON tags the paragraph with its block type so the packaging
// collaborator can round-trip the heterogeneous block sequence.
func (p *Paragraph) MarshalJSON() ([]byte, error) {
	type alias Paragraph
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{Type: "paragraph", alias: (*alias)(p)})
}

// MarshalJSON tags the image with its block type.
func (img *Image) MarshalJSON() ([]byte, error) {
	type alias Image
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{Type: "image", alias: (*alias)(img)})
}
