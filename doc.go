// Package md2docx transforms parsed Markdown into a sequence of formatted
// document blocks ready for packaging into a binary document container.
//
// # Quick Start
//
// Create a service and convert markdown:
//
//	svc := md2docx.New()
//	doc, err := svc.Convert(ctx, md2docx.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    BaseDir:  "/path/to/markdown",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The result is an ordered block sequence (paragraphs of styled runs and
// embedded images) plus the document's list-numbering definitions; handing
// it to a container serializer is the caller's concern.
//
// # Conversion Pipeline
//
//  1. Markdown preprocessing (line-ending normalization, blank-line compression)
//  2. Front-matter extraction (YAML title/author/affiliation)
//  3. Markdown parsing via Goldmark (GFM)
//  4. Reference collection: figures and tables are numbered in encounter
//     order, before any output is produced
//  5. Emission: a second traversal resolves {ref: key} placeholders,
//     tracks nested formatting and list state, and produces the blocks
//
// The two traversals exist because references may be used before they are
// defined; emission never starts before collection has seen the whole tree.
//
// # Cross-References
//
// An image carries metadata in its alternate text as compact JSON:
//
//	![{"scale": 0.5, "ref": "fig-results"}](results.png "Results")
//
// Any text may then refer to it with {ref: fig-results}, before or after
// the image, and the placeholder resolves to "Figure N". Table cells carry
// {"caption": ..., "ref": ...} the same way, resolving to "Table N".
//
// # Degradation
//
// Conversion never aborts for document-level problems: duplicate reference
// keys keep their first registration, unknown placeholders stay verbatim,
// missing images become italic placeholder paragraphs, and unsupported
// node kinds pass through to their children or are skipped. All of these
// are reported through the logger configured with WithLogger.
package md2docx
