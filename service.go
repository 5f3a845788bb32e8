package md2docx

import (
	"context"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Service orchestrates the markdown-to-document pipeline.
type Service struct {
	cfg          serviceConfig
	preprocessor markdownPreprocessor
	md           goldmark.Markdown
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithLogger).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:          serviceConfig{logger: slog.Default()},
		preprocessor: &commonMarkPreprocessor{},
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM, // tables, strikethrough, autolinks, task lists
			),
		),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert runs the two-pass pipeline and returns the document model.
//
// The collection pass runs over the entire tree before emission starts:
// references may be defined anywhere relative to their uses, and a single
// pass cannot resolve the forward ones. The context is checked between
// stages for cancellation.
func (s *Service) Convert(ctx context.Context, input Input) (*Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Normalize source
	content := s.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Split off front matter; explicitly supplied metadata wins over it
	meta, body := splitFrontMatter(content, s.cfg.logger)
	if input.Metadata != nil {
		meta = input.Metadata
	}

	// Parse markdown to the node tree
	source := []byte(body)
	root := s.md.Parser().Parse(text.NewReader(source))
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Pass 1: assign figure and table numbers before any output exists
	refs := collectReferences(root, source, s.cfg.logger)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	doc := &Document{
		Metadata: meta,
		// List styles are declared once, before any paragraph can
		// reference them.
		Numberings: defaultNumberings(),
	}
	doc.Blocks = append(doc.Blocks, metadataBlocks(meta)...)

	// Pass 2: emit the block sequence
	em := newEmitter(source, refs, input.BaseDir, s.cfg.logger)
	doc.Blocks = append(doc.Blocks, em.emit(root)...)

	return doc, nil
}
