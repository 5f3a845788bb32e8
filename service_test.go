package md2docx_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	md2docx "github.com/md2docx/go-md2docx"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConvert_EmptyMarkdown(t *testing.T) {
	t.Parallel()

	svc := md2docx.New()
	_, err := svc.Convert(context.Background(), md2docx.Input{})
	if !errors.Is(err, md2docx.ErrEmptyMarkdown) {
		t.Fatalf("error = %v, want %v", err, md2docx.ErrEmptyMarkdown)
	}
}

func TestConvert_BaseDirMustExist(t *testing.T) {
	t.Parallel()

	svc := md2docx.New()
	_, err := svc.Convert(context.Background(), md2docx.Input{
		Markdown: "# Hi",
		BaseDir:  filepath.Join(t.TempDir(), "missing"),
	})
	if !errors.Is(err, md2docx.ErrBaseDirNotFound) {
		t.Fatalf("error = %v, want %v", err, md2docx.ErrBaseDirNotFound)
	}
}

func TestConvert_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := md2docx.New()
	_, err := svc.Convert(ctx, md2docx.Input{Markdown: "# Hi"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want %v", err, context.Canceled)
	}
}

func TestConvert_FrontMatterBecomesTitleBlock(t *testing.T) {
	t.Parallel()

	markdown := `---
title: Report
author: Ada
affiliation: Analytical Engines
---

Body paragraph.
`
	svc := md2docx.New(md2docx.WithLogger(discardLogger()))
	doc, err := svc.Convert(context.Background(), md2docx.Input{Markdown: markdown})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Metadata == nil || doc.Metadata.Title != "Report" {
		t.Fatalf("metadata = %+v, want front matter parsed", doc.Metadata)
	}

	// Title block precedes the body: title, author, affiliation, spacer.
	first, ok := doc.Blocks[0].(*md2docx.Paragraph)
	if !ok || len(first.Runs) == 0 || first.Runs[0].Text != "Report" {
		t.Fatalf("blocks[0] = %+v, want title paragraph", doc.Blocks[0])
	}
	if !first.Runs[0].Bold || first.Alignment != md2docx.AlignCenter {
		t.Errorf("title paragraph = %+v, want centered bold", first)
	}
}

func TestConvert_ExplicitMetadataWins(t *testing.T) {
	t.Parallel()

	markdown := "---\ntitle: Front Matter Title\n---\n\nBody.\n"
	svc := md2docx.New(md2docx.WithLogger(discardLogger()))
	doc, err := svc.Convert(context.Background(), md2docx.Input{
		Markdown: markdown,
		Metadata: &md2docx.Metadata{Title: "Explicit"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Metadata.Title != "Explicit" {
		t.Errorf("title = %q, want explicit metadata to win", doc.Metadata.Title)
	}
}

func TestConvert_NumberingsAlwaysDeclared(t *testing.T) {
	t.Parallel()

	svc := md2docx.New(md2docx.WithLogger(discardLogger()))
	doc, err := svc.Convert(context.Background(), md2docx.Input{Markdown: "no lists here"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Numberings) != 2 {
		t.Errorf("got %d numbering definitions, want both declared up front", len(doc.Numberings))
	}
}

// End-to-end: pinned numbers survive forward references, tables and images
// interleaved in one document.
func TestConvert_CrossReferencedDocument(t *testing.T) {
	t.Parallel()

	markdown := `# Results

As {ref: perf} shows, throughput doubled; {ref: arch} has the layout.

| Stage | Time |
| ----- | ---- |
| {"caption": "Performance", "ref": "perf"} | |
| parse | 4ms |

![{"ref": "arch"}](layout.png "Layout")
`
	svc := md2docx.New(md2docx.WithLogger(discardLogger()))
	doc, err := svc.Convert(context.Background(), md2docx.Input{Markdown: markdown})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var texts []string
	for _, b := range doc.Blocks {
		p, ok := b.(*md2docx.Paragraph)
		if !ok {
			continue
		}
		var s strings.Builder
		for _, r := range p.Runs {
			s.WriteString(r.Text)
		}
		texts = append(texts, s.String())
	}
	joined := strings.Join(texts, "\n")

	if !strings.Contains(joined, "As Table 1 shows, throughput doubled; Figure 1 has the layout.") {
		t.Errorf("body text missing resolved references:\n%s", joined)
	}
	if !strings.Contains(joined, "Table 1: Performance") {
		t.Errorf("table caption missing:\n%s", joined)
	}
	// No base directory: the image degrades to a placeholder, but its
	// figure number was still assigned during collection.
	if !strings.Contains(joined, "[Image: layout.png]") {
		t.Errorf("image placeholder missing:\n%s", joined)
	}
}

func TestWithLogger_NilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil logger")
		}
	}()
	md2docx.WithLogger(nil)
}
