package md2docx

import (
	"log/slog"
	"strings"

	"github.com/md2docx/go-md2docx/internal/yamlutil"
)

const frontMatterFence = "---"

// splitFrontMatter extracts a leading YAML metadata block delimited by ---
// lines. When the content carries no block, or the block fails to parse,
// the original content is returned untouched with nil metadata.
func splitFrontMatter(content string, logger *slog.Logger) (*Metadata, string) {
	trimmed := strings.TrimLeft(content, " \t\n")
	if !strings.HasPrefix(trimmed, frontMatterFence+"\n") {
		return nil, content
	}

	rest := trimmed[len(frontMatterFence)+1:]
	end := strings.Index(rest, "\n"+frontMatterFence)
	if end < 0 {
		return nil, content
	}
	after := rest[end+1+len(frontMatterFence):]
	if after != "" && !strings.HasPrefix(after, "\n") {
		// The closing fence must sit on its own line.
		return nil, content
	}

	var meta Metadata
	if err := yamlutil.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		logger.Debug("front matter failed to parse, treating as content", "error", err)
		return nil, content
	}

	return &meta, strings.TrimPrefix(after, "\n")
}

// Metadata title-block sizes in half-points.
const (
	titleSize  = 40
	bylineSize = 24
)

// metadataBlocks renders the document's title block: a centered bold title,
// centered italic author and affiliation lines, and one blank paragraph.
// Affiliation renders only when an author is present.
func metadataBlocks(meta *Metadata) []Block {
	if meta == nil {
		return nil
	}

	var blocks []Block
	if meta.Title != "" {
		blocks = append(blocks, &Paragraph{
			Runs:      []Run{{Text: meta.Title, Bold: true, Size: titleSize}},
			Alignment: AlignCenter,
		})
	}
	if meta.Author != "" {
		blocks = append(blocks, &Paragraph{
			Runs:      []Run{{Text: meta.Author, Italic: true, Size: bylineSize}},
			Alignment: AlignCenter,
		})
		if meta.Affiliation != "" {
			blocks = append(blocks, &Paragraph{
				Runs:      []Run{{Text: meta.Affiliation, Italic: true, Size: bylineSize}},
				Alignment: AlignCenter,
			})
		}
	}

	// Blank line separating the title block from the body.
	return append(blocks, &Paragraph{})
}
