package md2docx

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register decoders for dimension probing
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/webp"

	"github.com/yuin/goldmark/ast"

	"github.com/md2docx/go-md2docx/internal/fileutil"
)

// Conversion constants for image sizing.
const (
	// PPI is the assumed pixel density of source images.
	PPI = 220
	// EMUsPerInch is the container format's native distance unit per inch.
	EMUsPerInch = 914400
)

// scaledEMU converts a pixel dimension to EMUs at the assumed density and
// applies the per-image scale factor.
func scaledEMU(pixels int, scale float64) uint32 {
	emu := uint64(pixels) * EMUsPerInch / PPI
	return uint32(float64(emu) * scale)
}

// figureNumber resolves the number used in an image's caption.
func (e *emitter) figureNumber(mods ImageModifiers) int {
	if mods.Ref != "" {
		n, ok := e.refs.Figure(mods.Ref)
		if !ok {
			// Cannot occur once the collection pass has run over the
			// same tree; fall back rather than invent a number.
			e.logger.Warn("figure reference missing from collected references", "key", mods.Ref)
			return 0
		}
		return n
	}
	// Unkeyed images take a position derived from the size of the figure
	// namespace at encounter time. The namespace is fixed during this pass,
	// so this can collide with keyed figure numbers; kept for compatibility
	// with documents authored against that numbering.
	return e.refs.FigureCount() + 1
}

// visitImage embeds the image with a caption, or degrades to an italic
// placeholder paragraph. A missing or unreadable image never aborts the
// conversion; the rest of the document is still produced.
func (e *emitter) visitImage(img *ast.Image) {
	alt := nodeText(img, e.source)
	url := string(img.Destination)
	title := string(img.Title)

	mods := decodeImageModifiers(alt, e.logger)
	figure := e.figureNumber(mods)

	if e.baseDir == "" {
		e.logger.Warn("no base directory available to resolve image", "url", url)
		e.emitImagePlaceholder(fmt.Sprintf("[Image: %s]", url))
		return
	}
	if fileutil.IsURL(url) {
		e.logger.Warn("remote images are not supported", "url", url)
		e.emitImagePlaceholder(fmt.Sprintf("[Image: %s]", url))
		return
	}

	path := filepath.Join(e.baseDir, url)
	if !fileutil.FileExists(path) {
		e.logger.Warn("image file not found", "path", path)
		e.emitImagePlaceholder(fmt.Sprintf("[Image: %s (not found)]", url))
		return
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path resolved under the caller's base directory
	if err != nil {
		e.logger.Warn("failed to read image file", "path", path, "error", err)
		e.emitImagePlaceholder(fmt.Sprintf("[Image: %s (could not read file)]", path))
		return
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		e.logger.Warn("failed to decode image dimensions", "path", path, "error", err)
		e.emitImagePlaceholder(fmt.Sprintf("[Image: %s (could not read file)]", path))
		return
	}
	e.logger.Debug("embedding image", "path", path, "format", format,
		"width", cfg.Width, "height", cfg.Height, "scale", mods.Scale)

	e.blocks = append(e.blocks, &Image{
		Data:      data,
		WidthEMU:  scaledEMU(cfg.Width, mods.Scale),
		HeightEMU: scaledEMU(cfg.Height, mods.Scale),
		Alignment: AlignCenter,
	})
	e.blocks = append(e.blocks, &Paragraph{
		Runs:      []Run{{Text: captionText(figure, title, alt), Italic: true}},
		Alignment: AlignCenter,
	})
}

// captionText formats "Figure N: title-or-alt", or "Figure N" when both the
// title and the alternate text are empty.
func captionText(figure int, title, alt string) string {
	display := title
	if display == "" {
		display = alt
	}
	if display == "" {
		return fmt.Sprintf("Figure %d", figure)
	}
	return fmt.Sprintf("Figure %d: %s", figure, display)
}

func (e *emitter) emitImagePlaceholder(text string) {
	e.blocks = append(e.blocks, &Paragraph{
		Runs:      []Run{{Text: text, Italic: true}},
		Alignment: AlignCenter,
	})
}
