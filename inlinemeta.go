package md2docx

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// ImageModifiers is the compact JSON payload an image may carry in its
// alternate text: {"scale": <float>, "ref": <string|null>}.
type ImageModifiers struct {
	Scale float64 `json:"scale"`
	Ref   string  `json:"ref"`
}

// decodeImageModifiers parses image alt text. Absent or malformed payloads
// fall back to defaults (scale 1.0, no reference) rather than failing the
// conversion.
func decodeImageModifiers(alt string, logger *slog.Logger) ImageModifiers {
	mods := ImageModifiers{Scale: 1.0}
	alt = strings.TrimSpace(alt)
	if alt == "" {
		return mods
	}
	if err := json.Unmarshal([]byte(alt), &mods); err != nil {
		logger.Debug("image alt text is not an inline metadata payload", "alt", alt, "error", err)
		return ImageModifiers{Scale: 1.0}
	}
	if mods.Scale <= 0 {
		logger.Warn("non-positive image scale, using 1.0", "scale", mods.Scale)
		mods.Scale = 1.0
	}
	return mods
}

// TableCellMetadata is the payload a table cell may carry in its first text
// content: {"caption": <string>, "ref": <string>}. A table is registered in
// the table namespace only when the payload carries a reference key; a
// caption alone still renders, numbered "??".
type TableCellMetadata struct {
	Caption string `json:"caption"`
	Ref     string `json:"ref"`
}

// decodeCellMetadata parses the first text content of a table cell.
// Returns false when the text does not hold a metadata payload.
func decodeCellMetadata(text string) (TableCellMetadata, bool) {
	var meta TableCellMetadata
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "{") {
		return meta, false
	}
	if err := json.Unmarshal([]byte(text), &meta); err != nil {
		return TableCellMetadata{}, false
	}
	if meta.Caption == "" && meta.Ref == "" {
		return TableCellMetadata{}, false
	}
	return meta, true
}
