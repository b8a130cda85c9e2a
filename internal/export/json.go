// Package export serializes forests and layouts to static file formats.
// Exporters are read-only consumers; none of them may emit the parent
// back-reference (the node type makes that impossible to get wrong).
package export

import (
	"encoding/json"

	"github.com/Horopapera/Mind-Map-generator/internal/outline"
)

// Format names an export format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "txt"
	FormatOPML Format = "opml"
	FormatSVG  Format = "svg"
	FormatHTML Format = "html"
)

// ContentType returns the MIME type for a format, or "" if unknown.
func ContentType(format Format) string {
	switch format {
	case FormatJSON:
		return "application/json"
	case FormatText:
		return "text/plain; charset=utf-8"
	case FormatOPML:
		return "text/x-opml"
	case FormatSVG:
		return "image/svg+xml"
	case FormatHTML:
		return "text/html; charset=utf-8"
	}
	return ""
}

// JSON renders the forest as indented JSON, nested by children.
func JSON(f *outline.Forest) ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}
