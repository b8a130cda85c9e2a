package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Horopapera/Mind-Map-generator/internal/outline"
)

// Parser converts raw document bytes into an outline forest. Every importer
// normalizes its format to the same model the plain-text pipeline produces:
// non-empty labels, sibling order equal to source order, and levels that grow
// strictly downward.
type Parser interface {
	Parse(r io.Reader, filename string) (*outline.Forest, error)
}

// SupportedExtensions lists file extensions this service can import.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".yaml":     true,
	".yml":      true,
	".csv":      true,
	".docx":     true,
	".pdf":      true,
}

// ForFile returns the appropriate parser for a filename. Files without an
// extension get the plain-text indentation parser.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", "":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".yaml", ".yml":
		return &YAMLParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == "" || SupportedExtensions[ext]
}
