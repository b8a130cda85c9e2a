package parser

import (
	"io"

	"github.com/Horopapera/Mind-Map-generator/internal/outline"
)

// TextParser handles indentation-structured plain text. This is the native
// input format: two leading spaces encode one nesting level, and bullet,
// tree-connector and numbering decorations are stripped from labels.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*outline.Forest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return outline.Parse(string(data)), nil
}
