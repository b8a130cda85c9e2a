package outline

import (
	"regexp"
	"strings"
)

// LineRecord is one surviving input line tagged with its nesting depth.
type LineRecord struct {
	Content string
	Depth   int
	Line    int // 1-indexed line number in the original text
}

// decorationRE matches at most one leading list decoration: a bullet glyph,
// a run of box-drawing tree connectors, or an integer-dot marker, in that
// precedence order. Only one alternative is ever removed per line, so
// "- 1. Item" keeps "1. Item" — stripping is deliberately single-pass.
var decorationRE = regexp.MustCompile(`^(?:[-*+•◦▪‣·–—▸►]\s*|[│├└┌┐┘┬┴┼─]+\s*|\d+\.\s+)`)

// Classify splits text into depth-tagged records, one per surviving line.
// Depth is derived from leading spaces at two spaces per level. Blank lines
// and lines that are empty after decoration stripping are dropped; surviving
// lines keep their original 1-indexed line numbers. Tabs are not treated as
// indentation: a tab stops the leading-space count, so a tab-indented line
// lands at depth 0.
func Classify(text string) []LineRecord {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var records []LineRecord
	for i, raw := range strings.Split(text, "\n") {
		spaces := 0
		for _, r := range raw {
			if r != ' ' {
				break
			}
			spaces++
		}
		depth := spaces / 2

		content := strings.TrimSpace(raw)
		if content == "" {
			continue
		}
		content = strings.TrimSpace(decorationRE.ReplaceAllString(content, ""))
		if content == "" {
			continue
		}

		records = append(records, LineRecord{
			Content: content,
			Depth:   depth,
			Line:    i + 1,
		})
	}
	return records
}
