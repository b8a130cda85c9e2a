package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/Horopapera/Mind-Map-generator/internal/outline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Headings and list
// items become nodes; other blocks become leaves under the nearest heading.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*outline.Forest, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	// Reduce the AST to depth-tagged records and let the shared builder do
	// the tree construction. Heading levels 1..6 map to depths 0..5; lists
	// and loose text nest one step below the current heading.
	var records []outline.LineRecord
	headingDepth := -1

	var walkList func(list *ast.List, depth int)
	walkList = func(list *ast.List, depth int) {
		for li := list.FirstChild(); li != nil; li = li.NextSibling() {
			var label string
			var nested []*ast.List
			for c := li.FirstChild(); c != nil; c = c.NextSibling() {
				if sub, ok := c.(*ast.List); ok {
					nested = append(nested, sub)
					continue
				}
				if label == "" {
					label = collapseSpace(string(c.Text(src)))
				}
			}
			if label != "" {
				records = append(records, outline.LineRecord{Content: label, Depth: depth})
			}
			for _, sub := range nested {
				walkList(sub, depth+1)
			}
		}
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := collapseSpace(string(node.Text(src)))
			if title == "" {
				continue
			}
			headingDepth = node.Level - 1
			records = append(records, outline.LineRecord{Content: title, Depth: headingDepth})
		case *ast.List:
			walkList(node, headingDepth+1)
		default:
			t := collapseSpace(blockText(n, src))
			if t != "" {
				records = append(records, outline.LineRecord{Content: t, Depth: headingDepth + 1})
			}
		}
	}

	return outline.Build(records), nil
}

// blockText gets the raw text content of a goldmark block node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	if buf.Len() == 0 {
		buf.Write(n.Text(src))
	}
	return buf.String()
}

// collapseSpace squashes all runs of whitespace to single spaces so multi-line
// blocks yield single-line labels.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
