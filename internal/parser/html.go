package parser

import (
	"fmt"
	"io"

	"github.com/Horopapera/Mind-Map-generator/internal/outline"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files. Heading tags give the hierarchy; list items
// and text blocks nest under the nearest heading.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*outline.Forest, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var records []outline.LineRecord
	headingDepth := -1

	var walkList func(list *html.Node, depth int)
	walkList = func(list *html.Node, depth int) {
		for li := list.FirstChild; li != nil; li = li.NextSibling {
			if li.Type != html.ElementNode || li.Data != "li" {
				continue
			}
			label := collapseSpace(itemOwnText(li))
			if label != "" {
				records = append(records, outline.LineRecord{Content: label, Depth: depth})
			}
			for c := li.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
					walkList(c, depth+1)
				}
			}
		}
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				title := collapseSpace(textContent(n))
				if title != "" {
					headingDepth = level - 1
					records = append(records, outline.LineRecord{Content: title, Depth: headingDepth})
				}
				return
			}

			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "ul", "ol":
				walkList(n, headingDepth+1)
				return
			case "p", "td", "blockquote":
				t := collapseSpace(textContent(n))
				if t != "" {
					records = append(records, outline.LineRecord{Content: t, Depth: headingDepth + 1})
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	// Find <body> or use whole document.
	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	return outline.Build(records), nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

// itemOwnText collects the text of a list item excluding nested lists, which
// become children of their own.
func itemOwnText(li *html.Node) string {
	var buf []byte
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "ul" || n.Data == "ol") {
			return
		}
		if n.Type == html.TextNode {
			buf = append(buf, n.Data...)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		extract(c)
	}
	return string(buf)
}

func textContent(n *html.Node) string {
	var buf []byte
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf = append(buf, n.Data...)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return string(buf)
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
