package export

import (
	"encoding/xml"

	"github.com/Horopapera/Mind-Map-generator/internal/outline"
)

type opmlDoc struct {
	XMLName xml.Name    `xml:"opml"`
	Version string      `xml:"version,attr"`
	Title   string      `xml:"head>title,omitempty"`
	Body    []opmlEntry `xml:"body>outline"`
}

type opmlEntry struct {
	Text     string      `xml:"text,attr"`
	Children []opmlEntry `xml:"outline,omitempty"`
}

// OPML renders the forest in the OPML 2.0 outline interchange format.
func OPML(f *outline.Forest, title string) ([]byte, error) {
	doc := opmlDoc{Version: "2.0", Title: title}
	for _, r := range f.Roots {
		doc.Body = append(doc.Body, opmlEntryFor(r))
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func opmlEntryFor(n *outline.Node) opmlEntry {
	e := opmlEntry{Text: n.Label}
	for _, c := range n.Children {
		e.Children = append(e.Children, opmlEntryFor(c))
	}
	return e
}
