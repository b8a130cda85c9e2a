package export

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/Horopapera/Mind-Map-generator/internal/layout"
)

// SVG renders a computed layout as a standalone SVG document: one line per
// edge, one circle plus label per node.
func SVG(res *layout.Result) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`,
		res.Width, res.Height, res.Width, res.Height)
	buf.WriteByte('\n')
	buf.WriteString(`<style>line{stroke:#94a3b8;stroke-width:1.5}circle{fill:#2563eb}circle.leaf{fill:#60a5fa}text{font:13px sans-serif;fill:#0f172a}</style>`)
	buf.WriteByte('\n')

	pos := make(map[int]layout.PlacedNode, len(res.Nodes))
	for _, n := range res.Nodes {
		pos[n.ID] = n
	}
	for _, e := range res.Edges {
		from, okF := pos[e.From]
		to, okT := pos[e.To]
		if !okF || !okT {
			continue
		}
		fmt.Fprintf(&buf, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`, from.X, from.Y, to.X, to.Y)
		buf.WriteByte('\n')
	}
	for _, n := range res.Nodes {
		class := ""
		if n.Leaf {
			class = ` class="leaf"`
		}
		fmt.Fprintf(&buf, `<circle%s cx="%.1f" cy="%.1f" r="5"/>`, class, n.X, n.Y)
		fmt.Fprintf(&buf, `<text x="%.1f" y="%.1f">`, n.X+9, n.Y+4)
		xml.EscapeText(&buf, []byte(n.Label))
		buf.WriteString("</text>\n")
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
