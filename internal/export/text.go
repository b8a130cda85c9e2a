package export

import (
	"strings"

	"github.com/Horopapera/Mind-Map-generator/internal/outline"
)

// Text re-emits the forest as indentation-structured plain text: two spaces
// per nesting step and a "- " bullet per line. Parsing the output again
// reproduces the same labels and shape (levels normalized to the nesting
// depth).
func Text(f *outline.Forest) []byte {
	var buf strings.Builder
	var walk func(n *outline.Node, depth int)
	walk = func(n *outline.Node, depth int) {
		buf.WriteString(strings.Repeat("  ", depth))
		buf.WriteString("- ")
		buf.WriteString(n.Label)
		buf.WriteByte('\n')
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	for _, r := range f.Roots {
		walk(r, 0)
	}
	return []byte(buf.String())
}
