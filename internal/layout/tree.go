package layout

import "github.com/Horopapera/Mind-Map-generator/internal/outline"

const (
	treeIndent    = 40.0
	treeRowHeight = 28.0
	treeMargin    = 20.0
)

// Tree lays the visible nodes out as an indented tree: one row per node in
// pre-order, x offset by nesting level.
func Tree(f *outline.Forest) *Result {
	res := &Result{Kind: KindTree}

	row := 0
	maxLevel := 0
	visible(f, func(n, parent *outline.Node) {
		x := treeMargin + float64(n.Level)*treeIndent
		y := treeMargin + float64(row)*treeRowHeight
		res.Nodes = append(res.Nodes, placed(n, parent, x, y))
		if parent != nil {
			res.Edges = append(res.Edges, Edge{From: parent.ID, To: n.ID})
		}
		if n.Level > maxLevel {
			maxLevel = n.Level
		}
		row++
	})

	res.Width = 2*treeMargin + float64(maxLevel+1)*treeIndent + 240 // room for labels
	res.Height = 2*treeMargin + float64(row)*treeRowHeight
	return res
}
