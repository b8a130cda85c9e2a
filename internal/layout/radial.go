package layout

import (
	"math"

	"github.com/Horopapera/Mind-Map-generator/internal/outline"
)

const (
	radialRingGap = 90.0
	radialMargin  = 60.0
)

// Radial places a single root at the center and fans children out on
// concentric rings; each subtree gets an angular span proportional to its
// visible leaf count. With multiple roots, the roots share the first ring.
func Radial(f *outline.Forest) *Result {
	res := &Result{Kind: KindRadial}
	if len(f.Roots) == 0 {
		res.Width, res.Height = 2*radialMargin, 2*radialMargin
		return res
	}

	maxR := 0.0
	var place func(n, parent *outline.Node, ring int, a0, a1 float64)
	place = func(n, parent *outline.Node, ring int, a0, a1 float64) {
		angle := (a0 + a1) / 2
		r := float64(ring) * radialRingGap
		if r > maxR {
			maxR = r
		}
		res.Nodes = append(res.Nodes, placed(n, parent, r*math.Cos(angle), r*math.Sin(angle)))
		if parent != nil {
			res.Edges = append(res.Edges, Edge{From: parent.ID, To: n.ID})
		}
		if !n.Expanded || len(n.Children) == 0 {
			return
		}
		total := 0
		for _, c := range n.Children {
			total += visibleLeaves(c)
		}
		cursor := a0
		for _, c := range n.Children {
			span := (a1 - a0) * float64(visibleLeaves(c)) / float64(total)
			place(c, n, ring+1, cursor, cursor+span)
			cursor += span
		}
	}

	if len(f.Roots) == 1 {
		place(f.Roots[0], nil, 0, 0, 2*math.Pi)
	} else {
		total := 0
		for _, r := range f.Roots {
			total += visibleLeaves(r)
		}
		cursor := 0.0
		for _, r := range f.Roots {
			span := 2 * math.Pi * float64(visibleLeaves(r)) / float64(total)
			place(r, nil, 1, cursor, cursor+span)
			cursor += span
		}
	}

	// Shift from a (0,0) center into positive page coordinates.
	half := maxR + radialMargin
	for i := range res.Nodes {
		res.Nodes[i].X += half
		res.Nodes[i].Y += half
	}
	res.Width = 2 * half
	res.Height = 2 * half
	return res
}

// visibleLeaves counts the leaves of the visible subtree rooted at n.
// A collapsed node counts as a single leaf.
func visibleLeaves(n *outline.Node) int {
	if !n.Expanded || len(n.Children) == 0 {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += visibleLeaves(c)
	}
	return total
}
