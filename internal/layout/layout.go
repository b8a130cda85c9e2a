// Package layout computes node positions for the visual views. Layouts are
// pure read-only consumers of a forest: they place the currently visible
// nodes (collapsed subtrees are skipped) and never mutate them.
package layout

import "github.com/Horopapera/Mind-Map-generator/internal/outline"

// Kind names a layout algorithm.
type Kind string

const (
	KindTree   Kind = "tree"
	KindRadial Kind = "radial"
	KindForce  Kind = "force"
)

// PlacedNode is one node with computed coordinates.
type PlacedNode struct {
	ID       int     `json:"id"`
	Label    string  `json:"label"`
	Level    int     `json:"level"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	ParentID int     `json:"parentId,omitempty"` // 0 for roots
	Leaf     bool    `json:"leaf"`
	Expanded bool    `json:"expanded"`
}

// Edge links a parent placement to a child placement by node id.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Result is a computed layout ready for rendering or serialization.
type Result struct {
	Kind   Kind         `json:"kind"`
	Nodes  []PlacedNode `json:"nodes"`
	Edges  []Edge       `json:"edges"`
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
}

// ForKind dispatches by layout name.
func ForKind(kind Kind, f *outline.Forest) (*Result, bool) {
	switch kind {
	case KindTree:
		return Tree(f), true
	case KindRadial:
		return Radial(f), true
	case KindForce:
		return Force(f, DefaultForceOptions()), true
	}
	return nil, false
}

// visible walks the forest pre-order, calling fn for each visible node.
// Children of a collapsed node are not visited.
func visible(f *outline.Forest, fn func(n, parent *outline.Node)) {
	var walk func(n, parent *outline.Node)
	walk = func(n, parent *outline.Node) {
		fn(n, parent)
		if !n.Expanded {
			return
		}
		for _, c := range n.Children {
			walk(c, n)
		}
	}
	for _, r := range f.Roots {
		walk(r, nil)
	}
}

func placed(n, parent *outline.Node, x, y float64) PlacedNode {
	p := PlacedNode{
		ID:       n.ID,
		Label:    n.Label,
		Level:    n.Level,
		X:        x,
		Y:        y,
		Leaf:     len(n.Children) == 0,
		Expanded: n.Expanded,
	}
	if parent != nil {
		p.ParentID = parent.ID
	}
	return p
}
