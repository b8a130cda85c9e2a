package outline

import "strings"

// Flatten returns every node in pre-order: a node before its children,
// children in sibling order, roots in forest order. Collapse state is
// ignored; collapsed subtrees are included.
func (f *Forest) Flatten() []*Node {
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		out = append(out, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, r := range f.Roots {
		walk(r)
	}
	return out
}

// Node returns the node with the given id, or nil if no such node exists.
func (f *Forest) Node(id int) *Node {
	for _, n := range f.Flatten() {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Len returns the total number of nodes in the forest.
func (f *Forest) Len() int {
	return len(f.Flatten())
}

// ToggleExpand flips the expansion state of the node with the given id,
// in place. An unknown id is a no-op. Reports whether a node was found.
func (f *Forest) ToggleExpand(id int) bool {
	n := f.Node(id)
	if n == nil {
		return false
	}
	n.Expanded = !n.Expanded
	return true
}

// SetAllExpanded sets the expansion state of every node that has at least
// one child. Leaves are left untouched; their flag is never read.
func (f *Forest) SetAllExpanded(expanded bool) {
	for _, n := range f.Flatten() {
		if len(n.Children) > 0 {
			n.Expanded = expanded
		}
	}
}

// Search returns every node whose label contains query as a case-insensitive
// substring, in pre-order. Collapse state does not hide matches. A query that
// trims to empty matches nothing.
func (f *Forest) Search(query string) []*Node {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)

	var out []*Node
	for _, n := range f.Flatten() {
		if strings.Contains(strings.ToLower(n.Label), q) {
			out = append(out, n)
		}
	}
	return out
}
