package outline

// Node is a single entry in a mind map.
type Node struct {
	ID       int     `json:"id"`
	Label    string  `json:"label"`
	Level    int     `json:"level"`
	Children []*Node `json:"children,omitempty"`
	Expanded bool    `json:"expanded"`

	// parent is a non-owning back-reference used only for upward walks.
	// Unexported so it can never appear in serialized output.
	parent *Node
}

// Parent returns the owning parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Breadcrumb returns the labels from the root down to n, inclusive.
func (n *Node) Breadcrumb() []string {
	var labels []string
	for cur := n; cur != nil; cur = cur.parent {
		labels = append(labels, cur.Label)
	}
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
	return labels
}

// Forest is the ordered collection of root nodes produced by one parse.
// It owns every node and the id sequence they were assigned from.
type Forest struct {
	Roots []*Node `json:"roots"`

	nextID int
}

// NewForest returns an empty forest with a fresh id sequence.
// Ids start at 1 and are never reused within the forest.
func NewForest() *Forest {
	return &Forest{nextID: 1}
}

// NewNode creates a node owned by the forest and attaches it. A nil parent
// appends a new root; otherwise the node becomes the parent's last child.
// Nodes start expanded.
func (f *Forest) NewNode(parent *Node, label string, level int) *Node {
	if f.nextID == 0 {
		f.nextID = 1
	}
	n := &Node{
		ID:       f.nextID,
		Label:    label,
		Level:    level,
		Expanded: true,
		parent:   parent,
	}
	f.nextID++
	if parent == nil {
		f.Roots = append(f.Roots, n)
	} else {
		parent.Children = append(parent.Children, n)
	}
	return n
}
