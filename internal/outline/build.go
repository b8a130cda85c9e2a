package outline

// Build folds depth-tagged records into a forest with a single pass over an
// explicit stack of open ancestors. A record at depth d closes every open
// node at depth >= d (a sibling at the same depth is not nesting), then
// attaches to whatever remains on top, or becomes a root if nothing does.
//
// Depth jumps are accepted as-is: a record at depth 3 directly under a root
// becomes an immediate child with Level 3, no synthetic intermediates. The
// guaranteed invariant is child.Level > parent.Level, not parent.Level+1.
func Build(records []LineRecord) *Forest {
	forest := NewForest()

	type frame struct {
		node  *Node
		depth int
	}
	var stack []frame

	for _, rec := range records {
		for len(stack) > 0 && stack[len(stack)-1].depth >= rec.Depth {
			stack = stack[:len(stack)-1]
		}

		var parent *Node
		if len(stack) > 0 {
			parent = stack[len(stack)-1].node
		}
		node := forest.NewNode(parent, rec.Content, rec.Depth)
		stack = append(stack, frame{node: node, depth: rec.Depth})
	}
	return forest
}

// Parse runs the full text-to-forest pipeline: classify lines, build a tree.
// It is total: any input yields a well-formed (possibly empty) forest.
func Parse(text string) *Forest {
	return Build(Classify(text))
}
