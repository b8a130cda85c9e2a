package outline

import "testing"

func TestBuild_BasicNesting(t *testing.T) {
	f := Parse("Root\n  Child A\n  Child B\n    Grandchild")

	if len(f.Roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(f.Roots))
	}
	root := f.Roots[0]
	if root.Label != "Root" || root.Level != 0 {
		t.Errorf("root: expected (Root, 0), got (%q, %d)", root.Label, root.Level)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children under root, got %d", len(root.Children))
	}
	a, b := root.Children[0], root.Children[1]
	if a.Label != "Child A" || a.Level != 1 {
		t.Errorf("first child: expected (Child A, 1), got (%q, %d)", a.Label, a.Level)
	}
	if b.Label != "Child B" || b.Level != 1 {
		t.Errorf("second child: expected (Child B, 1), got (%q, %d)", b.Label, b.Level)
	}
	if len(b.Children) != 1 || b.Children[0].Label != "Grandchild" || b.Children[0].Level != 2 {
		t.Fatalf("expected one grandchild under Child B")
	}

	got := f.Flatten()
	wantOrder := []string{"Root", "Child A", "Child B", "Grandchild"}
	if len(got) != len(wantOrder) {
		t.Fatalf("flatten: expected %d nodes, got %d", len(wantOrder), len(got))
	}
	for i, w := range wantOrder {
		if got[i].Label != w {
			t.Errorf("flatten[%d]: expected %q, got %q", i, w, got[i].Label)
		}
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	f := Parse("")
	if len(f.Roots) != 0 {
		t.Errorf("expected empty forest, got %d roots", len(f.Roots))
	}
	if f.Flatten() != nil {
		t.Errorf("expected nil flatten for empty forest")
	}
}

func TestBuild_DepthSkipBecomesDirectChild(t *testing.T) {
	// 6 leading spaces is depth 3; no synthetic intermediates are created.
	f := Parse("Root\n      Deep child")
	if len(f.Roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(f.Roots))
	}
	root := f.Roots[0]
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(root.Children))
	}
	child := root.Children[0]
	if child.Label != "Deep child" || child.Level != 3 {
		t.Errorf("expected (Deep child, 3), got (%q, %d)", child.Label, child.Level)
	}
	if child.Parent() != root {
		t.Errorf("expected parent back-reference to root")
	}
}

func TestBuild_LevelMonotonicity(t *testing.T) {
	f := Parse("A\n    B\n  C\n      D\nE\n  F")
	for _, n := range f.Flatten() {
		p := n.Parent()
		if p == nil {
			continue
		}
		if n.Level <= p.Level {
			t.Errorf("node %q: level %d not greater than parent %q level %d",
				n.Label, n.Level, p.Label, p.Level)
		}
	}
}

func TestBuild_SiblingOrderMatchesSource(t *testing.T) {
	f := Parse("Parent\n  First\n  Second\n  Third")
	root := f.Roots[0]
	want := []string{"First", "Second", "Third"}
	if len(root.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(root.Children))
	}
	for i, w := range want {
		if root.Children[i].Label != w {
			t.Errorf("children[%d]: expected %q, got %q", i, w, root.Children[i].Label)
		}
	}
}

func TestBuild_SameDepthClosesPreviousNode(t *testing.T) {
	// A sibling at the same depth must not nest under its predecessor.
	f := Parse("A\nB\nC")
	if len(f.Roots) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(f.Roots))
	}
	for _, r := range f.Roots {
		if len(r.Children) != 0 {
			t.Errorf("root %q: expected no children, got %d", r.Label, len(r.Children))
		}
	}
}

func TestBuild_OutdentReattachesToNearestAncestor(t *testing.T) {
	f := Parse("A\n  B\n    C\n  D")
	a := f.Roots[0]
	if len(a.Children) != 2 {
		t.Fatalf("expected B and D under A, got %d children", len(a.Children))
	}
	if a.Children[0].Label != "B" || a.Children[1].Label != "D" {
		t.Errorf("expected children B, D; got %q, %q", a.Children[0].Label, a.Children[1].Label)
	}
}

func TestParse_IdsUniqueAndResetPerParse(t *testing.T) {
	f1 := Parse("A\n  B\n  C")
	f2 := Parse("A\n  B\n  C")

	seen := map[int]bool{}
	for _, n := range f1.Flatten() {
		if seen[n.ID] {
			t.Errorf("duplicate id %d", n.ID)
		}
		seen[n.ID] = true
	}

	// Id generation is per-parse, so identical input gives identical ids.
	n1, n2 := f1.Flatten(), f2.Flatten()
	for i := range n1 {
		if n1[i].ID != n2[i].ID {
			t.Errorf("node %d: ids differ across parses (%d vs %d)", i, n1[i].ID, n2[i].ID)
		}
	}
}

func TestParse_Idempotent(t *testing.T) {
	input := "Root\n  • Child A\n  Child B\n\n    1. Grandchild"
	f1, f2 := Parse(input), Parse(input)

	n1, n2 := f1.Flatten(), f2.Flatten()
	if len(n1) != len(n2) {
		t.Fatalf("parses disagree on node count: %d vs %d", len(n1), len(n2))
	}
	for i := range n1 {
		if n1[i].Label != n2[i].Label || n1[i].Level != n2[i].Level {
			t.Errorf("node %d differs: (%q,%d) vs (%q,%d)",
				i, n1[i].Label, n1[i].Level, n2[i].Label, n2[i].Level)
		}
	}
}

func TestParse_LabelsNeverEmpty(t *testing.T) {
	inputs := []string{
		"A\n\n  \nB",
		"- \n• x\n   \n",
		"Root\n  - Child",
	}
	for _, input := range inputs {
		for _, n := range Parse(input).Flatten() {
			if n.Label == "" {
				t.Errorf("Parse(%q): node %d has empty label", input, n.ID)
			}
		}
	}
}

func TestNode_Breadcrumb(t *testing.T) {
	f := Parse("Top\n  Mid\n    Leaf")
	leaf := f.Roots[0].Children[0].Children[0]
	got := leaf.Breadcrumb()
	want := []string{"Top", "Mid", "Leaf"}
	if len(got) != len(want) {
		t.Fatalf("expected breadcrumb of %d labels, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("breadcrumb[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}
