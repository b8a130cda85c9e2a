package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingHierarchy(t *testing.T) {
	input := "# Title\n\n## Section A\n\n## Section B\n\n### Subsection\n"
	p := &MarkdownParser{}
	forest, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(forest.Roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(forest.Roots))
	}
	title := forest.Roots[0]
	if title.Label != "Title" {
		t.Errorf("expected root %q, got %q", "Title", title.Label)
	}
	if len(title.Children) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(title.Children))
	}
	b := title.Children[1]
	if b.Label != "Section B" || len(b.Children) != 1 || b.Children[0].Label != "Subsection" {
		t.Errorf("expected Subsection under Section B")
	}
}

func TestMarkdownParser_ListNesting(t *testing.T) {
	input := "# Plan\n\n- First\n- Second\n  - Nested\n"
	p := &MarkdownParser{}
	forest, err := p.Parse(strings.NewReader(input), "plan.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plan := forest.Roots[0]
	if len(plan.Children) != 2 {
		t.Fatalf("expected 2 list items under Plan, got %d", len(plan.Children))
	}
	second := plan.Children[1]
	if second.Label != "Second" || len(second.Children) != 1 || second.Children[0].Label != "Nested" {
		t.Errorf("expected Nested under Second")
	}
}

func TestMarkdownParser_ParagraphBecomesLeaf(t *testing.T) {
	input := "# Notes\n\nSome loose thought\nacross two lines.\n"
	p := &MarkdownParser{}
	forest, err := p.Parse(strings.NewReader(input), "notes.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	notes := forest.Roots[0]
	if len(notes.Children) != 1 {
		t.Fatalf("expected 1 leaf under Notes, got %d", len(notes.Children))
	}
	if notes.Children[0].Label != "Some loose thought across two lines." {
		t.Errorf("expected collapsed paragraph label, got %q", notes.Children[0].Label)
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	input := "- alpha\n- beta\n"
	p := &MarkdownParser{}
	forest, err := p.Parse(strings.NewReader(input), "flat.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forest.Roots) != 2 {
		t.Fatalf("expected 2 roots without headings, got %d", len(forest.Roots))
	}
}
