package parser

import (
	"strings"
	"testing"
)

func TestYAMLParser_MappingNesting(t *testing.T) {
	input := "project:\n  name: mindmap\n  tasks:\n    - parse\n    - render\n"
	p := &YAMLParser{}
	forest, err := p.Parse(strings.NewReader(input), "plan.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(forest.Roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(forest.Roots))
	}
	project := forest.Roots[0]
	if project.Label != "project" {
		t.Errorf("expected root %q, got %q", "project", project.Label)
	}
	if len(project.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(project.Children))
	}
	if project.Children[0].Label != "name: mindmap" {
		t.Errorf("expected scalar fold %q, got %q", "name: mindmap", project.Children[0].Label)
	}
	tasks := project.Children[1]
	if tasks.Label != "tasks" || len(tasks.Children) != 2 {
		t.Fatalf("expected tasks with 2 items")
	}
	if tasks.Children[0].Label != "parse" || tasks.Children[1].Label != "render" {
		t.Errorf("expected parse and render, got %q and %q",
			tasks.Children[0].Label, tasks.Children[1].Label)
	}
}

func TestYAMLParser_KeyOrderPreserved(t *testing.T) {
	input := "zebra: 1\napple: 2\nmango: 3\n"
	p := &YAMLParser{}
	forest, err := p.Parse(strings.NewReader(input), "order.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"zebra: 1", "apple: 2", "mango: 3"}
	if len(forest.Roots) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(forest.Roots))
	}
	for i, w := range want {
		if forest.Roots[i].Label != w {
			t.Errorf("root[%d]: expected %q, got %q", i, w, forest.Roots[i].Label)
		}
	}
}

func TestYAMLParser_InvalidInput(t *testing.T) {
	p := &YAMLParser{}
	if _, err := p.Parse(strings.NewReader("a: [unclosed"), "bad.yaml"); err == nil {
		t.Errorf("expected error for malformed yaml")
	}
}
