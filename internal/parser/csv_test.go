package parser

import (
	"strings"
	"testing"
)

func TestCSVParser_PathRows(t *testing.T) {
	input := "Projects,Home,Paint kitchen\nProjects,Home,Fix door\nProjects,Work,Ship release\nIdeas,Learn Go\n"
	p := &CSVParser{}
	forest, err := p.Parse(strings.NewReader(input), "plan.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(forest.Roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(forest.Roots))
	}
	projects := forest.Roots[0]
	if projects.Label != "Projects" || len(projects.Children) != 2 {
		t.Fatalf("expected Projects with Home and Work, got %q with %d children",
			projects.Label, len(projects.Children))
	}
	home := projects.Children[0]
	if len(home.Children) != 2 {
		t.Errorf("expected 2 tasks under Home, got %d", len(home.Children))
	}
	if forest.Roots[1].Label != "Ideas" {
		t.Errorf("expected second root Ideas, got %q", forest.Roots[1].Label)
	}
}

func TestCSVParser_DuplicateAndRaggedRows(t *testing.T) {
	input := "A,B\nA,B\nA,,ignored\nA,C\n"
	p := &CSVParser{}
	forest, err := p.Parse(strings.NewReader(input), "data.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forest.Roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(forest.Roots))
	}
	a := forest.Roots[0]
	if len(a.Children) != 2 {
		t.Fatalf("expected children B and C, got %d", len(a.Children))
	}
	if a.Children[0].Label != "B" || a.Children[1].Label != "C" {
		t.Errorf("expected B and C, got %q and %q", a.Children[0].Label, a.Children[1].Label)
	}
}

func TestCSVParser_EmptyInput(t *testing.T) {
	p := &CSVParser{}
	forest, err := p.Parse(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forest.Roots) != 0 {
		t.Errorf("expected empty forest, got %d roots", len(forest.Roots))
	}
}
