package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_HeadingsAndLists(t *testing.T) {
	input := `<html><head><title>ignored</title></head><body>
<h1>Guide</h1>
<h2>Install</h2>
<p>Download the binary.</p>
<h2>Usage</h2>
<ul><li>Run it<ul><li>With a file</li></ul></li><li>Read output</li></ul>
</body></html>`
	p := &HTMLParser{}
	forest, err := p.Parse(strings.NewReader(input), "guide.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(forest.Roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(forest.Roots))
	}
	guide := forest.Roots[0]
	if guide.Label != "Guide" || len(guide.Children) != 2 {
		t.Fatalf("expected Guide with Install and Usage, got %q with %d children",
			guide.Label, len(guide.Children))
	}

	install := guide.Children[0]
	if len(install.Children) != 1 || install.Children[0].Label != "Download the binary." {
		t.Errorf("expected paragraph leaf under Install")
	}

	usage := guide.Children[1]
	if len(usage.Children) != 2 {
		t.Fatalf("expected 2 list items under Usage, got %d", len(usage.Children))
	}
	run := usage.Children[0]
	if run.Label != "Run it" || len(run.Children) != 1 || run.Children[0].Label != "With a file" {
		t.Errorf("expected nested list item under Run it")
	}
}

func TestHTMLParser_SkipsChrome(t *testing.T) {
	input := `<body><nav><ul><li>menu</li></ul></nav><h1>Real</h1><script>x()</script></body>`
	p := &HTMLParser{}
	forest, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forest.Roots) != 1 || forest.Roots[0].Label != "Real" {
		t.Fatalf("expected only the Real heading, got %d roots", len(forest.Roots))
	}
}
