package outline

import "testing"

func TestClassify_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n", " \n\t\n  "} {
		if recs := Classify(input); len(recs) != 0 {
			t.Errorf("Classify(%q): expected no records, got %d", input, len(recs))
		}
	}
}

func TestClassify_DepthFromLeadingSpaces(t *testing.T) {
	recs := Classify("Root\n  Child\n    Grandchild\n      Deep\n Odd")
	if len(recs) != 5 {
		t.Fatalf("expected 5 records, got %d", len(recs))
	}
	wantDepths := []int{0, 1, 2, 3, 0} // one space floors to depth 0
	for i, want := range wantDepths {
		if recs[i].Depth != want {
			t.Errorf("record[%d] %q: expected depth %d, got %d", i, recs[i].Content, want, recs[i].Depth)
		}
	}
}

func TestClassify_TabsAreNotIndentation(t *testing.T) {
	// Tabs are left as ordinary non-space characters: they stop the
	// leading-space count, so tab-indented lines land at depth 0.
	recs := Classify("Root\n\tTabbed\n\t\tDouble tabbed")
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	for i, rec := range recs {
		if rec.Depth != 0 {
			t.Errorf("record[%d] %q: expected depth 0, got %d", i, rec.Content, rec.Depth)
		}
	}
	if recs[1].Content != "Tabbed" {
		t.Errorf("expected tab trimmed from content, got %q", recs[1].Content)
	}
}

func TestClassify_BlankLinesDropped(t *testing.T) {
	recs := Classify("One\n\n   \nTwo")
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Content != "One" || recs[1].Content != "Two" {
		t.Errorf("unexpected contents: %q, %q", recs[0].Content, recs[1].Content)
	}
	// Original line numbers survive for the lines that do.
	if recs[0].Line != 1 || recs[1].Line != 4 {
		t.Errorf("expected line numbers 1 and 4, got %d and %d", recs[0].Line, recs[1].Line)
	}
}

func TestClassify_BulletStripping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"• Item one", "Item one"},
		{"- Item two", "Item two"},
		{"* Item three", "Item three"},
		{"◦ Item four", "Item four"},
		{"1. Numbered", "Numbered"},
		{"12. Double digit", "Double digit"},
		{"├── Connector", "Connector"},
		{"└─ Last", "Last"},
		{"Plain", "Plain"},
	}
	for _, tt := range tests {
		recs := Classify(tt.input)
		if len(recs) != 1 {
			t.Fatalf("Classify(%q): expected 1 record, got %d", tt.input, len(recs))
		}
		if recs[0].Content != tt.want {
			t.Errorf("Classify(%q): expected content %q, got %q", tt.input, tt.want, recs[0].Content)
		}
	}
}

func TestClassify_StrippingIsSinglePass(t *testing.T) {
	// Only the outermost decoration is removed. A bullet followed by a
	// numbered marker keeps the marker.
	recs := Classify("- 1. Item")
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Content != "1. Item" {
		t.Errorf("expected %q, got %q", "1. Item", recs[0].Content)
	}
}

func TestClassify_NumberingNeedsTrailingWhitespace(t *testing.T) {
	// "digits dot whitespace" is the marker; a bare decimal is content.
	recs := Classify("1.5 miles")
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Content != "1.5 miles" {
		t.Errorf("expected %q, got %q", "1.5 miles", recs[0].Content)
	}
}

func TestClassify_DecorationOnlyLinesDropped(t *testing.T) {
	recs := Classify("Keep\n- \n•\nAlso keep")
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Content != "Keep" || recs[1].Content != "Also keep" {
		t.Errorf("unexpected contents: %q, %q", recs[0].Content, recs[1].Content)
	}
}

func TestClassify_IndentedBullets(t *testing.T) {
	recs := Classify("• Item one\n  - Item two\n    1. Item three")
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	want := []struct {
		content string
		depth   int
	}{
		{"Item one", 0},
		{"Item two", 1},
		{"Item three", 2},
	}
	for i, w := range want {
		if recs[i].Content != w.content || recs[i].Depth != w.depth {
			t.Errorf("record[%d]: expected (%q, %d), got (%q, %d)",
				i, w.content, w.depth, recs[i].Content, recs[i].Depth)
		}
	}
}
