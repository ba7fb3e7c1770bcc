package highlight

import "testing"

func TestChroma_HighlightsGoKeyword(t *testing.T) {
	h := NewChroma("go", "monokai")

	spans, err := h.HighlightLine(LineContext{Line: 0, Text: "func main() {"})
	if err != nil {
		t.Fatalf("HighlightLine: %v", err)
	}
	if len(spans) == 0 {
		t.Fatalf("expected spans for a Go line, got none")
	}

	found := false
	for _, sp := range spans {
		if sp.StartCol == 0 && sp.EndCol == 4 {
			found = true
		}
	}
	if !found {
		t.Fatalf("no span covering the func keyword: %v", spans)
	}
}

func TestChroma_SpansStayWithinLine(t *testing.T) {
	h := NewChroma("go", "monokai")

	lines := []string{
		"",
		"x := 42",
		`s := "héllo \"wörld\""`,
		"\t// comment with trailing spaces   ",
	}
	for i, text := range lines {
		spans, err := h.HighlightLine(LineContext{Line: i, Text: text})
		if err != nil {
			t.Fatalf("HighlightLine(%q): %v", text, err)
		}
		prev := 0
		for _, sp := range spans {
			if sp.StartCol < prev || sp.EndCol <= sp.StartCol {
				t.Fatalf("span out of order in %q: %v", text, spans)
			}
			prev = sp.EndCol
		}
		if n := len([]rune(text)); prev > n {
			t.Fatalf("spans exceed line length %d in %q: %v", n, text, spans)
		}
	}
}

func TestChroma_UnknownLanguageFallsBack(t *testing.T) {
	h := NewChroma("definitely-not-a-language", "monokai")

	spans, err := h.HighlightLine(LineContext{Line: 0, Text: "plain words"})
	if err != nil {
		t.Fatalf("HighlightLine with fallback lexer: %v", err)
	}
	for _, sp := range spans {
		if sp.StartCol < 0 || sp.EndCol > len([]rune("plain words")) {
			t.Fatalf("fallback span out of bounds: %v", sp)
		}
	}
}

func TestChroma_RepeatedLinesHitTheCache(t *testing.T) {
	h := NewChroma("go", "monokai")

	first, err := h.HighlightLine(LineContext{Line: 0, Text: "return nil"})
	if err != nil {
		t.Fatalf("HighlightLine: %v", err)
	}
	second, err := h.HighlightLine(LineContext{Line: 7, Text: "return nil"})
	if err != nil {
		t.Fatalf("HighlightLine (cached): %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("cached result differs: %v vs %v", first, second)
	}
	for i := range first {
		if first[i].StartCol != second[i].StartCol || first[i].EndCol != second[i].EndCol {
			t.Fatalf("cached span %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}
