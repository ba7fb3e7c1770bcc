package document

import "testing"

func TestLineColumn_MapsOffsetsAcrossLines(t *testing.T) {
	doc := "abc\ndef\nghi"

	cases := []struct {
		offset int
		want   Pos
	}{
		{offset: 0, want: Pos{Line: 0, Col: 0}},
		{offset: 3, want: Pos{Line: 0, Col: 3}}, // end of first line, before '\n'
		{offset: 4, want: Pos{Line: 1, Col: 0}},
		{offset: 5, want: Pos{Line: 1, Col: 1}}, // the character 'e'
		{offset: 11, want: Pos{Line: 2, Col: 3}},
	}

	for _, tc := range cases {
		got := LineColumn(doc, tc.offset)
		if got != tc.want {
			t.Fatalf("LineColumn(%q, %d): got %+v, want %+v", doc, tc.offset, got, tc.want)
		}
	}
}

func TestLineColumn_EndOfDocumentIsValid(t *testing.T) {
	cases := []struct {
		doc  string
		want Pos
	}{
		{doc: "", want: Pos{Line: 0, Col: 0}},
		{doc: "abc", want: Pos{Line: 0, Col: 3}},
		{doc: "abc\n", want: Pos{Line: 1, Col: 0}},
		{doc: "a\nbb\nccc", want: Pos{Line: 2, Col: 3}},
	}

	for _, tc := range cases {
		got := LineColumn(tc.doc, Len(tc.doc))
		if got != tc.want {
			t.Fatalf("LineColumn(%q, len): got %+v, want %+v", tc.doc, got, tc.want)
		}
		if got.Line >= LineCount(tc.doc) {
			t.Fatalf("LineColumn(%q, len): line %d out of range", tc.doc, got.Line)
		}
	}
}

func TestLineColumn_ClampsOutOfRangeOffsets(t *testing.T) {
	doc := "ab\ncd"
	if got, want := LineColumn(doc, -5), (Pos{Line: 0, Col: 0}); got != want {
		t.Fatalf("negative offset: got %+v, want %+v", got, want)
	}
	if got, want := LineColumn(doc, 99), (Pos{Line: 1, Col: 2}); got != want {
		t.Fatalf("oversized offset: got %+v, want %+v", got, want)
	}
}

func TestOffset_RoundTripsEveryValidOffset(t *testing.T) {
	docs := []string{
		"",
		"a",
		"abc\ndef\nghi",
		"\n\n\n",
		"trailing newline\n",
		"héllo\nwörld\n日本語",
	}

	for _, doc := range docs {
		for o := 0; o <= Len(doc); o++ {
			p := LineColumn(doc, o)
			if got := Offset(doc, p); got != o {
				t.Fatalf("round trip %q offset %d: got %d via %+v", doc, o, got, p)
			}
		}
	}
}

func TestOffset_ClampsOutOfRangePositions(t *testing.T) {
	doc := "ab\ncd"

	cases := []struct {
		pos  Pos
		want int
	}{
		{pos: Pos{Line: -1, Col: -1}, want: 0},
		{pos: Pos{Line: 0, Col: 99}, want: 2},
		{pos: Pos{Line: 99, Col: 0}, want: 3},
		{pos: Pos{Line: 99, Col: 99}, want: 5},
	}

	for _, tc := range cases {
		if got := Offset(doc, tc.pos); got != tc.want {
			t.Fatalf("Offset(%q, %+v): got %d, want %d", doc, tc.pos, got, tc.want)
		}
	}
}

func TestLineCount_CountsLogicalLines(t *testing.T) {
	cases := []struct {
		doc  string
		want int
	}{
		{doc: "", want: 1},
		{doc: "a", want: 1},
		{doc: "a\nb", want: 2},
		{doc: "a\nb\n", want: 3},
	}

	for _, tc := range cases {
		if got := LineCount(tc.doc); got != tc.want {
			t.Fatalf("LineCount(%q): got %d, want %d", tc.doc, got, tc.want)
		}
	}
}

func TestLineLen_OutOfRangeRowsAreZero(t *testing.T) {
	doc := "ab\ncde"
	if got := LineLen(doc, 1); got != 3 {
		t.Fatalf("LineLen row 1: got %d, want 3", got)
	}
	if got := LineLen(doc, -1); got != 0 {
		t.Fatalf("LineLen row -1: got %d, want 0", got)
	}
	if got := LineLen(doc, 7); got != 0 {
		t.Fatalf("LineLen row 7: got %d, want 0", got)
	}
}
