package grapheme

import "testing"

func TestClusters_TracksRuneColumns(t *testing.T) {
	// "e" + combining acute forms one cluster of two runes.
	text := "aéb"

	got := Clusters(text)
	if len(got) != 3 {
		t.Fatalf("clusters: got %d, want 3 (%v)", len(got), got)
	}

	want := []Cluster{
		{Text: "a", Col: 0, Runes: 1, Width: 1},
		{Text: "é", Col: 1, Runes: 2, Width: 1},
		{Text: "b", Col: 3, Runes: 1, Width: 1},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cluster %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestClusters_EmptyTextIsNil(t *testing.T) {
	if got := Clusters(""); got != nil {
		t.Fatalf("Clusters(\"\"): got %v, want nil", got)
	}
}

func TestCellWidth_WideAndNarrowClusters(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "a", want: 1},
		{text: "日", want: 2},
		{text: "語", want: 2},
		{text: "é", want: 1},
	}

	for _, tc := range cases {
		if got := CellWidth(tc.text); got != tc.want {
			t.Fatalf("CellWidth(%q): got %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestCount_CountsClustersNotRunes(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "abc", want: 3},
		{text: "é", want: 1},
		{text: "日本語", want: 3},
	}

	for _, tc := range cases {
		if got := Count(tc.text); got != tc.want {
			t.Fatalf("Count(%q): got %d, want %d", tc.text, got, tc.want)
		}
	}
}
