package highlight

import "testing"

func TestNormalizeSpans_ClampsAndSorts(t *testing.T) {
	in := []Span{
		{StartCol: 8, EndCol: 20},
		{StartCol: -3, EndCol: 2},
		{StartCol: 5, EndCol: 3}, // reversed
	}

	got := NormalizeSpans(in, 10)

	want := []struct{ start, end int }{{0, 2}, {3, 5}, {8, 10}}
	if len(got) != len(want) {
		t.Fatalf("normalized spans: got %d, want %d (%v)", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].StartCol != w.start || got[i].EndCol != w.end {
			t.Fatalf("span %d: got [%d,%d), want [%d,%d)", i, got[i].StartCol, got[i].EndCol, w.start, w.end)
		}
	}
}

func TestNormalizeSpans_DropsEmptyAndOverlapping(t *testing.T) {
	in := []Span{
		{StartCol: 0, EndCol: 4},
		{StartCol: 2, EndCol: 6}, // overlaps the first
		{StartCol: 4, EndCol: 4}, // empty
		{StartCol: 4, EndCol: 8},
	}

	got := NormalizeSpans(in, 8)

	if len(got) != 2 {
		t.Fatalf("normalized spans: got %d, want 2 (%v)", len(got), got)
	}
	if got[0].StartCol != 0 || got[0].EndCol != 4 || got[1].StartCol != 4 || got[1].EndCol != 8 {
		t.Fatalf("unexpected spans: %v", got)
	}
}

func TestNormalizeSpans_EmptyInputIsNil(t *testing.T) {
	if got := NormalizeSpans(nil, 10); got != nil {
		t.Fatalf("NormalizeSpans(nil): got %v, want nil", got)
	}
}
