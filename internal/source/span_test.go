package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 2, End: 7}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 10}) {
		t.Errorf("Cover = %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files = %v, want %v", got, a)
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{File: 0, Start: 0, End: 10}
	if !outer.Contains(Span{File: 0, Start: 3, End: 10}) {
		t.Error("expected containment")
	}
	if outer.Contains(Span{File: 0, Start: 3, End: 11}) {
		t.Error("span past end must not be contained")
	}
	if outer.Contains(Span{File: 1, Start: 3, End: 4}) {
		t.Error("span from other file must not be contained")
	}
}

func TestSpanZeroide(t *testing.T) {
	s := Span{File: 0, Start: 4, End: 9}
	if z := s.ZeroideToStart(); !z.Empty() || z.Start != 4 {
		t.Errorf("ZeroideToStart = %v", z)
	}
	if z := s.ZeroideToEnd(); !z.Empty() || z.Start != 9 {
		t.Errorf("ZeroideToEnd = %v", z)
	}
	if s.Len() != 5 {
		t.Errorf("Len = %d", s.Len())
	}
}
