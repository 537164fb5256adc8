package ink

import (
	"math"
	"slices"
	"testing"
)

func TestResampleSpacing(t *testing.T) {
	pts := polyline(10, Pt(0, 0), Pt(100, 0))
	orig := slices.Clone(pts)

	out := Resample(pts, 3)
	diff(t, orig, pts)
	if len(out) != 34 {
		t.Fatalf("got %d points, want 34", len(out))
	}
	if out[0] != pts[0] {
		t.Errorf("first point %v, want %v", out[0], pts[0])
	}
	for i := 1; i < len(out); i++ {
		if d := out[i-1].Distance(out[i]); math.Abs(d-3) > 1e-6 {
			t.Errorf("points %d and %d are %v apart, want 3", i-1, i, d)
		}
	}
}

func TestResampleLongSegment(t *testing.T) {
	out := Resample([]Point{Pt(0, 0), Pt(10, 0)}, 3)
	diff(t, []Point{Pt(0, 0), Pt(3, 0), Pt(6, 0), Pt(9, 0)}, out, approx)
}

func TestResampleAcrossCorner(t *testing.T) {
	out := Resample([]Point{Pt(0, 0), Pt(2, 0), Pt(2, 10)}, 4)
	diff(t, []Point{Pt(0, 0), Pt(2, 2), Pt(2, 6), Pt(2, 10)}, out, approx)
}

func TestResampleDegenerate(t *testing.T) {
	diff(t, []Point{Pt(1, 1)}, Resample([]Point{Pt(1, 1)}, 1))
	diff(t, []Point(nil), Resample(nil, 1))
	two := []Point{Pt(0, 0), Pt(10, 10)}
	diff(t, two, Resample(two, 0))

	p := DefaultParams()
	s := NewStroke(Pt(0, 0), "black", 2)
	s.Add(Pt(10, 10))
	diff(t, two, p.Resample(s))
}

func TestResampleScalesWithSize(t *testing.T) {
	p := DefaultParams()
	square := func(side float64) *Stroke {
		pts := polyline(side/4, Pt(0, 0), Pt(side, 0), Pt(side, side), Pt(0, side), Pt(0, 0))
		return &Stroke{Points: pts}
	}
	small := len(p.Resample(square(100)))
	large := len(p.Resample(square(200)))
	if d := small - large; d < -1 || d > 1 {
		t.Errorf("resampled counts %d and %d differ by more than one", small, large)
	}
	if small < 200 {
		t.Errorf("got %d points, expected roughly 4*80/sqrt(2)", small)
	}
}

func TestResampleTinyStrokeUsesMinSpacing(t *testing.T) {
	p := DefaultParams()
	b := Bounds{Min: Pt(0, 0), Max: Pt(3, 4)}
	if s := p.Spacing(b); s != 0.5 {
		t.Errorf("got spacing %v, want 0.5", s)
	}
	b = Bounds{Min: Pt(0, 0), Max: Pt(480, 640)}
	if s := p.Spacing(b); s != 10 {
		t.Errorf("got spacing %v, want 10", s)
	}
}

func TestResampleMerge(t *testing.T) {
	out := ResampleMerge([]Point{Pt(0, 0), Pt(10, 0)}, 3)
	diff(t, []Point{Pt(0, 0), Pt(3, 0), Pt(6, 0), Pt(9, 0), Pt(10, 0)}, out, approx)

	// A sample landing exactly on a vertex is not duplicated.
	pts := []Point{Pt(0, 0), Pt(4, 0), Pt(8, 0)}
	diff(t, pts, ResampleMerge(pts, 4))
}

func TestDensifyKeepsVertices(t *testing.T) {
	p := DefaultParams()
	s := NewStroke(Pt(0, 0), "black", 2)
	s.Add(Pt(10, 0))
	s.Add(Pt(10, 7))
	orig := slices.Clone(s.Points)

	if !p.Densify(s) {
		t.Fatal("expected the stroke to change")
	}
	if !isSubsequence(orig, s.Points) {
		t.Errorf("original vertices missing from %v", s.Points)
	}
	if s.Len() < 30 {
		t.Errorf("got %d points, expected about 34", s.Len())
	}

	single := NewStroke(Pt(1, 1), "black", 2)
	if p.Densify(single) {
		t.Error("single point stroke should not change")
	}
}
