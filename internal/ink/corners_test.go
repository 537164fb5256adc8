package ink

import (
	"math"
	"testing"
)

func TestCornersDegenerate(t *testing.T) {
	p := DefaultParams()
	diff(t, []Point{Pt(0, 0), Pt(10, 10)}, p.Corners([]Point{Pt(0, 0), Pt(10, 10)}))
	diff(t, []Point{Pt(4, 4)}, p.Corners([]Point{Pt(4, 4)}))
	diff(t, []Point{}, p.Corners(nil))

	six := polyline(1, Pt(0, 0), Pt(4, 0))
	if len(six) != 6 {
		t.Fatalf("fixture has %d points", len(six))
	}
	diff(t, []Point{Pt(0, 0), Pt(4, 0)}, p.Corners(six))
}

func TestCornersLShape(t *testing.T) {
	p := DefaultParams()
	var pts []Point
	for x := 0; x <= 50; x++ {
		pts = append(pts, Pt(float64(x), 0))
	}
	for y := 1; y <= 50; y++ {
		pts = append(pts, Pt(50, float64(y)))
	}

	diff(t, []int{0, 50, 100}, p.CornerIndices(pts))
	diff(t, []Point{Pt(0, 0), Pt(50, 0), Pt(50, 50)}, p.Corners(pts))
}

func TestCornersStraightLine(t *testing.T) {
	p := DefaultParams()
	pts := polyline(1, Pt(0, 0), Pt(40, 30))
	diff(t, []Point{pts[0], pts[len(pts)-1]}, p.Corners(pts))
}

func TestCornersSubsequence(t *testing.T) {
	p := DefaultParams()
	var pts []Point
	for i := range 200 {
		x := float64(i)
		pts = append(pts, Pt(x, 20*math.Sin(x/8)+5*math.Cos(x/3)))
	}

	got := p.Corners(pts)
	if got[0] != pts[0] || got[len(got)-1] != pts[len(pts)-1] {
		t.Errorf("corners %v do not start and end at the stroke endpoints", got)
	}
	if !isSubsequence(got, pts) {
		t.Errorf("corners %v are not a subsequence of the input", got)
	}
}

func TestDropCollinearCascades(t *testing.T) {
	p := DefaultParams()
	var pts []Point
	for x := 0; x <= 50; x++ {
		pts = append(pts, Pt(float64(x), 0))
	}
	for y := 1; y <= 50; y++ {
		pts = append(pts, Pt(50, float64(y)))
	}

	diff(t, []int{0, 50, 100}, p.dropCollinear(pts, []int{0, 25, 50, 75, 100}))
	diff(t, []int{0, 40}, p.dropCollinear(pts, []int{0, 10, 20, 30, 40}))
}

func TestDropCollinearCoincident(t *testing.T) {
	p := DefaultParams()
	pts := []Point{Pt(1, 1), Pt(1, 1), Pt(1, 1)}
	diff(t, []int{0, 2}, p.dropCollinear(pts, []int{0, 1, 2}))
}

func TestMedian(t *testing.T) {
	xs := []float64{5, 1, 3}
	if m := median(xs); m != 3 {
		t.Errorf("odd: got %v, want 3", m)
	}
	diff(t, []float64{5, 1, 3}, xs)
	if m := median([]float64{4, 1, 3, 2}); m != 2.5 {
		t.Errorf("even: got %v, want 2.5", m)
	}
	if m := median(nil); m != 0 {
		t.Errorf("empty: got %v, want 0", m)
	}
}
