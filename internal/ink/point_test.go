package ink

import "testing"

func TestPointDistance(t *testing.T) {
	if d := Pt(0, 10).Distance(Pt(0, 5)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := Pt(-11, 1).Distance(Pt(-7, -2)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointLerp(t *testing.T) {
	diff(t, Pt(2.5, 5), Pt(0, 0).Lerp(Pt(10, 20), 0.25), approx)
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf([]Point{Pt(3, -1), Pt(-2, 4), Pt(7, 2)})
	diff(t, Bounds{Min: Pt(-2, -1), Max: Pt(7, 4)}, b)
	diff(t, Bounds{}, BoundsOf(nil))

	r := b.Rect()
	if r.LLx != -2 || r.LLy != -1 || r.URx != 7 || r.URy != 4 {
		t.Errorf("unexpected rect %+v", r)
	}
}

func TestBoundsRectangle(t *testing.T) {
	b := Bounds{Min: Pt(1, 2), Max: Pt(5, 8)}
	want := []Point{Pt(1, 2), Pt(5, 2), Pt(5, 8), Pt(1, 8), Pt(1, 2)}
	diff(t, want, b.Rectangle())
}

func TestBoundsUnion(t *testing.T) {
	a := Bounds{Min: Pt(0, 0), Max: Pt(1, 1)}
	b := Bounds{Min: Pt(-1, 0.5), Max: Pt(0.5, 3)}
	diff(t, Bounds{Min: Pt(-1, 0), Max: Pt(1, 3)}, a.Union(b))
}

func TestPathLength(t *testing.T) {
	if d := PathLength([]Point{Pt(0, 0), Pt(3, 4), Pt(3, 10)}); d != 11 {
		t.Errorf("got %v, want 11", d)
	}
	if d := PathLength([]Point{Pt(1, 1)}); d != 0 {
		t.Errorf("got %v, want 0", d)
	}
}
