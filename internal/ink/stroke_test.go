package ink

import "testing"

func TestStrokeLoopDistance(t *testing.T) {
	s := NewStroke(Pt(0, 0), "black", 2)
	if d := s.LoopDistance(); d != 0 {
		t.Errorf("single point: got %v, want 0", d)
	}

	s.Add(Pt(30, 40))
	if d := s.LoopDistance(); d != 50 {
		t.Errorf("open stroke: got %v, want 50", d)
	}

	s.Add(Pt(0, 0))
	if d := s.LoopDistance(); d != 0 {
		t.Errorf("closed stroke: got %v, want 0", d)
	}
}

func TestStrokeBoundsFollowsPoints(t *testing.T) {
	s := NewStroke(Pt(1, 1), "black", 2)
	s.Add(Pt(4, -2))
	diff(t, Bounds{Min: Pt(1, -2), Max: Pt(4, 1)}, s.Bounds())

	s.Points[1] = Pt(-4, 9)
	diff(t, Bounds{Min: Pt(-4, 1), Max: Pt(1, 9)}, s.Bounds())
}

func TestStrokeClone(t *testing.T) {
	s := NewStroke(Pt(1, 1), "red", 3)
	s.Add(Pt(2, 2))
	c := s.Clone()
	c.Points[0] = Pt(9, 9)
	c.State = AxisSnapped
	if s.Points[0] != Pt(1, 1) {
		t.Error("clone shares points with the original")
	}
	if s.Straightened() {
		t.Error("clone shares state with the original")
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{
		Raw:              "raw",
		CornersExtracted: "corners-extracted",
		AxisSnapped:      "axis-snapped",
		State(42):        "unknown",
	} {
		if got := s.String(); got != want {
			t.Errorf("State(%d): got %q, want %q", int(s), got, want)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("default params: %v", err)
	}

	bad := []func(*Params){
		func(p *Params) { p.Window = 0 },
		func(p *Params) { p.SpacingDivisor = 0 },
		func(p *Params) { p.MinSpacing = -1 },
		func(p *Params) { p.LineRatio = 1.5 },
		func(p *Params) { p.VerticalRatio = 0.9 },
		func(p *Params) { p.SquareMaxCorners = 5 },
	}
	for i, mutate := range bad {
		p := DefaultParams()
		mutate(&p)
		if err := p.Validate(); err == nil {
			t.Errorf("case %d: expected an error", i)
		}
	}
}
