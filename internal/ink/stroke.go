package ink

import "slices"

// State records how far a stroke has been through straightening.
type State int

const (
	// Raw strokes hold the points as they were drawn.
	Raw State = iota
	// CornersExtracted strokes have been reduced to their corner polyline.
	CornersExtracted
	// AxisSnapped strokes have had near-vertical and near-horizontal
	// segments snapped to the axes at least once.
	AxisSnapped
)

func (s State) String() string {
	switch s {
	case Raw:
		return "raw"
	case CornersExtracted:
		return "corners-extracted"
	case AxisSnapped:
		return "axis-snapped"
	default:
		return "unknown"
	}
}

// Stroke is one continuous drawn path plus its brush.
type Stroke struct {
	ID     string
	Points []Point
	Color  string
	Size   float64
	State  State
}

// NewStroke starts a stroke at p.
func NewStroke(p Point, color string, size float64) *Stroke {
	return &Stroke{
		Points: []Point{p},
		Color:  color,
		Size:   size,
	}
}

// Add appends p to the stroke.
func (s *Stroke) Add(p Point) {
	s.Points = append(s.Points, p)
}

// Len returns the number of points in the stroke.
func (s *Stroke) Len() int {
	return len(s.Points)
}

// Last returns the most recent point. It panics on an empty stroke.
func (s *Stroke) Last() Point {
	return s.Points[len(s.Points)-1]
}

// Straightened reports whether the stroke has been straightened at least
// once.
func (s *Stroke) Straightened() bool {
	return s.State != Raw
}

// Bounds is recomputed from the current points on every call.
func (s *Stroke) Bounds() Bounds {
	return BoundsOf(s.Points)
}

// LoopDistance returns the distance between the first and last point.
// Endpoints with equal coordinates give 0.
func (s *Stroke) LoopDistance() float64 {
	if len(s.Points) < 2 {
		return 0
	}
	first, last := s.Points[0], s.Points[len(s.Points)-1]
	if first == last {
		return 0
	}
	return first.Distance(last)
}

// Clone returns a deep copy of s.
func (s *Stroke) Clone() *Stroke {
	c := *s
	c.Points = slices.Clone(s.Points)
	return &c
}
