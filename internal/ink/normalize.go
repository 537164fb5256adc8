package ink

import (
	"math"
	"slices"
)

// Straighten advances s one step through straightening and reports whether
// its points changed.
//
// A Raw stroke is replaced by the corners of its resampled path and becomes
// CornersExtracted. A stroke that is already straightened has its segments
// snapped to the axes (see SnapAxes) and becomes AxisSnapped; repeating the
// snap is allowed but not guaranteed to be a fixed point. Strokes shorter
// than MinPoints are left alone.
func (p Params) Straighten(s *Stroke) bool {
	switch s.State {
	case Raw:
		if s.Len() < p.MinPoints() {
			return false
		}
		s.Points = p.Corners(p.Resample(s))
		s.State = CornersExtracted
		return true
	default:
		out := p.SnapAxes(s.Points)
		changed := !slices.Equal(out, s.Points)
		s.Points = out
		s.State = AxisSnapped
		return changed
	}
}

// SnapAxes returns a copy of pts in which nearly vertical segments share the
// mean x of their endpoints and nearly horizontal ones the mean y. Pairs are
// processed in order, so a point moved by one segment is seen moved by the
// next. Segments whose endpoints already share y are skipped.
func (p Params) SnapAxes(pts []Point) []Point {
	out := slices.Clone(pts)
	for i := 0; i+1 < len(out); i++ {
		a, b := out[i], out[i+1]
		xDist := math.Abs(a.X - b.X)
		yDist := math.Abs(a.Y - b.Y)
		if yDist == 0 {
			continue
		}
		ratio := xDist / yDist
		switch {
		case ratio < p.VerticalRatio:
			avg := (a.X + b.X) / 2
			out[i] = Pt(avg, a.Y)
			out[i+1] = Pt(avg, b.Y)
		case ratio > p.HorizontalRatio:
			avg := (a.Y + b.Y) / 2
			out[i] = Pt(a.X, avg)
			out[i+1] = Pt(b.X, avg)
		}
	}
	return out
}

// Squarable reports whether s looks like a hand-drawn rectangle: it nearly
// closes on itself and its resampled path has a corner count in
// [SquareMinCorners, SquareMaxCorners).
func (p Params) Squarable(s *Stroke) bool {
	if s.Len() < p.MinPoints() || s.LoopDistance() > p.LoopThreshold {
		return false
	}
	n := len(p.Corners(p.Resample(s)))
	return n >= p.SquareMinCorners && n < p.SquareMaxCorners
}

// ConvertToSquare replaces the points of a squarable stroke with the outline
// of its bounding box. Other strokes are not touched. The stroke's State is
// left as it was.
func (p Params) ConvertToSquare(s *Stroke) bool {
	if !p.Squarable(s) {
		return false
	}
	s.Points = s.Bounds().Rectangle()
	return true
}

// ConstrainLine returns the end point of a straight line from anchor that
// follows target: horizontal when |dx|/|dy| > 1.5, vertical when it is below
// 0.5, and a 45° diagonal of length |target-anchor| otherwise.
func ConstrainLine(anchor, target Point) Point {
	dx := target.X - anchor.X
	dy := target.Y - anchor.Y
	if dx == 0 && dy == 0 {
		return anchor
	}
	ratio := math.Inf(1)
	if dy != 0 {
		ratio = math.Abs(dx) / math.Abs(dy)
	}
	switch {
	case ratio > 1.5:
		return Pt(target.X, anchor.Y)
	case ratio < 0.5:
		return Pt(anchor.X, target.Y)
	}
	r := anchor.Distance(target)
	sx, sy := 1.0, 1.0
	if dx < 0 {
		sx = -1
	}
	if dy < 0 {
		sy = -1
	}
	return Pt(anchor.X+sx*r*math.Cos(math.Pi/4), anchor.Y+sy*r*math.Sin(math.Pi/4))
}
