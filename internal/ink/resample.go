package ink

import (
	"log/slog"
	"slices"
)

// Spacing returns the default resampling distance for a shape with bounds
// b. It grows with the shape so small and large drawings get a similar
// number of samples, and never drops below MinSpacing.
func (p Params) Spacing(b Bounds) float64 {
	return max(b.Diagonal()/p.SpacingDivisor, p.MinSpacing)
}

// Resample returns points spaced spacing apart along the path through pts,
// starting with a copy of pts[0]. Long segments yield one point per
// multiple of spacing. The final input point is not appended. pts is not
// modified; fewer than two points or a non-positive spacing give a copy.
func Resample(pts []Point, spacing float64) []Point {
	if len(pts) < 2 || spacing <= 0 {
		return slices.Clone(pts)
	}
	return walk(pts, spacing, false)
}

// ResampleMerge is like Resample but keeps every original vertex,
// splicing the interpolated points in between them.
func ResampleMerge(pts []Point, spacing float64) []Point {
	if len(pts) < 2 || spacing <= 0 {
		return slices.Clone(pts)
	}
	return walk(pts, spacing, true)
}

func walk(pts []Point, spacing float64, merge bool) []Point {
	out := []Point{pts[0]}
	// d1 is the arc length walked since the last emitted point.
	var d1 float64
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := a.Distance(b)
		emitted := false
		for d > 0 && d1+d >= spacing {
			q := a.Lerp(b, (spacing-d1)/d)
			out = append(out, q)
			a, d, d1 = q, q.Distance(b), 0
			emitted = true
		}
		d1 += d
		if merge && !(emitted && d == 0) {
			out = append(out, b)
		}
	}
	return out
}

// Resample resamples s at the default spacing for its bounds. Strokes
// shorter than MinPoints are returned unchanged.
func (p Params) Resample(s *Stroke) []Point {
	if s.Len() < p.MinPoints() {
		return slices.Clone(s.Points)
	}
	spacing := p.Spacing(s.Bounds())
	out := Resample(s.Points, spacing)
	Logger().Debug("resampled stroke",
		slog.Int("in", s.Len()),
		slog.Int("out", len(out)),
		slog.Float64("spacing", spacing))
	return out
}

// Densify splices evenly spaced points into s without dropping any of its
// vertices. It reports whether s changed.
func (p Params) Densify(s *Stroke) bool {
	if s.Len() < 2 {
		return false
	}
	out := ResampleMerge(s.Points, p.Spacing(s.Bounds()))
	if len(out) == s.Len() {
		return false
	}
	s.Points = out
	return true
}
