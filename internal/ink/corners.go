package ink

import (
	"log/slog"
	"math"
	"slices"
)

// Corners returns the corner points of pts, a subsequence of pts that always
// starts with the first and ends with the last point.
//
// The detector compares each "straw", the chord between the points Window
// steps before and after an index, with the median straw. Straight runs have
// straws close to the median; turns shorten them. Every run of straws below
// StrawFactor times the median contributes its shortest straw as a corner.
// Corners whose neighbours are joined by a nearly straight path are then
// dropped.
//
// With fewer than MinPoints points no straw can be formed and only the
// endpoints are returned.
func (p Params) Corners(pts []Point) []Point {
	idx := p.CornerIndices(pts)
	out := make([]Point, len(idx))
	for i, c := range idx {
		out[i] = pts[c]
	}
	return out
}

// CornerIndices is like Corners but returns indices into pts.
func (p Params) CornerIndices(pts []Point) []int {
	n := len(pts)
	switch {
	case n == 0:
		return nil
	case n == 1:
		return []int{0}
	case n < p.MinPoints():
		return []int{0, n - 1}
	}

	w := p.Window
	straws := make([]float64, n-2*w)
	for i := w; i < n-w; i++ {
		straws[i-w] = pts[i-w].Distance(pts[i+w])
	}
	t := median(straws) * p.StrawFactor

	corners := []int{0}
	for i := w; i < n-w; i++ {
		if straws[i-w] >= t {
			continue
		}
		localMin := math.Inf(1)
		localMinIndex := i
		for ; i < n-w && straws[i-w] < t; i++ {
			if straws[i-w] < localMin {
				localMin = straws[i-w]
				localMinIndex = i
			}
		}
		corners = append(corners, localMinIndex)
	}
	corners = append(corners, n-1)
	found := len(corners)

	corners = p.dropCollinear(pts, corners)
	Logger().Debug("corners detected",
		slog.Int("points", n),
		slog.Float64("threshold", t),
		slog.Int("candidates", found),
		slog.Int("corners", len(corners)))
	return corners
}

// dropCollinear removes interior corners that sit on a basically straight
// path between their neighbours. After a removal the same position is
// examined again against the wider span.
func (p Params) dropCollinear(pts []Point, corners []int) []int {
	for i := 1; i < len(corners)-1; i++ {
		if p.isLine(pts, corners[i-1], corners[i+1]) {
			corners = slices.Delete(corners, i, i+1)
			i--
		}
	}
	return corners
}

func (p Params) isLine(pts []Point, a, b int) bool {
	path := PathLength(pts[a : b+1])
	if path == 0 {
		return true
	}
	return pts[a].Distance(pts[b])/path > p.LineRatio
}

// median returns the median of xs without modifying it. For an even count it
// is the mean of the two middle values. It returns 0 for an empty slice.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := slices.Clone(xs)
	slices.Sort(s)
	m := len(s) / 2
	if len(s)%2 == 0 {
		return (s[m-1] + s[m]) / 2
	}
	return s[m]
}
