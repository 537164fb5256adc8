package ink

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// polyline returns points along the edges between vertices, at most step
// apart, including every vertex.
func polyline(step float64, vertices ...Point) []Point {
	pts := []Point{vertices[0]}
	for i := 1; i < len(vertices); i++ {
		a, b := vertices[i-1], vertices[i]
		n := int(a.Distance(b)/step) + 1
		for k := 1; k <= n; k++ {
			pts = append(pts, a.Lerp(b, float64(k)/float64(n)))
		}
	}
	return pts
}

// isSubsequence reports whether sub appears in pts in order.
func isSubsequence(sub, pts []Point) bool {
	j := 0
	for _, p := range pts {
		if j < len(sub) && sub[j] == p {
			j++
		}
	}
	return j == len(sub)
}
