// Package ink turns raw pointer strokes into clean polylines: uniform
// arc-length resampling, corner detection with the "straw" heuristic, and
// the straightening and square-conversion steps built on top of them.
package ink

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point is a position on the drawing surface. Points are values; code in
// this package never edits a Point that is shared with another slice.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Vec returns p as a vector from the origin.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

func fromVec(v vec.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return o.Vec().Sub(p.Vec()).Length()
}

// Lerp linearly interpolates between p and o.
func (p Point) Lerp(o Point, t float64) Point {
	a := p.Vec()
	return fromVec(a.Add(o.Vec().Sub(a).Mul(t)))
}

// Bounds is an axis-aligned rectangle given by its minimum and maximum
// corners.
type Bounds struct {
	Min, Max Point
}

// BoundsOf returns the smallest rectangle containing all of pts.
// The zero Bounds is returned for an empty slice.
func BoundsOf(pts []Point) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	return b
}

// Diagonal returns the distance between the two corners of b.
func (b Bounds) Diagonal() float64 {
	return b.Min.Distance(b.Max)
}

// Union returns the smallest rectangle containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Min: Pt(min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y)),
		Max: Pt(max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y)),
	}
}

// Rect converts b to a geom rectangle.
func (b Bounds) Rect() rect.Rect {
	return rect.Rect{LLx: b.Min.X, LLy: b.Min.Y, URx: b.Max.X, URy: b.Max.Y}
}

// Rectangle returns the closed outline of b, starting and ending at Min:
// Min, (Max.X, Min.Y), Max, (Min.X, Max.Y), Min.
func (b Bounds) Rectangle() []Point {
	return []Point{
		b.Min,
		Pt(b.Max.X, b.Min.Y),
		b.Max,
		Pt(b.Min.X, b.Max.Y),
		b.Min,
	}
}

// PathLength returns the length of the polyline through pts.
func PathLength(pts []Point) float64 {
	var d float64
	for i := 1; i < len(pts); i++ {
		d += pts[i-1].Distance(pts[i])
	}
	return d
}
