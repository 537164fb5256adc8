// Package render paints strokes onto any surface that can build and stroke
// polylines.
package render

import (
	"fmt"
	"image/color"
	"log"

	"StrawBoard/internal/ink"
)

// Surface is a 2D drawing target. Implementations draw lines with round caps
// and joins.
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	// SetStyle sets the colour and width of the next stroked path.
	SetStyle(c color.Color, width float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Stroke paints the current path and starts a new one.
	Stroke() error
}

// Draw clears s and paints every stroke in order as an open polyline through
// its points. A stroke whose colour cannot be parsed is painted black.
func Draw(s Surface, strokes []*ink.Stroke) error {
	s.Clear()
	for _, st := range strokes {
		if st.Len() == 0 {
			continue
		}
		c, err := ParseColor(st.Color)
		if err != nil {
			log.Printf("[RENDER] Stroke %s: %v, using black", st.ID, err)
			c = color.Black
		}
		s.SetStyle(c, st.Size)

		s.MoveTo(st.Points[0].X, st.Points[0].Y)
		for _, p := range st.Points[1:] {
			s.LineTo(p.X, p.Y)
		}
		if err := s.Stroke(); err != nil {
			return fmt.Errorf("stroking %s: %w", st.ID, err)
		}
	}
	return nil
}
