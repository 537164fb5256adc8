package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// lineSurface turns rendered polylines into fyne line segments shifted by
// the current pan offset.
type lineSurface struct {
	dx, dy  float32
	objects []fyne.CanvasObject

	color color.Color
	width float32
	last  fyne.Position
	open  bool
	empty bool
}

func (s *lineSurface) Clear() {
	s.objects = s.objects[:0]
	s.open = false
}

func (s *lineSurface) SetStyle(c color.Color, width float64) {
	s.color = c
	s.width = float32(width)
}

func (s *lineSurface) MoveTo(x, y float64) {
	s.last = s.pos(x, y)
	s.open = true
	s.empty = true
}

func (s *lineSurface) LineTo(x, y float64) {
	p := s.pos(x, y)
	if !s.open {
		s.MoveTo(x, y)
		return
	}
	s.segment(s.last, p)
	s.last = p
	s.empty = false
}

func (s *lineSurface) Stroke() error {
	// A lone point still leaves a dot.
	if s.open && s.empty {
		s.segment(s.last, s.last)
	}
	s.open = false
	return nil
}

func (s *lineSurface) segment(a, b fyne.Position) {
	line := canvas.NewLine(s.color)
	line.StrokeWidth = s.width
	line.Position1 = a
	line.Position2 = b
	s.objects = append(s.objects, line)
}

func (s *lineSurface) pos(x, y float64) fyne.Position {
	return fyne.NewPos(float32(x)+s.dx, float32(y)+s.dy)
}
