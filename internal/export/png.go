package export

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"StrawBoard/internal/ink"
	"StrawBoard/internal/render"

	"github.com/gogpu/gg"
)

// ggSurface draws onto a gg raster context on a white background.
type ggSurface struct {
	dc     *gg.Context
	dx, dy float64
}

func (s *ggSurface) Clear() { s.dc.ClearWithColor(gg.White) }

func (s *ggSurface) SetStyle(c color.Color, width float64) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
}

func (s *ggSurface) MoveTo(x, y float64) { s.dc.MoveTo(x+s.dx, y+s.dy) }
func (s *ggSurface) LineTo(x, y float64) { s.dc.LineTo(x+s.dx, y+s.dy) }
func (s *ggSurface) Stroke() error       { return s.dc.Stroke() }

// WritePNG renders strokes into an image sized to fit them.
func WritePNG(w io.Writer, strokes []*ink.Stroke, opts Options) error {
	width, height, dx, dy := frame(strokes, opts)
	dc := gg.NewContext(max(int(math.Ceil(width)), 1), max(int(math.Ceil(height)), 1))
	defer dc.Close()
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	if err := render.Draw(&ggSurface{dc: dc, dx: dx, dy: dy}, strokes); err != nil {
		return fmt.Errorf("rendering png: %w", err)
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// ExportPNG writes strokes to a PNG file at path.
func ExportPNG(path string, strokes []*ink.Stroke, opts Options) error {
	return toFile(path, func(w io.Writer) error {
		return WritePNG(w, strokes, opts)
	})
}
