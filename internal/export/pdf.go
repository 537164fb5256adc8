package export

import (
	"fmt"
	"image/color"
	"io"

	"StrawBoard/internal/ink"
	"StrawBoard/internal/render"

	"github.com/jung-kurt/gofpdf"
)

// pdfSurface draws onto the current page of a gofpdf document, one board
// unit per point.
type pdfSurface struct {
	p      *gofpdf.Fpdf
	dx, dy float64
}

func (s *pdfSurface) Clear() {}

func (s *pdfSurface) SetStyle(c color.Color, width float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s.p.SetDrawColor(int(n.R), int(n.G), int(n.B))
	s.p.SetAlpha(float64(n.A)/255, "Normal")
	s.p.SetLineWidth(width)
}

func (s *pdfSurface) MoveTo(x, y float64) { s.p.MoveTo(x+s.dx, y+s.dy) }
func (s *pdfSurface) LineTo(x, y float64) { s.p.LineTo(x+s.dx, y+s.dy) }

func (s *pdfSurface) Stroke() error {
	s.p.DrawPath("D")
	return s.p.Error()
}

// WritePDF renders strokes onto a single page sized to fit them.
func WritePDF(w io.Writer, strokes []*ink.Stroke, opts Options) error {
	width, height, dx, dy := frame(strokes, opts)
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: max(width, 1), Ht: max(height, 1)},
	})
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	if err := render.Draw(&pdfSurface{p: p, dx: dx, dy: dy}, strokes); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

// ExportPDF writes strokes to a PDF file at path.
func ExportPDF(path string, strokes []*ink.Stroke, opts Options) error {
	return toFile(path, func(w io.Writer) error {
		return WritePDF(w, strokes, opts)
	})
}
