package export

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"StrawBoard/internal/ink"
)

func redLine() []*ink.Stroke {
	return []*ink.Stroke{{
		ID:     "line",
		Points: []ink.Point{ink.Pt(30, 50), ink.Pt(130, 50)},
		Color:  "red",
		Size:   4,
	}}
}

func TestFrame(t *testing.T) {
	w, h, dx, dy := frame(redLine(), Options{Margin: 10})
	if w != 120 || h != 20 || dx != -20 || dy != -40 {
		t.Errorf("got frame %v x %v offset (%v, %v)", w, h, dx, dy)
	}

	w, h, dx, dy = frame(nil, Options{Margin: 5})
	if w != 10 || h != 10 || dx != 0 || dy != 0 {
		t.Errorf("empty board: got frame %v x %v offset (%v, %v)", w, h, dx, dy)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, redLine(), Options{Margin: 10}); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 20 {
		t.Fatalf("image is %v, want 120x20", b)
	}

	mid := color.NRGBAModel.Convert(img.At(60, 10)).(color.NRGBA)
	if mid.R < 200 || mid.G > 100 || mid.B > 100 {
		t.Errorf("line pixel is %v, want red", mid)
	}
	corner := color.NRGBAModel.Convert(img.At(1, 1)).(color.NRGBA)
	if corner.R < 240 || corner.G < 240 || corner.B < 240 {
		t.Errorf("background pixel is %v, want white", corner)
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, redLine(), Options{Margin: 10}); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestExportFiles(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "board.pdf")
	pngPath := filepath.Join(dir, "board.png")
	if err := ExportPDF(pdfPath, redLine(), Options{Margin: 10}); err != nil {
		t.Fatal(err)
	}
	if err := ExportPNG(pngPath, redLine(), Options{Margin: 10}); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{pdfPath, pngPath} {
		if fi, err := os.Stat(p); err != nil || fi.Size() == 0 {
			t.Errorf("%s: missing or empty (%v)", p, err)
		}
	}

	if err := ExportPNG(filepath.Join(dir, "missing", "x.png"), redLine(), Options{}); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
