// Package export writes boards to PDF and PNG files.
package export

import (
	"fmt"
	"io"
	"os"

	"StrawBoard/internal/ink"
	"StrawBoard/internal/state"
)

// Options controls the page or image produced by an export.
type Options struct {
	// Margin is the blank border around the drawing, in board units.
	Margin float64
}

// frame returns the page size that fits strokes plus the margin and the
// offset that moves the drawing into it.
func frame(strokes []*ink.Stroke, opts Options) (width, height, dx, dy float64) {
	b, ok := state.StrokeBounds(strokes)
	if !ok {
		return 2 * opts.Margin, 2 * opts.Margin, 0, 0
	}
	width = b.Max.X - b.Min.X + 2*opts.Margin
	height = b.Max.Y - b.Min.Y + 2*opts.Margin
	return width, height, opts.Margin - b.Min.X, opts.Margin - b.Min.Y
}

func toFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
