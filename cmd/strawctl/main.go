// Command strawctl applies the shape pipeline to a saved board.
//
// It loads a board file, straightens every stroke a number of times,
// optionally squares closed quadrilaterals and densifies the result, then
// writes any combination of a board file, a PDF and a PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"StrawBoard/internal/config"
	"StrawBoard/internal/export"
	"StrawBoard/internal/state"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("strawctl", flag.ContinueOnError)
	var (
		cfgPath    = fs.String("config", config.DefaultPath, "settings file")
		in         = fs.String("in", "", "board file to read (required)")
		straighten = fs.Int("straighten", 1, "straighten passes per stroke")
		square     = fs.Bool("square", false, "turn closed four-cornered strokes into rectangles")
		densify    = fs.Bool("densify", false, "splice evenly spaced points into every stroke")
		out        = fs.String("out", "", "board file to write")
		pdfPath    = fs.String("pdf", "", "PDF file to write")
		pngPath    = fs.String("png", "", "PNG file to write")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		fs.Usage()
		return errors.New("-in is required")
	}
	if *straighten < 0 {
		return fmt.Errorf("-straighten %d: must not be negative", *straighten)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	params := cfg.Shapes

	board := state.NewBoard()
	f, err := os.Open(*in)
	if err != nil {
		return err
	}
	err = board.Load(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", *in, err)
	}

	for i := range *straighten {
		n := board.UpdateAll(params.Straighten)
		fmt.Fprintf(stdout, "straighten pass %d: %d of %d strokes changed\n", i+1, n, board.Len())
	}
	if *square {
		n := board.UpdateAll(params.ConvertToSquare)
		fmt.Fprintf(stdout, "squared %d strokes\n", n)
	}
	if *densify {
		n := board.UpdateAll(params.Densify)
		fmt.Fprintf(stdout, "densified %d strokes\n", n)
	}

	if *out != "" {
		if err := saveBoard(board, *out); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", *out)
	}
	opts := export.Options{Margin: cfg.Export.Margin}
	if *pdfPath != "" {
		if err := export.ExportPDF(*pdfPath, board.Snapshot(), opts); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", *pdfPath)
	}
	if *pngPath != "" {
		if err := export.ExportPNG(*pngPath, board.Snapshot(), opts); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", *pngPath)
	}
	return nil
}

func saveBoard(b *state.Board, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := b.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
