package ink

import (
	"errors"
	"fmt"
)

// Params holds the empirically chosen thresholds of the pipeline. They
// depend on input-device resolution and are meant to be tuned.
type Params struct {
	// Window is the straw half-width w. Strokes with fewer than 2w+1
	// points are never straightened.
	Window int `toml:"window"`
	// SpacingDivisor and MinSpacing give the default resampling spacing
	// max(diag/SpacingDivisor, MinSpacing).
	SpacingDivisor float64 `toml:"spacing_divisor"`
	MinSpacing     float64 `toml:"min_spacing"`
	// StrawFactor scales the median straw into the corner threshold.
	StrawFactor float64 `toml:"straw_factor"`
	// LineRatio is the chord/path ratio above which a corner is dropped.
	LineRatio float64 `toml:"line_ratio"`
	// Segments with xDist/yDist below VerticalRatio snap vertical, above
	// HorizontalRatio horizontal.
	VerticalRatio   float64 `toml:"vertical_ratio"`
	HorizontalRatio float64 `toml:"horizontal_ratio"`
	// LoopThreshold is the largest loop distance still treated as closed.
	LoopThreshold float64 `toml:"loop_threshold"`
	// Corner counts in [SquareMinCorners, SquareMaxCorners) convert to a
	// rectangle.
	SquareMinCorners int `toml:"square_min_corners"`
	SquareMaxCorners int `toml:"square_max_corners"`
}

// DefaultParams returns the stock thresholds.
func DefaultParams() Params {
	return Params{
		Window:           3,
		SpacingDivisor:   80,
		MinSpacing:       0.5,
		StrawFactor:      0.95,
		LineRatio:        0.95,
		VerticalRatio:    0.2,
		HorizontalRatio:  0.8,
		LoopThreshold:    30,
		SquareMinCorners: 5,
		SquareMaxCorners: 7,
	}
}

// MinPoints is the smallest stroke the corner detector can work on.
func (p Params) MinPoints() int {
	return 2*p.Window + 1
}

var errParams = errors.New("invalid shape parameters")

// Validate reports the first inconsistent field.
func (p Params) Validate() error {
	switch {
	case p.Window < 1:
		return fmt.Errorf("%w: window %d < 1", errParams, p.Window)
	case p.SpacingDivisor <= 0:
		return fmt.Errorf("%w: spacing divisor %g <= 0", errParams, p.SpacingDivisor)
	case p.MinSpacing <= 0:
		return fmt.Errorf("%w: min spacing %g <= 0", errParams, p.MinSpacing)
	case p.StrawFactor <= 0:
		return fmt.Errorf("%w: straw factor %g <= 0", errParams, p.StrawFactor)
	case p.LineRatio <= 0 || p.LineRatio > 1:
		return fmt.Errorf("%w: line ratio %g outside (0, 1]", errParams, p.LineRatio)
	case p.VerticalRatio < 0 || p.VerticalRatio > p.HorizontalRatio:
		return fmt.Errorf("%w: snap ratios %g, %g", errParams, p.VerticalRatio, p.HorizontalRatio)
	case p.LoopThreshold < 0:
		return fmt.Errorf("%w: loop threshold %g < 0", errParams, p.LoopThreshold)
	case p.SquareMinCorners < 2 || p.SquareMinCorners >= p.SquareMaxCorners:
		return fmt.Errorf("%w: square corner range [%d, %d)", errParams, p.SquareMinCorners, p.SquareMaxCorners)
	}
	return nil
}
