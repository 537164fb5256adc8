package state

import (
	"errors"
	"fmt"
	"slices"

	"StrawBoard/internal/ink"

	"github.com/google/uuid"
)

// ErrInvalidRecord is returned when a persisted stroke cannot be restored.
var ErrInvalidRecord = errors.New("invalid stroke record")

// Record is the persisted form of a stroke.
type Record struct {
	Points       []ink.Point `json:"points"`
	BrushColor   string      `json:"brushColor"`
	BrushSize    float64     `json:"brushSize"`
	Straightened bool        `json:"straightened"`
}

// RecordOf captures the persisted fields of s.
func RecordOf(s *ink.Stroke) Record {
	return Record{
		Points:       slices.Clone(s.Points),
		BrushColor:   s.Color,
		BrushSize:    s.Size,
		Straightened: s.Straightened(),
	}
}

// Validate checks the invariants a loaded stroke must satisfy.
func (r Record) Validate() error {
	if len(r.Points) == 0 {
		return fmt.Errorf("%w: no points", ErrInvalidRecord)
	}
	if r.BrushSize <= 0 {
		return fmt.Errorf("%w: brush size %g", ErrInvalidRecord, r.BrushSize)
	}
	return nil
}

// Stroke rebuilds a stroke with a fresh ID. A straightened record comes back
// as CornersExtracted, so the next straighten snaps it to the axes.
func (r Record) Stroke() *ink.Stroke {
	s := &ink.Stroke{
		ID:     uuid.NewString(),
		Points: slices.Clone(r.Points),
		Color:  r.BrushColor,
		Size:   r.BrushSize,
	}
	if r.Straightened {
		s.State = ink.CornersExtracted
	}
	return s
}
