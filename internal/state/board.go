package state

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"slices"
	"sync"

	"StrawBoard/internal/ink"

	"github.com/google/uuid"
)

// Board is the ordered collection of strokes on the drawing surface.
// Strokes are appended in drawing order and only removed by Reset or Load.
type Board struct {
	strokes []*ink.Stroke
	rev     Revision
	mu      sync.RWMutex

	// OnChange is called after every mutation with the new revision. It is
	// called without the board lock held.
	OnChange func(rev uint64)
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{strokes: make([]*ink.Stroke, 0)}
}

// Begin starts a new stroke at p and returns the handle the caller uses for
// all further edits.
func (b *Board) Begin(p ink.Point, color string, size float64) *ink.Stroke {
	s := ink.NewStroke(p, color, size)
	s.ID = uuid.NewString()

	b.mu.Lock()
	b.strokes = append(b.strokes, s)
	b.mu.Unlock()

	b.changed()
	return s
}

// Update runs fn on s under the board lock. fn reports whether it changed
// the stroke; only then is the revision bumped. Update returns false for a
// stroke that is not on the board, for example after a Reset.
func (b *Board) Update(s *ink.Stroke, fn func(*ink.Stroke) bool) bool {
	b.mu.Lock()
	if !slices.Contains(b.strokes, s) {
		b.mu.Unlock()
		log.Printf("[BOARD] Ignoring update of stroke %s: not on the board", s.ID)
		return false
	}
	changed := fn(s)
	b.mu.Unlock()

	if changed {
		b.changed()
	}
	return changed
}

// UpdateAll runs fn on every stroke under the board lock and returns how
// many it changed. The revision is bumped once if any did.
func (b *Board) UpdateAll(fn func(*ink.Stroke) bool) int {
	b.mu.Lock()
	n := 0
	for _, s := range b.strokes {
		if fn(s) {
			n++
		}
	}
	b.mu.Unlock()

	if n > 0 {
		b.changed()
	}
	return n
}

// Snapshot returns deep copies of all strokes in drawing order.
func (b *Board) Snapshot() []*ink.Stroke {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*ink.Stroke, len(b.strokes))
	for i, s := range b.strokes {
		out[i] = s.Clone()
	}
	return out
}

// Len returns the number of strokes.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.strokes)
}

// Revision returns the number of mutations so far.
func (b *Board) Revision() uint64 {
	return b.rev.Load()
}

// Bounds returns the rectangle containing every stroke. ok is false for an
// empty board.
func (b *Board) Bounds() (bounds ink.Bounds, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return StrokeBounds(b.strokes)
}

// Reset removes all strokes.
func (b *Board) Reset() {
	b.mu.Lock()
	n := len(b.strokes)
	b.strokes = make([]*ink.Stroke, 0)
	b.mu.Unlock()

	log.Printf("[BOARD] Cleared %d strokes", n)
	b.changed()
}

// Save writes the board as a JSON array of stroke records.
func (b *Board) Save(w io.Writer) error {
	b.mu.RLock()
	records := make([]Record, len(b.strokes))
	for i, s := range b.strokes {
		records[i] = RecordOf(s)
	}
	b.mu.RUnlock()

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding board: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing board: %w", err)
	}
	log.Printf("[BOARD] Saved %d strokes", len(records))
	return nil
}

// Load replaces the board's strokes with the records read from r. On error
// the board is left unchanged.
func (b *Board) Load(r io.Reader) error {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return fmt.Errorf("decoding board: %w", err)
	}

	strokes := make([]*ink.Stroke, 0, len(records))
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("stroke %d: %w", i, err)
		}
		strokes = append(strokes, rec.Stroke())
	}

	b.mu.Lock()
	b.strokes = strokes
	b.mu.Unlock()

	log.Printf("[BOARD] Loaded %d strokes", len(strokes))
	b.changed()
	return nil
}

func (b *Board) changed() {
	rev := b.rev.next()
	if b.OnChange != nil {
		b.OnChange(rev)
	}
}

// StrokeBounds returns the rectangle containing all points of strokes.
func StrokeBounds(strokes []*ink.Stroke) (bounds ink.Bounds, ok bool) {
	for _, s := range strokes {
		if s.Len() == 0 {
			continue
		}
		if !ok {
			bounds, ok = s.Bounds(), true
			continue
		}
		bounds = bounds.Union(s.Bounds())
	}
	return bounds, ok
}
