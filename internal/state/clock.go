package state

import "sync/atomic"

// Revision counts board mutations. Renderers compare revisions to skip
// redraws when nothing changed.
type Revision struct {
	n atomic.Uint64
}

func (r *Revision) next() uint64 {
	return r.n.Add(1)
}

// Load returns the current revision.
func (r *Revision) Load() uint64 {
	return r.n.Load()
}
