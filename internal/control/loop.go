package control

import (
	"context"
)

// Loop serialises events from any number of goroutines onto a single
// Controller. Every event is handled to completion before the next one is
// taken.
type Loop struct {
	ctrl *Controller
	jobs chan func(*Controller)
	done chan struct{}
}

// NewLoop creates a loop for c that buffers up to buffer events.
func NewLoop(c *Controller, buffer int) *Loop {
	return &Loop{
		ctrl: c,
		jobs: make(chan func(*Controller), buffer),
		done: make(chan struct{}),
	}
}

// Post queues ev. It blocks while the buffer is full and returns false once
// the loop has stopped.
func (l *Loop) Post(ev Event) bool {
	return l.Do(func(c *Controller) { c.Handle(ev) })
}

// Do queues fn to run on the loop goroutine, in order with posted events.
// It is how other goroutines change controller settings.
func (l *Loop) Do(fn func(*Controller)) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.jobs <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Run handles events until ctx is cancelled and returns ctx.Err(). Run must
// be called at most once.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.jobs:
			fn(l.ctrl)
		}
	}
}
