package control

import (
	"log"

	"StrawBoard/internal/ink"
	"StrawBoard/internal/state"
)

// Controller owns the stroke being drawn and applies the shape pipeline to
// it at the trigger points. It is not safe for concurrent use; run it behind
// a Loop when events come from more than one goroutine.
type Controller struct {
	board  *state.Board
	params ink.Params

	// current is the most recently started stroke. It stays set after
	// pointer-up so the straighten key can still reach it.
	current *ink.Stroke
	drawing bool

	color   string
	size    float64
	densify bool
}

// NewController creates a controller drawing onto board.
func NewController(board *state.Board, params ink.Params) *Controller {
	return &Controller{
		board:  board,
		params: params,
		color:  "rgba(0,0,0,0.2)",
		size:   2,
	}
}

// SetBrush sets the colour and size of strokes started from now on.
func (c *Controller) SetBrush(color string, size float64) {
	c.color = color
	c.size = size
}

// SetDensify makes pointer-up splice evenly spaced points into the finished
// stroke.
func (c *Controller) SetDensify(on bool) {
	c.densify = on
}

// Current returns the handle of the stroke the controller acts on, or nil.
func (c *Controller) Current() *ink.Stroke {
	return c.current
}

// Drawing reports whether a stroke is in progress.
func (c *Controller) Drawing() bool {
	return c.drawing
}

// Forget drops the current stroke handle, e.g. after the board was reloaded.
func (c *Controller) Forget() {
	c.current = nil
	c.drawing = false
}

// Handle applies one input event.
func (c *Controller) Handle(ev Event) {
	switch ev.Kind {
	case Down:
		c.down(ev)
	case Move:
		c.move(ev)
	case Up:
		c.up(ev)
	case Key:
		c.key(ev)
	}
}

func (c *Controller) down(ev Event) {
	if c.drawing {
		return
	}
	c.drawing = true
	c.current = c.board.Begin(ev.Pos, c.color, c.size)
}

func (c *Controller) move(ev Event) {
	if !c.drawing {
		return
	}
	c.board.Update(c.current, func(s *ink.Stroke) bool {
		if !ev.Mods.Has(ModShift) {
			s.Add(ev.Pos)
			return true
		}
		if s.Len() < 2 {
			s.Add(s.Points[0])
		}
		anchor := s.Points[s.Len()-2]
		s.Points[s.Len()-1] = ink.ConstrainLine(anchor, ev.Pos)
		return true
	})
}

func (c *Controller) up(ev Event) {
	if !c.drawing {
		return
	}
	c.drawing = false

	if ev.Mods.Has(ModCtrl) {
		if c.board.Update(c.current, c.params.ConvertToSquare) {
			log.Printf("[CTRL] Converted stroke %s to a rectangle", c.current.ID)
		}
	}
	if c.densify {
		c.board.Update(c.current, c.params.Densify)
	}
}

func (c *Controller) key(ev Event) {
	if ev.Code != KeyStraighten || c.current == nil {
		return
	}
	c.board.Update(c.current, c.params.Straighten)
}
