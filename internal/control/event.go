// Package control drives a board from a stream of pointer and key events.
package control

import "StrawBoard/internal/ink"

// Kind identifies an input event.
type Kind int

const (
	Down Kind = iota
	Move
	Up
	Key
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Key:
		return "key"
	default:
		return "unknown"
	}
}

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	// ModShift constrains the stroke being drawn to a straight line.
	ModShift Modifier = 1 << iota
	// ModCtrl on pointer-up asks for square conversion.
	ModCtrl
)

// Has reports whether all bits of o are set in m.
func (m Modifier) Has(o Modifier) bool {
	return m&o == o
}

// KeyStraighten is the key code of the straighten trigger.
const KeyStraighten = "straighten"

// Event is one input sample. Pos is ignored for Key events and Code for all
// others.
type Event struct {
	Kind Kind
	Pos  ink.Point
	Mods Modifier
	Code string
}
