package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrColor is returned for colour strings ParseColor does not understand.
var ErrColor = errors.New("unrecognised colour")

// ParseColor parses a CSS colour: a named colour, #rgb, #rrggbb, #rrggbbaa,
// rgb(r,g,b) or rgba(r,g,b,a) with a in [0, 1].
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseFunc(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrColor, s)
}

func parseHex(h string) (color.Color, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return nil, fmt.Errorf("%w: #%s", ErrColor, h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: #%s", ErrColor, h)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseFunc(s string) (color.Color, error) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if end < open {
		return nil, fmt.Errorf("%w: %q", ErrColor, s)
	}
	name := s[:open]
	args := strings.Split(s[open+1:end], ",")
	if (name == "rgb" && len(args) != 3) || (name == "rgba" && len(args) != 4) {
		return nil, fmt.Errorf("%w: %q", ErrColor, s)
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseFloat(strings.TrimSpace(args[i]), 64)
		if err != nil || v < 0 || v > 255 {
			return nil, fmt.Errorf("%w: %q", ErrColor, s)
		}
		ch[i] = uint8(math.Round(v))
	}
	a := uint8(255)
	if len(args) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(args[3]), 64)
		if err != nil || v < 0 || v > 1 {
			return nil, fmt.Errorf("%w: %q", ErrColor, s)
		}
		a = uint8(math.Round(v * 255))
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}
