package game

import (
	"fmt"
	"strings"
)

// Color identifies a player. The numeric value is the seating order.
type Color int

const (
	Red Color = iota
	Blue
	Green
	Yellow
)

// Colors lists every color in seating order, which is also the order
// in which colors roll while the play order is being determined.
var Colors = [NumColors]Color{Red, Blue, Green, Yellow}

var colorNames = [NumColors]string{"red", "blue", "green", "yellow"}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorNames[c]
}

func (c Color) Valid() bool {
	return c >= Red && c <= Yellow
}

// Next returns the color seated after c, wrapping around.
func (c Color) Next() Color {
	return (c + 1) % NumColors
}

// ParseColor accepts the lower-case color names, ignoring case and
// surrounding space.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", s)
}
