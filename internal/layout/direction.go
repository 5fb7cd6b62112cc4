package layout

import (
	"fmt"
	"strings"
)

// Direction is the axis a split divides.
type Direction uint8

const (
	// Horizontal places children side by side, dividing the width.
	Horizontal Direction = iota
	// Vertical stacks children top to bottom, dividing the height.
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// ParseDirection accepts "horizontal"/"h" and "vertical"/"v".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return 0, fmt.Errorf("unknown split direction %q", s)
}
