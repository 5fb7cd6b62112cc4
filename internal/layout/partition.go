package layout

import (
	"github.com/dshills/seqterm/internal/renderer/core"
)

// Percentages converts a ratio into the integer percentages given to the
// first and second child. Each is truncated on its own in single
// precision, so the pair may sum to less than 100 (0.33 gives 33 and 66).
func Percentages(ratio float64) (first, second int) {
	r := float32(min(max(ratio, 0), 1))
	first = int(float32(r * 100))
	second = int(float32(float32(1-r) * 100))
	return first, second
}

// Partition divides area along dir. Each child's size is its percentage of
// the total, truncated, so the two sizes can fall short of the total and
// leave unfilled cells after the second child.
func Partition(area core.Rect, dir Direction, ratio float64) (first, second core.Rect) {
	p1, p2 := Percentages(ratio)

	switch dir {
	case Vertical:
		h1 := area.Height * p1 / 100
		h2 := area.Height * p2 / 100
		first = core.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: h1}
		second = core.Rect{X: area.X, Y: area.Y + h1, Width: area.Width, Height: h2}
	default:
		w1 := area.Width * p1 / 100
		w2 := area.Width * p2 / 100
		first = core.Rect{X: area.X, Y: area.Y, Width: w1, Height: area.Height}
		second = core.Rect{X: area.X + w1, Y: area.Y, Width: w2, Height: area.Height}
	}
	return first, second
}
