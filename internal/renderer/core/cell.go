package core

import "github.com/mattn/go-runewidth"

// Cell is one terminal cell. A wide rune occupies its own cell with Width 2
// followed by a continuation cell with Width 0.
type Cell struct {
	Rune  rune
	Width int
	Style Style
}

// EmptyCell is a blank in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewStyledCell creates a cell for r, measuring its display width.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// RuneWidth is the number of columns r occupies. Control and zero-width
// runes report 1 so that every drawn rune advances the cursor.
func RuneWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 1 {
		return w
	}
	return 1
}

// StringWidth is the display width of s.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}
