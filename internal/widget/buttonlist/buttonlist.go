// Package buttonlist provides a vertical list of labels with one hovered
// entry.
package buttonlist

import (
	"github.com/dshills/seqterm/internal/renderer/core"
	"github.com/dshills/seqterm/internal/renderer/draw"
)

// List is a vertical list of buttons. The hovered button is drawn in the
// hover style.
type List struct {
	labels  []string
	hovered int
}

// New creates a list hovering the first label.
func New(labels ...string) *List {
	return &List{labels: labels}
}

// Len returns the number of buttons.
func (l *List) Len() int {
	return len(l.labels)
}

// Hovered returns the hovered index, or -1 for an empty list.
func (l *List) Hovered() int {
	if len(l.labels) == 0 {
		return -1
	}
	return l.hovered
}

// Label returns the hovered label.
func (l *List) Label() string {
	if len(l.labels) == 0 {
		return ""
	}
	return l.labels[l.hovered]
}

// Move shifts the hover by delta, clamped to the list.
func (l *List) Move(delta int) {
	if len(l.labels) == 0 {
		return
	}
	l.hovered = min(max(l.hovered+delta, 0), len(l.labels)-1)
}

// Render draws one label per row, centered in area. Rows past the area are
// not drawn.
func (l *List) Render(s draw.Surface, area core.Rect, normal, hover core.Style) {
	for i, label := range l.labels {
		if i >= area.Height {
			return
		}
		style := normal
		if i == l.hovered {
			style = hover
		}
		row := core.Rect{X: area.X, Y: area.Y + i, Width: area.Width, Height: 1}
		draw.Fill(s, row, ' ', style)
		draw.TextCentered(s, row, row.Y, label, style)
	}
}
