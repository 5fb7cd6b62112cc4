// Package pianoroll provides the piano-roll grid window.
package pianoroll

import (
	"github.com/dshills/seqterm/internal/command"
	"github.com/dshills/seqterm/internal/renderer/core"
	"github.com/dshills/seqterm/internal/renderer/draw"
)

const (
	title      = "Piano Roll"
	dotRune    = '·'
	cursorRune = '█'
)

// Grid is a piano-roll window: a columns × rows grid of steps with one
// selected cell.
type Grid struct {
	columns, rows int
	x, y          int
	theme         draw.Theme
}

// New creates a grid. The selection starts at (2, 2), clamped to the grid.
func New(columns, rows int, theme draw.Theme) *Grid {
	g := &Grid{
		columns: max(columns, 1),
		rows:    max(rows, 1),
		theme:   theme,
	}
	g.moveTo(2, 2)
	return g
}

// Size returns the grid dimensions in steps.
func (g *Grid) Size() (columns, rows int) {
	return g.columns, g.rows
}

// Cursor returns the selected cell.
func (g *Grid) Cursor() (x, y int) {
	return g.x, g.y
}

// SetTheme changes the colors used on the next render.
func (g *Grid) SetTheme(t draw.Theme) {
	g.theme = t
}

func (g *Grid) moveTo(x, y int) {
	g.x = min(max(x, 0), g.columns-1)
	g.y = min(max(y, 0), g.rows-1)
}

// HandleInput moves the selection. Confirm has no effect on the grid.
func (g *Grid) HandleInput(cmd command.Local) {
	if cmd.Kind == command.LocalMoveCursor {
		g.moveTo(g.x+cmd.DX, g.y+cmd.DY)
	}
}

// Render draws a bordered view of the grid. When the grid is larger than
// the view, it scrolls to keep the selection visible.
func (g *Grid) Render(s draw.Surface, area core.Rect, focused bool) {
	inner := draw.Box(s, area, title, g.theme.BorderStyle(focused))
	if inner.IsEmpty() {
		return
	}

	offX := max(g.x-inner.Width+1, 0)
	offY := max(g.y-inner.Height+1, 0)

	cursor := core.NewStyledCell(cursorRune, g.theme.GridCursor)
	dot := core.NewStyledCell(dotRune, g.theme.GridDot)

	for dy := 0; dy < inner.Height && offY+dy < g.rows; dy++ {
		for dx := 0; dx < inner.Width && offX+dx < g.columns; dx++ {
			cell := dot
			if offX+dx == g.x && offY+dy == g.y {
				cell = cursor
			}
			s.SetCell(inner.X+dx, inner.Y+dy, cell)
		}
	}
}
