// Package draw provides clipped drawing primitives over a cell surface.
package draw

import "github.com/dshills/seqterm/internal/renderer/core"

// Surface is anything cells can be drawn on. Every backend is a Surface.
type Surface interface {
	Size() (width, height int)
	SetCell(x, y int, cell core.Cell)
}

// Clipped restricts drawing on s to clip. Cells outside clip are dropped.
type Clipped struct {
	s    Surface
	clip core.Rect
}

// Clip returns a surface that only draws inside clip.
func Clip(s Surface, clip core.Rect) *Clipped {
	if c, ok := s.(*Clipped); ok {
		return &Clipped{s: c.s, clip: c.clip.Intersect(clip)}
	}
	return &Clipped{s: s, clip: clip}
}

func (c *Clipped) Size() (int, int) { return c.s.Size() }

func (c *Clipped) SetCell(x, y int, cell core.Cell) {
	if c.clip.Contains(x, y) {
		c.s.SetCell(x, y, cell)
	}
}

// Fill sets every cell of rect to r in style.
func Fill(s Surface, rect core.Rect, r rune, style core.Style) {
	cell := core.NewStyledCell(r, style)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			s.SetCell(x, y, cell)
		}
	}
}

// Text draws text starting at (x, y), stopping before maxWidth columns
// are used. It returns the number of columns drawn. Wide runes that would
// straddle the limit are not drawn.
func Text(s Surface, x, y, maxWidth int, text string, style core.Style) int {
	col := 0
	for _, r := range text {
		w := core.RuneWidth(r)
		if col+w > maxWidth {
			break
		}
		s.SetCell(x+col, y, core.Cell{Rune: r, Width: w, Style: style})
		for i := 1; i < w; i++ {
			s.SetCell(x+col+i, y, core.Cell{Width: 0, Style: style})
		}
		col += w
	}
	return col
}

// TextCentered draws text horizontally centered in rect on row y.
func TextCentered(s Surface, rect core.Rect, y int, text string, style core.Style) {
	w := core.StringWidth(text)
	x := rect.X + max((rect.Width-w)/2, 0)
	Text(s, x, y, rect.Right()-x, text, style)
}

// Rounded border glyphs.
const (
	cornerTopLeft     = '╭'
	cornerTopRight    = '╮'
	cornerBottomLeft  = '╰'
	cornerBottomRight = '╯'
	lineHorizontal    = '─'
	lineVertical      = '│'
)

// Box draws a rounded border around rect with an optional title in the
// top edge, and returns the inner area.
func Box(s Surface, rect core.Rect, title string, style core.Style) core.Rect {
	if rect.Width < 2 || rect.Height < 2 {
		return core.Rect{X: rect.X, Y: rect.Y}
	}
	right := rect.Right() - 1
	bottom := rect.Bottom() - 1

	for x := rect.X + 1; x < right; x++ {
		s.SetCell(x, rect.Y, core.NewStyledCell(lineHorizontal, style))
		s.SetCell(x, bottom, core.NewStyledCell(lineHorizontal, style))
	}
	for y := rect.Y + 1; y < bottom; y++ {
		s.SetCell(rect.X, y, core.NewStyledCell(lineVertical, style))
		s.SetCell(right, y, core.NewStyledCell(lineVertical, style))
	}
	s.SetCell(rect.X, rect.Y, core.NewStyledCell(cornerTopLeft, style))
	s.SetCell(right, rect.Y, core.NewStyledCell(cornerTopRight, style))
	s.SetCell(rect.X, bottom, core.NewStyledCell(cornerBottomLeft, style))
	s.SetCell(right, bottom, core.NewStyledCell(cornerBottomRight, style))

	if title != "" && rect.Width > 4 {
		Text(s, rect.X+2, rect.Y, rect.Width-4, " "+title+" ", style)
	}
	return rect.Inset(1)
}
