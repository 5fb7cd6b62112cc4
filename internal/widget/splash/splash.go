// Package splash provides the start screen window.
package splash

import (
	"github.com/dshills/seqterm/internal/command"
	"github.com/dshills/seqterm/internal/renderer/core"
	"github.com/dshills/seqterm/internal/renderer/draw"
)

// DefaultLines is shown when no lines are given.
var DefaultLines = []string{
	"seqterm",
	"",
	"<C-s> split horizontally   <C-v> split vertically",
	":q to quit",
}

// Screen draws a block of text centered in its area. It ignores input.
type Screen struct {
	lines []string
	theme draw.Theme
}

// New creates a splash screen. With no lines it shows DefaultLines.
func New(theme draw.Theme, lines ...string) *Screen {
	if len(lines) == 0 {
		lines = DefaultLines
	}
	return &Screen{lines: lines, theme: theme}
}

// SetTheme changes the colors used on the next render.
func (s *Screen) SetTheme(t draw.Theme) {
	s.theme = t
}

func (s *Screen) HandleInput(command.Local) {}

// Render draws the lines centered vertically and horizontally. The first
// line is bold. Lines that do not fit are dropped from the bottom.
func (s *Screen) Render(surf draw.Surface, area core.Rect, focused bool) {
	inner := draw.Box(surf, area, "", s.theme.BorderStyle(focused))
	if inner.IsEmpty() {
		return
	}

	n := min(len(s.lines), inner.Height)
	top := inner.Y + (inner.Height-n)/2
	for i := 0; i < n; i++ {
		style := core.DefaultStyle()
		if i == 0 {
			style = style.Bold()
		}
		draw.TextCentered(surf, inner, top+i, s.lines[i], style)
	}
}
