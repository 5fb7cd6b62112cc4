package window

import (
	"github.com/dshills/seqterm/internal/command"
	"github.com/dshills/seqterm/internal/layout"
	"github.com/dshills/seqterm/internal/renderer/core"
	"github.com/dshills/seqterm/internal/renderer/draw"
)

// ID identifies a window. IDs increase monotonically and are never reused.
type ID = layout.WindowID

// Window is anything the manager can place on screen.
type Window interface {
	// Render draws the window inside area. focused is true when the window
	// receives input.
	Render(s draw.Surface, area core.Rect, focused bool)

	// HandleInput applies a window-local command to the window's state.
	HandleInput(cmd command.Local)
}
