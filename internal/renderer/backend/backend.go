// Package backend abstracts the terminal the editor draws on.
package backend

import (
	"time"

	"github.com/dshills/seqterm/internal/input/key"
	"github.com/dshills/seqterm/internal/renderer/core"
)

// EventType identifies the kind of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
)

// Event is a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int
}

// KeyEvent wraps a key press as a terminal event.
func KeyEvent(ev key.Event) Event {
	return Event{Type: EventKey, Key: ev}
}

// Backend is a cell grid plus an input source.
type Backend interface {
	// Init prepares the backend. It must be called before anything else.
	Init() error

	// Shutdown releases resources and restores the terminal.
	Shutdown()

	// Size returns the current dimensions in cells.
	Size() (width, height int)

	// SetCell sets one cell. Positions outside the grid are ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns a cell, or an empty cell outside the grid.
	GetCell(x, y int) core.Cell

	// Fill sets every cell of rect.
	Fill(rect core.Rect, cell core.Cell)

	// Clear blanks the grid.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	ShowCursor(x, y int)
	HideCursor()

	// PollEvent waits at most timeout for the next event. The second
	// result is false when the wait timed out.
	PollEvent(timeout time.Duration) (Event, bool)

	// PostEvent queues a synthetic event. It never blocks; events are
	// dropped when the queue is full.
	PostEvent(ev Event)
}
