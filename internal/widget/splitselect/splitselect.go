// Package splitselect provides the popup that asks which kind of window a
// split should create.
package splitselect

import (
	"github.com/dshills/seqterm/internal/command"
	"github.com/dshills/seqterm/internal/layout"
	"github.com/dshills/seqterm/internal/renderer/core"
	"github.com/dshills/seqterm/internal/renderer/draw"
	"github.com/dshills/seqterm/internal/widget/buttonlist"
)

const title = "New Window"

// Kind is a window kind the chooser offers.
type Kind uint8

const (
	KindPianoRoll Kind = iota
	KindSplash
)

// Kinds lists the offered kinds in display order.
var Kinds = []Kind{KindPianoRoll, KindSplash}

func (k Kind) String() string {
	switch k {
	case KindPianoRoll:
		return "Piano Roll"
	case KindSplash:
		return "Splash"
	}
	return "Unknown"
}

// Chooser is a popup listing window kinds. It remembers the split
// direction that opened it so the caller can finish the split once a
// kind is confirmed.
type Chooser struct {
	list      *buttonlist.List
	direction layout.Direction
	confirmed bool
	theme     draw.Theme
}

// New creates a chooser for a split in dir.
func New(dir layout.Direction, theme draw.Theme) *Chooser {
	labels := make([]string, len(Kinds))
	for i, k := range Kinds {
		labels[i] = k.String()
	}
	return &Chooser{
		list:      buttonlist.New(labels...),
		direction: dir,
		theme:     theme,
	}
}

// Direction returns the split direction the chooser was opened for.
func (c *Chooser) Direction() layout.Direction {
	return c.direction
}

// Hovered returns the kind under the cursor.
func (c *Chooser) Hovered() Kind {
	return Kinds[c.list.Hovered()]
}

// Choice returns the confirmed kind. ok is false until Confirm.
func (c *Chooser) Choice() (kind Kind, ok bool) {
	if !c.confirmed {
		return 0, false
	}
	return c.Hovered(), true
}

// SetTheme changes the colors used on the next render.
func (c *Chooser) SetTheme(t draw.Theme) {
	c.theme = t
}

func (c *Chooser) HandleInput(cmd command.Local) {
	switch cmd.Kind {
	case command.LocalMoveCursor:
		c.list.Move(cmd.DY)
	case command.LocalConfirm:
		c.confirmed = true
	}
}

// Render clears a box of half the area's size in its center and draws the
// list there.
func (c *Chooser) Render(s draw.Surface, area core.Rect, focused bool) {
	box := area.Centered(50, 50)
	base := core.DefaultStyle().WithForeground(core.ColorWhite)
	draw.Fill(s, box, ' ', base)

	inner := draw.Box(s, box, title, c.theme.BorderStyle(focused))
	c.list.Render(s, inner, base, c.theme.Hover)
}
