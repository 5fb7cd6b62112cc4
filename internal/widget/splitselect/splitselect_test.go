package splitselect

import (
	"strings"
	"testing"

	"github.com/dshills/seqterm/internal/command"
	"github.com/dshills/seqterm/internal/layout"
	"github.com/dshills/seqterm/internal/renderer/backend"
	"github.com/dshills/seqterm/internal/renderer/core"
	"github.com/dshills/seqterm/internal/renderer/draw"
)

func TestChoice(t *testing.T) {
	tests := []struct {
		name   string
		cmds   []command.Local
		want   Kind
		wantOK bool
	}{
		{"nothing", nil, KindPianoRoll, false},
		{"move only", []command.Local{command.MoveCursor(0, 1)}, 0, false},
		{"confirm first", []command.Local{command.Confirm()}, KindPianoRoll, true},
		{"down confirm", []command.Local{command.MoveCursor(0, 1), command.Confirm()}, KindSplash, true},
		{"clamped", []command.Local{command.MoveCursor(0, 5), command.MoveCursor(0, -9), command.Confirm()}, KindPianoRoll, true},
		{"dx ignored", []command.Local{command.MoveCursor(3, 0), command.Confirm()}, KindPianoRoll, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(layout.Vertical, draw.DefaultTheme())
			for _, cmd := range tt.cmds {
				c.HandleInput(cmd)
			}
			got, ok := c.Choice()
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("Choice() = %v, %v, want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	if got := New(layout.Vertical, draw.DefaultTheme()).Direction(); got != layout.Vertical {
		t.Errorf("Direction() = %v", got)
	}
}

func TestKindString(t *testing.T) {
	if KindPianoRoll.String() != "Piano Roll" || KindSplash.String() != "Splash" {
		t.Errorf("names = %q, %q", KindPianoRoll, KindSplash)
	}
}

func TestRender(t *testing.T) {
	b := backend.NewNullBackend(40, 10)
	// Something underneath the popup, to see it cleared.
	draw.Fill(b, core.Rect{Width: 40, Height: 10}, '#', core.DefaultStyle())

	c := New(layout.Horizontal, draw.DefaultTheme())
	c.Render(b, core.Rect{Width: 40, Height: 10}, true)

	pad := strings.Repeat("#", 10)
	want := []string{
		strings.Repeat("#", 40),
		strings.Repeat("#", 40),
		pad + "╭─ New Window ─────╮" + pad,
		pad + "│    Piano Roll    │" + pad,
		pad + "│      Splash      │" + pad,
		pad + "│                  │" + pad,
		pad + "╰──────────────────╯" + pad,
		strings.Repeat("#", 40),
	}
	for y, w := range want {
		if got := b.Row(y); got != w {
			t.Errorf("Row(%d) = %q, want %q", y, got, w)
		}
	}

	if got := b.GetCell(10, 2).Style.Foreground; got != core.ColorLightGreen {
		t.Errorf("focused border color = %v, want light green", got)
	}
	if !b.GetCell(11, 3).Style.Attributes.Has(core.AttrReverse) {
		t.Error("hovered row not reversed")
	}
	if b.GetCell(11, 4).Style.Attributes.Has(core.AttrReverse) {
		t.Error("second row reversed")
	}
}
