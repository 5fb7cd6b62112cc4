package splash

import (
	"testing"

	"github.com/dshills/seqterm/internal/command"
	"github.com/dshills/seqterm/internal/renderer/backend"
	"github.com/dshills/seqterm/internal/renderer/core"
	"github.com/dshills/seqterm/internal/renderer/draw"
)

func TestRenderCentersLines(t *testing.T) {
	b := backend.NewNullBackend(12, 6)
	s := New(draw.DefaultTheme(), "hello", "hi")
	s.Render(b, core.Rect{Width: 12, Height: 6}, false)

	want := []string{
		"╭──────────╮",
		"│          │",
		"│  hello   │",
		"│    hi    │",
		"│          │",
		"╰──────────╯",
	}
	for y, w := range want {
		if got := b.Row(y); got != w {
			t.Errorf("Row(%d) = %q, want %q", y, got, w)
		}
	}
	if !b.GetCell(3, 2).Style.Attributes.Has(core.AttrBold) {
		t.Error("title line is not bold")
	}
}

func TestRenderDropsOverflow(t *testing.T) {
	b := backend.NewNullBackend(8, 3)
	s := New(draw.DefaultTheme(), "a", "b", "c")
	s.Render(b, core.Rect{Width: 8, Height: 3}, false)
	if got := b.Row(1); got != "│  a   │" {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestDefaultLines(t *testing.T) {
	s := New(draw.DefaultTheme())
	if len(s.lines) != len(DefaultLines) {
		t.Errorf("lines = %v", s.lines)
	}
	s.HandleInput(command.Confirm())
}
