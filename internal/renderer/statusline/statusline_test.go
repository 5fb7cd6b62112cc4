package statusline

import (
	"testing"

	"github.com/dshills/seqterm/internal/input/mode"
	"github.com/dshills/seqterm/internal/renderer/backend"
	"github.com/dshills/seqterm/internal/renderer/core"
)

func render(s *StatusLine, width int) *backend.NullBackend {
	b := backend.NewNullBackend(width, 2)
	s.Render(b, core.Rect{Y: 1, Width: width, Height: 1})
	return b
}

func TestModeLine(t *testing.T) {
	tests := []struct {
		name    string
		mode    mode.Mode
		pending string
		want    string
	}{
		{"normal", mode.Normal, "", "-- NORMAL --        "},
		{"insert", mode.Insert, "", "-- INSERT --        "},
		{"pending", mode.Normal, "12d", "-- NORMAL --    12d "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(core.DefaultStyle())
			s.SetMode(tt.mode)
			s.SetPending(tt.pending)
			b := render(s, 20)
			if got := b.Row(1); got != tt.want {
				t.Errorf("Row(1) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPendingDroppedWhenNoRoom(t *testing.T) {
	s := New(core.DefaultStyle())
	s.SetPending("99999d")
	b := render(s, 14)
	if got := b.Row(1); got != "-- NORMAL --  " {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestCommandLine(t *testing.T) {
	tests := []struct {
		name       string
		buffer     string
		cursor     int
		want       string
		reversedAt int
	}{
		{"empty", "", 0, ":     ", 1},
		{"end", "q", 1, ":q    ", 2},
		{"middle", "quit", 1, ":quit ", 2},
		{"start", "wq", 0, ":wq   ", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(core.DefaultStyle())
			s.SetMode(mode.Command)
			s.SetCommandBuffer(tt.buffer, tt.cursor)
			b := render(s, 6)

			if got := b.Row(1); got != tt.want {
				t.Errorf("Row(1) = %q, want %q", got, tt.want)
			}
			for x := 0; x < 6; x++ {
				reversed := b.GetCell(x, 1).Style.Attributes.Has(core.AttrReverse)
				if reversed != (x == tt.reversedAt) {
					t.Errorf("cell %d reversed = %v", x, reversed)
				}
			}
		})
	}
}

func TestCommandLineHidesMessage(t *testing.T) {
	s := New(core.DefaultStyle())
	s.SetMessage("config reloaded", MessageInfo)
	s.SetMode(mode.Command)
	b := render(s, 10)
	if got := b.Row(1); got != ":         " {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestMessage(t *testing.T) {
	s := New(core.DefaultStyle())
	s.SetMessage("bad config", MessageError)
	b := render(s, 12)
	if got := b.Row(1); got != "bad config  " {
		t.Errorf("Row(1) = %q", got)
	}
	if fg := b.GetCell(0, 1).Style.Foreground; fg != core.ColorRed {
		t.Errorf("message foreground = %v, want red", fg)
	}

	s.ClearMessage()
	if msg, typ := s.Message(); msg != "" || typ != MessageNone {
		t.Errorf("Message() = %q, %v after clear", msg, typ)
	}
	b = render(s, 12)
	if got := b.Row(1); got != "-- NORMAL --" {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestRenderEmptyArea(t *testing.T) {
	s := New(core.DefaultStyle())
	b := backend.NewNullBackend(4, 1)
	s.Render(b, core.Rect{})
	if got := b.Row(0); got != "    " {
		t.Errorf("Row(0) = %q", got)
	}
}
