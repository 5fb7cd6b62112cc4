// Package statusline renders the bottom command line: the mode and any
// pending count/operator in Normal mode, the ':' buffer in Command mode.
package statusline

import (
	"github.com/dshills/seqterm/internal/input/mode"
	"github.com/dshills/seqterm/internal/renderer/core"
	"github.com/dshills/seqterm/internal/renderer/draw"
)

// StatusLine is the one-row line at the bottom of the screen.
type StatusLine struct {
	mode    mode.Mode
	pending string

	// Command line state
	commandBuffer string
	commandCursor int

	message     string
	messageType MessageType

	style      core.Style
	modeStyles map[mode.Mode]core.Style
}

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// New creates a status line drawn in style.
func New(style core.Style) *StatusLine {
	return &StatusLine{
		style:      style,
		modeStyles: defaultModeStyles(style),
	}
}

func defaultModeStyles(base core.Style) map[mode.Mode]core.Style {
	return map[mode.Mode]core.Style{
		mode.Normal: base.Bold(),
		mode.Insert: base.Bold().WithForeground(core.ColorGreen),
	}
}

// SetStyle changes the base style, e.g. after a theme reload.
func (s *StatusLine) SetStyle(style core.Style) {
	s.style = style
	s.modeStyles = defaultModeStyles(style)
}

// SetMode updates the displayed mode.
func (s *StatusLine) SetMode(m mode.Mode) {
	s.mode = m
}

// SetPending updates the pending input shown on the right, e.g. "12d".
func (s *StatusLine) SetPending(pending string) {
	s.pending = pending
}

// SetCommandBuffer updates the command being typed. cursor is a rune
// index into buffer.
func (s *StatusLine) SetCommandBuffer(buffer string, cursor int) {
	s.commandBuffer = buffer
	s.commandCursor = cursor
}

// SetMessage displays a status message in place of the mode line.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message.
func (s *StatusLine) Message() (string, MessageType) {
	return s.message, s.messageType
}

// Render draws the line into the first row of area.
func (s *StatusLine) Render(surf draw.Surface, area core.Rect) {
	if area.IsEmpty() {
		return
	}
	row := core.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: 1}
	draw.Fill(surf, row, ' ', s.style)

	switch {
	case s.mode == mode.Command:
		s.renderCommandLine(surf, row)
	case s.message != "":
		s.renderMessage(surf, row)
	default:
		s.renderModeLine(surf, row)
	}
}

func (s *StatusLine) renderModeLine(surf draw.Surface, row core.Rect) {
	modeStyle, ok := s.modeStyles[s.mode]
	if !ok {
		modeStyle = s.style
	}
	col := draw.Text(surf, row.X, row.Y, row.Width, "-- "+s.mode.DisplayName()+" --", modeStyle)

	if s.pending == "" {
		return
	}
	w := core.StringWidth(s.pending)
	x := row.Right() - w - 1
	if x <= row.X+col {
		return
	}
	draw.Text(surf, x, row.Y, w, s.pending, s.style)
}

// renderCommandLine draws ':' and the buffer, with the cursor cell
// reversed. At the end of the buffer the cursor is a reversed space.
func (s *StatusLine) renderCommandLine(surf draw.Surface, row core.Rect) {
	draw.Text(surf, row.X, row.Y, row.Width, ":", s.style)

	cursorStyle := s.style.Reverse()
	col := 1
	i := 0
	for _, r := range s.commandBuffer {
		style := s.style
		if i == s.commandCursor {
			style = cursorStyle
		}
		w := draw.Text(surf, row.X+col, row.Y, row.Width-col, string(r), style)
		if w == 0 {
			return
		}
		col += w
		i++
	}
	if s.commandCursor >= i && col < row.Width {
		draw.Text(surf, row.X+col, row.Y, 1, " ", cursorStyle)
	}
}

func (s *StatusLine) renderMessage(surf draw.Surface, row core.Rect) {
	var msgStyle core.Style
	switch s.messageType {
	case MessageError:
		msgStyle = s.style.WithForeground(core.ColorRed).Bold()
	case MessageWarning:
		msgStyle = s.style.WithForeground(core.ColorYellow)
	default:
		msgStyle = s.style
	}
	draw.Text(surf, row.X, row.Y, row.Width, s.message, msgStyle)
}
