// Package command defines the commands the editor executes and how parsed
// input actions resolve to them.
package command

import (
	"fmt"

	"github.com/dshills/seqterm/internal/input/vim"
	"github.com/dshills/seqterm/internal/layout"
)

// Resolved is a command ready for dispatch: either an Editor command,
// handled by the application, or a Local command, forwarded to the window
// with input focus.
type Resolved interface {
	isResolved()
	fmt.Stringer
}

// EditorKind identifies an editor command.
type EditorKind uint8

const (
	EditorMove EditorKind = iota
	EditorDelete
	EditorYank
	EditorPaste
	EditorUndo
	EditorRedo
	EditorMute
	EditorSolo
	EditorBpm
	EditorSplit
	EditorQuit
)

var editorKindNames = [...]string{
	EditorMove:   "move",
	EditorDelete: "delete",
	EditorYank:   "yank",
	EditorPaste:  "paste",
	EditorUndo:   "undo",
	EditorRedo:   "redo",
	EditorMute:   "mute",
	EditorSolo:   "solo",
	EditorBpm:    "bpm",
	EditorSplit:  "split",
	EditorQuit:   "quit",
}

func (k EditorKind) String() string {
	if int(k) < len(editorKindNames) {
		return editorKindNames[k]
	}
	return "unknown"
}

// Editor is a global editor command. Count and Motion apply to the
// motion-carrying kinds, BPM to EditorBpm, Direction to EditorSplit.
type Editor struct {
	Kind      EditorKind
	Count     int
	Motion    vim.Motion
	BPM       float64
	Direction layout.Direction
}

func (Editor) isResolved() {}

func (e Editor) String() string {
	switch e.Kind {
	case EditorBpm:
		return fmt.Sprintf("bpm %g", e.BPM)
	case EditorSplit:
		return "split " + e.Direction.String()
	case EditorQuit:
		return "quit"
	}
	return fmt.Sprintf("%s %d %s", e.Kind, e.Count, e.Motion)
}

// LocalKind identifies a window-local command.
type LocalKind uint8

const (
	LocalMoveCursor LocalKind = iota
	LocalConfirm
)

// Local is a command interpreted by the focused window, never by the
// window manager.
type Local struct {
	Kind   LocalKind
	DX, DY int
}

func (Local) isResolved() {}

func (l Local) String() string {
	if l.Kind == LocalConfirm {
		return "confirm"
	}
	return fmt.Sprintf("move cursor %+d,%+d", l.DX, l.DY)
}

func Quit() Editor {
	return Editor{Kind: EditorQuit}
}

func Split(dir layout.Direction) Editor {
	return Editor{Kind: EditorSplit, Direction: dir}
}

func Bpm(value float64) Editor {
	return Editor{Kind: EditorBpm, BPM: value}
}

func MoveCursor(dx, dy int) Local {
	return Local{Kind: LocalMoveCursor, DX: dx, DY: dy}
}

func Confirm() Local {
	return Local{Kind: LocalConfirm}
}
