package input

import (
	"github.com/dshills/seqterm/internal/command"
	"github.com/dshills/seqterm/internal/input/key"
	"github.com/dshills/seqterm/internal/input/mode"
	"github.com/dshills/seqterm/internal/input/vim"
)

// Resolver is the modal input state machine. It is not safe for
// concurrent use; the run loop owns it.
type Resolver struct {
	mode     mode.Mode
	pending  vim.State
	cmdline  mode.CommandLine
	bindings *Bindings
}

// NewResolver creates a resolver in Normal mode. A nil keymap disables
// bindings.
func NewResolver(bindings *Bindings) *Resolver {
	return &Resolver{bindings: bindings}
}

// Mode returns the active mode.
func (r *Resolver) Mode() mode.Mode {
	return r.mode
}

// Pending returns the partially typed Normal-mode input.
func (r *Resolver) Pending() vim.State {
	return r.pending
}

// CommandText returns the command-line buffer and cursor.
func (r *Resolver) CommandText() (text string, cursor int) {
	return r.cmdline.Text(), r.cmdline.Cursor()
}

// SetBindings replaces the keymap.
func (r *Resolver) SetBindings(b *Bindings) {
	r.bindings = b
}

// InsertImplemented reports whether Insert mode does anything with keys.
// It does not yet: text insertion is a stub.
func (r *Resolver) InsertImplemented() bool {
	return false
}

// Reset clears all pending state and returns to Normal mode.
func (r *Resolver) Reset() {
	r.pending = vim.State{}
	r.cmdline.Clear()
	r.mode = mode.Normal
}

// HandleKey feeds one key press and returns the command it resolves to,
// or nil.
func (r *Resolver) HandleKey(ev key.Event) command.Resolved {
	if r.mode == mode.Normal && !ev.Plain(key.KeyEscape) {
		if cmd, ok := r.bindings.Lookup(ev); ok {
			r.pending = vim.State{}
			return cmd
		}
	}
	return command.Resolve(r.Step(ev))
}

// Step advances the state machine by one key and returns the action it
// completes, if any. It does not consult the keymap.
func (r *Resolver) Step(ev key.Event) vim.Action {
	if ev.Plain(key.KeyEscape) {
		r.Reset()
		return nil
	}

	switch r.mode {
	case mode.Normal:
		return r.stepNormal(ev)
	case mode.Insert:
		return r.stepInsert(ev)
	case mode.Command:
		return r.stepCommand(ev)
	}
	return nil
}

func (r *Resolver) stepNormal(ev key.Event) vim.Action {
	if !ev.IsRune() || ev.IsModified() {
		return nil
	}

	c := ev.Rune
	switch {
	case c == 'i':
		r.pending = vim.State{}
		r.mode = mode.Insert
		return nil
	case c == ':' || c == ';':
		r.pending = vim.State{}
		r.cmdline.Clear()
		r.mode = mode.Command
		return nil
	case c >= '0' && c <= '9':
		r.pending = vim.PushDigit(r.pending, int(c-'0'))
		return nil
	}

	if op, ok := vim.OperatorForKey(c); ok {
		var act vim.Action
		r.pending, act = vim.SetOperator(r.pending, op)
		return act
	}
	if m, ok := vim.MotionForKey(c); ok {
		var act vim.Action
		r.pending, act = vim.Emit(r.pending, m)
		return act
	}
	return nil
}

// stepInsert is a stub: Insert mode accepts keys and ignores them.
func (r *Resolver) stepInsert(key.Event) vim.Action {
	return nil
}

func (r *Resolver) stepCommand(ev key.Event) vim.Action {
	switch {
	case ev.Plain(key.KeyEnter):
		text := r.cmdline.Text()
		r.cmdline.Clear()
		r.mode = mode.Normal
		return vim.Command{Text: text}
	case ev.Plain(key.KeyDelete):
		r.cmdline.Delete()
	case ev.Plain(key.KeyBackspace):
		if r.cmdline.IsEmpty() {
			r.cmdline.Clear()
			r.mode = mode.Normal
			return nil
		}
		r.cmdline.Backspace()
	case ev.Plain(key.KeyLeft):
		r.cmdline.MoveLeft()
	case ev.Plain(key.KeyRight):
		r.cmdline.MoveRight()
	case ev.IsChar() && !ev.IsModified():
		r.cmdline.Insert(ev.Rune)
	}
	return nil
}
