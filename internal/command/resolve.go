package command

import (
	"fmt"
	"sort"

	"github.com/dshills/seqterm/internal/input/vim"
	"github.com/dshills/seqterm/internal/layout"
)

// commandTable maps command-line text to commands. Matching is exact.
var commandTable = map[string]Editor{
	"q":    Quit(),
	"quit": Quit(),
}

// operatorTable lists the operators that have a resolution. The others
// parse but resolve to nothing.
var operatorTable = map[vim.Operator]EditorKind{
	vim.OpDelete: EditorDelete,
	vim.OpYank:   EditorYank,
	vim.OpMute:   EditorMute,
}

// Resolve turns a parsed action into a command, or nil when the action has
// no resolution. Bare moves, Paste, Undo, Redo and Solo operations, and
// unknown command text all resolve to nil.
func Resolve(action vim.Action) Resolved {
	switch a := action.(type) {
	case vim.Move:
		return nil
	case vim.Operation:
		kind, ok := operatorTable[a.Operator]
		if !ok {
			return nil
		}
		return Editor{Kind: kind, Count: a.Count, Motion: a.Motion}
	case vim.Command:
		if cmd, ok := commandTable[a.Text]; ok {
			return cmd
		}
	}
	return nil
}

// bindingTable maps keymap binding names to commands.
var bindingTable = map[string]Resolved{
	"quit":             Quit(),
	"split.horizontal": Split(layout.Horizontal),
	"split.vertical":   Split(layout.Vertical),
	"cursor.left":      MoveCursor(-1, 0),
	"cursor.right":     MoveCursor(1, 0),
	"cursor.up":        MoveCursor(0, -1),
	"cursor.down":      MoveCursor(0, 1),
	"confirm":          Confirm(),
}

// Named returns the command bound to a keymap binding name.
func Named(name string) (Resolved, error) {
	cmd, ok := bindingTable[name]
	if !ok {
		return nil, fmt.Errorf("unknown binding %q", name)
	}
	return cmd, nil
}

// Names lists every valid binding name, sorted.
func Names() []string {
	names := make([]string, 0, len(bindingTable))
	for name := range bindingTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
