package vim

// Operator is an action waiting for a motion.
type Operator uint8

const (
	OpNone Operator = iota
	OpDelete
	OpYank
	OpPaste
	OpUndo
	OpRedo
	OpMute
	OpSolo
)

var operatorNames = [...]string{
	OpNone:   "none",
	OpDelete: "delete",
	OpYank:   "yank",
	OpPaste:  "paste",
	OpUndo:   "undo",
	OpRedo:   "redo",
	OpMute:   "mute",
	OpSolo:   "solo",
}

func (op Operator) String() string {
	if int(op) < len(operatorNames) {
		return operatorNames[op]
	}
	return "unknown"
}

// Symbol is the single letter shown for a pending operator. Operators
// without a display letter show '?'.
func (op Operator) Symbol() rune {
	switch op {
	case OpDelete:
		return 'd'
	case OpYank:
		return 'y'
	case OpPaste:
		return 'p'
	case OpMute:
		return 'm'
	case OpSolo:
		return 's'
	case OpUndo:
		return 'u'
	}
	return '?'
}

// OperatorForKey maps the Normal-mode operator keys.
func OperatorForKey(r rune) (Operator, bool) {
	switch r {
	case 'd':
		return OpDelete, true
	case 'y':
		return OpYank, true
	case 'u':
		return OpUndo, true
	case 'm':
		return OpMute, true
	case 's':
		return OpSolo, true
	}
	return OpNone, false
}

// Immediate reports whether op completes without a motion.
func (op Operator) Immediate() bool {
	return op == OpUndo
}
