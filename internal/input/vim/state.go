package vim

import "strconv"

// MaxCount caps the count prefix. Further digits are ignored once the
// next multiplication would exceed it.
const MaxCount = 99999

// State is the pending Normal-mode input: a count prefix (0 means none)
// and an optional operator.
type State struct {
	Count    int
	Operator Operator
}

// IsEmpty reports whether nothing is pending.
func (s State) IsEmpty() bool {
	return s.Count == 0 && s.Operator == OpNone
}

// EffectiveCount is the count an action gets: 1 when no prefix was typed.
func (s State) EffectiveCount() int {
	if s.Count <= 0 {
		return 1
	}
	return s.Count
}

// PushDigit returns s with the decimal digit d appended to the count.
func PushDigit(s State, d int) State {
	if d < 0 || d > 9 {
		return s
	}
	next := s.Count*10 + d
	if next > MaxCount {
		return s
	}
	s.Count = next
	return s
}

// SetOperator returns s with op pending. Operators that need no motion
// emit right away; in that case the returned action is non-nil and the
// returned state is cleared.
func SetOperator(s State, op Operator) (State, Action) {
	s.Operator = op
	if op.Immediate() {
		return Emit(s, MotionNone)
	}
	return s, nil
}

// Emit completes the grammar with a motion. The pending operator is
// consumed, the count defaults to 1, and the returned state is empty.
func Emit(s State, m Motion) (State, Action) {
	count := s.EffectiveCount()
	if s.Operator == OpNone {
		return State{}, Move{Count: count, Motion: m}
	}
	return State{}, Operation{Count: count, Operator: s.Operator, Motion: m}
}

// Display renders pending input for the command line, for example "12d".
func (s State) Display() string {
	var out string
	if s.Count > 0 {
		out = strconv.Itoa(s.Count)
	}
	if s.Operator != OpNone {
		out += string(s.Operator.Symbol())
	}
	return out
}
