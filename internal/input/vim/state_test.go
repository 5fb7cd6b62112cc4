package vim

import "testing"

func TestPushDigitAccumulates(t *testing.T) {
	var s State
	for _, d := range []int{1, 2} {
		s = PushDigit(s, d)
	}
	if s.Count != 12 {
		t.Errorf("Count = %d, want 12", s.Count)
	}

	s = PushDigit(s, 0)
	if s.Count != 120 {
		t.Errorf("Count = %d, want 120", s.Count)
	}
}

func TestPushDigitLeadingZero(t *testing.T) {
	s := PushDigit(State{}, 0)
	if s.Count != 0 {
		t.Errorf("Count = %d, want 0", s.Count)
	}
	if got := s.EffectiveCount(); got != 1 {
		t.Errorf("EffectiveCount() = %d, want 1", got)
	}
}

func TestPushDigitSaturates(t *testing.T) {
	var s State
	for i := 0; i < 40; i++ {
		s = PushDigit(s, 9)
	}
	if s.Count != MaxCount {
		t.Errorf("Count = %d, want %d", s.Count, MaxCount)
	}
	if s.Count < 0 {
		t.Fatal("count overflowed")
	}
}

func TestPushDigitRejectsNonDigit(t *testing.T) {
	s := PushDigit(State{Count: 4}, 12)
	if s.Count != 4 {
		t.Errorf("Count = %d, want 4", s.Count)
	}
}

func TestEmit(t *testing.T) {
	tests := []struct {
		name  string
		state State
		m     Motion
		want  Action
	}{
		{"bare motion", State{}, MotionDown, Move{Count: 1, Motion: MotionDown}},
		{"counted motion", State{Count: 12}, MotionDown, Move{Count: 12, Motion: MotionDown}},
		{"operator", State{Count: 3, Operator: OpDelete}, MotionDown,
			Operation{Count: 3, Operator: OpDelete, Motion: MotionDown}},
		{"operator without count", State{Operator: OpYank}, MotionLeft,
			Operation{Count: 1, Operator: OpYank, Motion: MotionLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, got := Emit(tt.state, tt.m)
			if got != tt.want {
				t.Errorf("Emit() action = %v, want %v", got, tt.want)
			}
			if !next.IsEmpty() {
				t.Errorf("Emit() next state = %+v, want empty", next)
			}
		})
	}
}

func TestOperatorIsOneShot(t *testing.T) {
	s := PushDigit(State{}, 3)
	s, act := SetOperator(s, OpDelete)
	if act != nil {
		t.Fatalf("SetOperator(OpDelete) action = %v, want nil", act)
	}

	s, act = Emit(s, MotionDown)
	want := Operation{Count: 3, Operator: OpDelete, Motion: MotionDown}
	if act != want {
		t.Errorf("first Emit() = %v, want %v", act, want)
	}

	_, act = Emit(s, MotionDown)
	if _, ok := act.(Move); !ok {
		t.Errorf("second Emit() = %v, want a Move", act)
	}
}

func TestSetOperatorUndoEmitsImmediately(t *testing.T) {
	s, act := SetOperator(State{Count: 2}, OpUndo)
	want := Operation{Count: 2, Operator: OpUndo, Motion: MotionNone}
	if act != want {
		t.Errorf("SetOperator(OpUndo) action = %v, want %v", act, want)
	}
	if !s.IsEmpty() {
		t.Errorf("state after undo = %+v, want empty", s)
	}
}

func TestStateDisplay(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{State{}, ""},
		{State{Count: 12}, "12"},
		{State{Count: 12, Operator: OpDelete}, "12d"},
		{State{Operator: OpYank}, "y"},
		{State{Operator: OpMute}, "m"},
		{State{Operator: OpSolo}, "s"},
		{State{Count: 4, Operator: OpRedo}, "4?"},
	}
	for _, tt := range tests {
		if got := tt.state.Display(); got != tt.want {
			t.Errorf("Display(%+v) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestKeyTables(t *testing.T) {
	motions := map[rune]Motion{'h': MotionLeft, 'j': MotionDown, 'k': MotionUp, 'l': MotionRight}
	for r, want := range motions {
		if got, ok := MotionForKey(r); !ok || got != want {
			t.Errorf("MotionForKey(%q) = %v, %v, want %v", r, got, ok, want)
		}
	}
	if _, ok := MotionForKey('w'); ok {
		t.Error("MotionForKey('w') ok = true")
	}

	ops := map[rune]Operator{'d': OpDelete, 'y': OpYank, 'u': OpUndo, 'm': OpMute, 's': OpSolo}
	for r, want := range ops {
		if got, ok := OperatorForKey(r); !ok || got != want {
			t.Errorf("OperatorForKey(%q) = %v, %v, want %v", r, got, ok, want)
		}
	}
	if _, ok := OperatorForKey('p'); ok {
		t.Error("OperatorForKey('p') ok = true")
	}
}
