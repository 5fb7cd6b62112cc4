package key

import "testing"

func TestEventIsModified(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"plain rune", NewRuneEvent('a', ModNone), false},
		{"shifted rune", NewRuneEvent('A', ModShift), false},
		{"ctrl rune", NewRuneEvent('s', ModCtrl), true},
		{"plain enter", NewSpecialEvent(KeyEnter, ModNone), false},
		{"shift up", NewSpecialEvent(KeyUp, ModShift), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.IsModified(); got != tt.want {
				t.Errorf("IsModified() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventIsChar(t *testing.T) {
	if !NewRuneEvent('q', ModNone).IsChar() {
		t.Error("IsChar() = false for 'q'")
	}
	if NewRuneEvent('\x01', ModNone).IsChar() {
		t.Error("IsChar() = true for control rune")
	}
	if (Event{Key: KeyRune}).IsChar() {
		t.Error("IsChar() = true for zero rune")
	}
}

func TestEventPlain(t *testing.T) {
	if !NewSpecialEvent(KeyEscape, ModNone).Plain(KeyEscape) {
		t.Error("Plain(KeyEscape) = false")
	}
	if NewSpecialEvent(KeyEscape, ModAlt).Plain(KeyEscape) {
		t.Error("Plain(KeyEscape) = true with Alt held")
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyBackspace, "Backspace"},
		{KeyLeft, "Left"},
		{KeyF12, "F12"},
		{KeyRune, "Rune"},
		{Key(999), "Key(999)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key.String() = %q, want %q", got, tt.want)
		}
	}
}
