package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec     string
		wantKey  Key
		wantRune rune
		wantMod  Modifier
	}{
		{"a", KeyRune, 'a', ModNone},
		{"A", KeyRune, 'A', ModShift},
		{":", KeyRune, ':', ModNone},
		{"Enter", KeyEnter, 0, ModNone},
		{"esc", KeyEscape, 0, ModNone},
		{"<CR>", KeyEnter, 0, ModNone},
		{"<Esc>", KeyEscape, 0, ModNone},
		{"<BS>", KeyBackspace, 0, ModNone},
		{"<C-s>", KeyRune, 's', ModCtrl},
		{"<C-S>", KeyRune, 's', ModCtrl},
		{"<S-Up>", KeyUp, 0, ModShift},
		{"<A-Left>", KeyLeft, 0, ModAlt},
		{"Ctrl+V", KeyRune, 'v', ModCtrl},
		{"Ctrl+Shift+Right", KeyRight, 0, ModCtrl | ModShift},
		{"<Space>", KeyRune, ' ', ModNone},
		{"+", KeyRune, '+', ModNone},
		{"F5", KeyF5, 0, ModNone},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			ev, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if ev.Key != tt.wantKey {
				t.Errorf("Parse(%q) key = %v, want %v", tt.spec, ev.Key, tt.wantKey)
			}
			if ev.Rune != tt.wantRune {
				t.Errorf("Parse(%q) rune = %q, want %q", tt.spec, ev.Rune, tt.wantRune)
			}
			if ev.Modifiers != tt.wantMod {
				t.Errorf("Parse(%q) modifiers = %v, want %v", tt.spec, ev.Modifiers, tt.wantMod)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"<X-a>", ErrInvalidSpec},
		{"Hyper+a", ErrInvalidSpec},
		{"notakey", ErrInvalidSpec},
		{"<C->", ErrInvalidSpec},
	}

	for _, tt := range tests {
		_, err := Parse(tt.spec)
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestEventStringRoundTrip(t *testing.T) {
	specs := []string{"a", "<C-s>", "<CR>", "<Esc>", "<S-Up>", "<Space>", "<A-x>", "<Del>"}
	for _, spec := range specs {
		ev := MustParse(spec)
		back, err := Parse(ev.String())
		if err != nil {
			t.Errorf("Parse(%q) error = %v", ev.String(), err)
			continue
		}
		if !back.Equals(ev) {
			t.Errorf("Parse(%q) = %+v, want %+v", ev.String(), back, ev)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse(\"\") did not panic")
		}
	}()
	MustParse("")
}
