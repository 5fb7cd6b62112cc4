package mode

import "testing"

func typeText(c *CommandLine, s string) {
	for _, r := range s {
		c.Insert(r)
	}
}

func TestCommandLineInsert(t *testing.T) {
	var c CommandLine
	typeText(&c, "quit")
	if c.Text() != "quit" {
		t.Errorf("Text() = %q, want %q", c.Text(), "quit")
	}
	if c.Cursor() != 4 {
		t.Errorf("Cursor() = %d, want 4", c.Cursor())
	}
}

func TestCommandLineInsertMidBuffer(t *testing.T) {
	var c CommandLine
	typeText(&c, "qit")
	c.MoveLeft()
	c.MoveLeft()
	c.Insert('u')
	if c.Text() != "quit" {
		t.Errorf("Text() = %q, want %q", c.Text(), "quit")
	}
	if c.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", c.Cursor())
	}
}

func TestCommandLineCursorClamps(t *testing.T) {
	var c CommandLine
	typeText(&c, "ab")
	for i := 0; i < 5; i++ {
		c.MoveRight()
	}
	if c.Cursor() != 2 {
		t.Errorf("Cursor() after MoveRight = %d, want 2", c.Cursor())
	}
	for i := 0; i < 5; i++ {
		c.MoveLeft()
	}
	if c.Cursor() != 0 {
		t.Errorf("Cursor() after MoveLeft = %d, want 0", c.Cursor())
	}
}

func TestCommandLineDelete(t *testing.T) {
	var c CommandLine
	typeText(&c, "quitx")
	if c.Delete() {
		t.Error("Delete() at end = true, want false")
	}
	c.MoveLeft()
	if !c.Delete() {
		t.Error("Delete() on 'x' = false, want true")
	}
	if c.Text() != "quit" || c.Cursor() != 4 {
		t.Errorf("got %q cursor %d, want %q cursor 4", c.Text(), c.Cursor(), "quit")
	}
}

func TestCommandLineBackspace(t *testing.T) {
	var c CommandLine
	typeText(&c, "ab")
	c.MoveLeft()
	c.MoveLeft()
	if c.Backspace() {
		t.Error("Backspace() at start = true, want false")
	}
	c.MoveRight()
	if !c.Backspace() {
		t.Error("Backspace() = false, want true")
	}
	if c.Text() != "b" || c.Cursor() != 0 {
		t.Errorf("got %q cursor %d, want %q cursor 0", c.Text(), c.Cursor(), "b")
	}
}

func TestCommandLineClear(t *testing.T) {
	var c CommandLine
	typeText(&c, "hello")
	c.Clear()
	if !c.IsEmpty() || c.Cursor() != 0 {
		t.Errorf("after Clear() got %q cursor %d", c.Text(), c.Cursor())
	}
}

func TestModeNames(t *testing.T) {
	tests := []struct {
		m       Mode
		name    string
		display string
	}{
		{Normal, "normal", "NORMAL"},
		{Insert, "insert", "INSERT"},
		{Command, "command", "COMMAND"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.m.DisplayName(); got != tt.display {
			t.Errorf("DisplayName() = %q, want %q", got, tt.display)
		}
	}
}
