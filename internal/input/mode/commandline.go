package mode

// CommandLine is the editable text typed after ':'. The cursor is a rune
// index and always satisfies 0 <= cursor <= len(buffer).
type CommandLine struct {
	buffer []rune
	cursor int
}

// Text returns the buffer contents.
func (c *CommandLine) Text() string {
	return string(c.buffer)
}

// Cursor returns the cursor position in runes.
func (c *CommandLine) Cursor() int {
	return c.cursor
}

// Len returns the buffer length in runes.
func (c *CommandLine) Len() int {
	return len(c.buffer)
}

// IsEmpty reports whether the buffer holds no text.
func (c *CommandLine) IsEmpty() bool {
	return len(c.buffer) == 0
}

// Clear empties the buffer and resets the cursor.
func (c *CommandLine) Clear() {
	c.buffer = c.buffer[:0]
	c.cursor = 0
}

// Insert puts r at the cursor and advances it.
func (c *CommandLine) Insert(r rune) {
	if c.cursor >= len(c.buffer) {
		c.buffer = append(c.buffer, r)
	} else {
		c.buffer = append(c.buffer[:c.cursor+1], c.buffer[c.cursor:]...)
		c.buffer[c.cursor] = r
	}
	c.cursor++
}

// Delete removes the rune under the cursor. It reports whether anything
// was removed.
func (c *CommandLine) Delete() bool {
	if c.cursor >= len(c.buffer) {
		return false
	}
	c.buffer = append(c.buffer[:c.cursor], c.buffer[c.cursor+1:]...)
	return true
}

// Backspace removes the rune before the cursor. It reports whether
// anything was removed.
func (c *CommandLine) Backspace() bool {
	if c.cursor == 0 {
		return false
	}
	c.buffer = append(c.buffer[:c.cursor-1], c.buffer[c.cursor:]...)
	c.cursor--
	return true
}

// MoveLeft moves the cursor one rune left, stopping at 0.
func (c *CommandLine) MoveLeft() {
	if c.cursor > 0 {
		c.cursor--
	}
}

// MoveRight moves the cursor one rune right, stopping at the end.
func (c *CommandLine) MoveRight() {
	if c.cursor < len(c.buffer) {
		c.cursor++
	}
}
