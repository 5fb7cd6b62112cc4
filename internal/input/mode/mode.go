package mode

// Mode is the top-level input mode. Exactly one is active at a time.
type Mode uint8

const (
	Normal Mode = iota
	Insert
	Command
)

// String returns the mode identifier used in config and logs.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case Command:
		return "command"
	}
	return "unknown"
}

// DisplayName returns the name shown on the command line.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Command:
		return "COMMAND"
	}
	return "?"
}
