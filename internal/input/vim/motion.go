package vim

// Motion is the target of a cursor move or an operator.
type Motion uint8

const (
	MotionNone Motion = iota
	MotionLeft
	MotionRight
	MotionUp
	MotionDown
	MotionBeat
	MotionBar
	MotionStart
	MotionEnd
)

var motionNames = [...]string{
	MotionNone:  "none",
	MotionLeft:  "left",
	MotionRight: "right",
	MotionUp:    "up",
	MotionDown:  "down",
	MotionBeat:  "beat",
	MotionBar:   "bar",
	MotionStart: "start",
	MotionEnd:   "end",
}

func (m Motion) String() string {
	if int(m) < len(motionNames) {
		return motionNames[m]
	}
	return "unknown"
}

// MotionForKey maps the Normal-mode motion keys h, j, k and l.
// Beat, Bar, Start and End have no key.
func MotionForKey(r rune) (Motion, bool) {
	switch r {
	case 'h':
		return MotionLeft, true
	case 'j':
		return MotionDown, true
	case 'k':
		return MotionUp, true
	case 'l':
		return MotionRight, true
	}
	return MotionNone, false
}
