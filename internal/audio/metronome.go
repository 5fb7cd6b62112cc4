package audio

// BeatsPerBar sets where the metronome accents.
const BeatsPerBar = 4

// Metronome turns a tone into clicks on every beat. The first beat of each
// bar is at full level and the others at half; each click decays linearly
// over 20ms.
type Metronome struct {
	sampleRate int
	bpm        float64
	clickLen   int
	pos        float64 // samples since the start of the current beat
	beat       int
}

// NewMetronome creates a metronome at bpm.
func NewMetronome(sampleRate int, bpm float64) *Metronome {
	return &Metronome{
		sampleRate: sampleRate,
		bpm:        bpm,
		clickLen:   max(sampleRate/50, 1),
	}
}

// SetBPM changes the tempo. The current beat keeps its position, so the
// next beat arrives at the new tempo. Non-positive values are ignored.
func (m *Metronome) SetBPM(bpm float64) {
	if bpm > 0 {
		m.bpm = bpm
	}
}

// BPM returns the tempo.
func (m *Metronome) BPM() float64 {
	return m.bpm
}

// Beat returns the number of beats started so far, counting from 0.
func (m *Metronome) Beat() int {
	return m.beat
}

func (m *Metronome) beatLength() float64 {
	return float64(m.sampleRate) * 60 / m.bpm
}

// Envelope returns the level for the next sample and advances one sample.
func (m *Metronome) Envelope() float64 {
	if m.pos >= m.beatLength() {
		m.pos -= m.beatLength()
		m.beat++
	}

	level := 0.0
	if i := int(m.pos); i < m.clickLen {
		level = 1 - float64(i)/float64(m.clickLen)
		if m.beat%BeatsPerBar != 0 {
			level /= 2
		}
	}
	m.pos++
	return level
}

// Apply shapes src with the metronome envelope.
func (m *Metronome) Apply(src Source) Source {
	return func() float64 {
		return src() * m.Envelope()
	}
}
