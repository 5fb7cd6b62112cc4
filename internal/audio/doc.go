// Package audio generates the sample stream behind the sequencer.
//
// A Source yields one sample per call. Oscillators (Saw, Sine) are
// Sources; a Metronome shapes a Source into beat clicks at the current
// tempo. A Stream runs a Source on its own goroutine and hands fixed-size
// blocks to the consumer through a bounded channel, so a slow consumer
// stalls production instead of growing memory. A Player drains a Stream
// into a Sink at real-time pace.
//
// Samples are float64 in [-1, 1]. Device output is not implemented; the
// only Sink is DiscardSink.
package audio
