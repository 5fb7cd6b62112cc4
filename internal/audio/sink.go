package audio

import (
	"math"
	"sync/atomic"
)

// Sink consumes sample blocks.
type Sink interface {
	Write(block []float64) error
}

// DiscardSink counts samples and drops them.
type DiscardSink struct {
	samples atomic.Int64
	peak    atomic.Uint64 // math.Float64bits of the largest |sample|
}

func (d *DiscardSink) Write(block []float64) error {
	d.samples.Add(int64(len(block)))
	for _, v := range block {
		d.observe(v)
	}
	return nil
}

// Samples returns the number of samples written.
func (d *DiscardSink) Samples() int64 {
	return d.samples.Load()
}

// Peak returns the largest absolute sample written.
func (d *DiscardSink) Peak() float64 {
	return math.Float64frombits(d.peak.Load())
}

func (d *DiscardSink) observe(v float64) {
	if v < 0 {
		v = -v
	}
	for {
		old := d.peak.Load()
		if v <= math.Float64frombits(old) {
			return
		}
		if d.peak.CompareAndSwap(old, math.Float64bits(v)) {
			return
		}
	}
}
