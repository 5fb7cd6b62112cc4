package audio

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// PlayerConfig configures a Player.
type PlayerConfig struct {
	SampleRate int
	Waveform   string
	Frequency  float64
	BPM        float64
	BlockSize  int
	Sink       Sink
}

// Player drains a metronome stream into a sink at real-time pace.
type Player struct {
	stream *Stream
	sink   Sink
	cancel context.CancelFunc
	group  *errgroup.Group
	pace   time.Duration
}

// StartPlayer starts producing and draining. Stop must be called to
// release the goroutines.
func StartPlayer(ctx context.Context, cfg PlayerConfig) (*Player, error) {
	osc, err := ForWaveform(cfg.Waveform, cfg.Frequency, cfg.SampleRate)
	if err != nil {
		return nil, err
	}
	sink := cfg.Sink
	if sink == nil {
		sink = &DiscardSink{}
	}

	stream := NewStream(osc, NewMetronome(cfg.SampleRate, cfg.BPM), cfg.BlockSize, DefaultBuffer)
	ctx, cancel := context.WithCancel(ctx)
	group, ctx := errgroup.WithContext(ctx)

	p := &Player{
		stream: stream,
		sink:   sink,
		cancel: cancel,
		group:  group,
		pace:   blockDuration(stream.BlockSize(), cfg.SampleRate),
	}
	group.Go(func() error { return stream.Run(ctx) })
	group.Go(func() error { return p.drain(ctx) })
	return p, nil
}

// SetTempo forwards a tempo change to the producer.
func (p *Player) SetTempo(bpm float64) {
	p.stream.SetTempo(bpm)
}

// Sink returns the sink blocks are written to.
func (p *Player) Sink() Sink {
	return p.sink
}

// Stop cancels production and waits for both goroutines. It returns the
// first sink error, if any.
func (p *Player) Stop() error {
	p.cancel()
	return p.group.Wait()
}

func (p *Player) drain(ctx context.Context) error {
	ticker := time.NewTicker(p.pace)
	defer ticker.Stop()

	for block := range p.stream.Blocks() {
		if err := p.sink.Write(block); err != nil {
			return fmt.Errorf("audio sink: %w", err)
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}
