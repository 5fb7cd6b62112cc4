package audio

import (
	"context"
	"errors"
	"time"
)

// DefaultBlockSize is the number of samples per block.
const DefaultBlockSize = 512

// DefaultBuffer is the number of blocks the stream buffers.
const DefaultBuffer = 8

// Stream produces blocks of samples on its own goroutine.
type Stream struct {
	src       Source
	metronome *Metronome
	blockSize int
	blocks    chan []float64
	tempo     chan float64
}

// NewStream creates a stream over src. metronome may be nil; when set,
// src is shaped by it and tempo changes go to it.
func NewStream(src Source, metronome *Metronome, blockSize, buffer int) *Stream {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if metronome != nil {
		src = metronome.Apply(src)
	}
	return &Stream{
		src:       src,
		metronome: metronome,
		blockSize: blockSize,
		blocks:    make(chan []float64, buffer),
		tempo:     make(chan float64, 1),
	}
}

// Blocks returns the block channel. It is closed when Run returns.
func (s *Stream) Blocks() <-chan []float64 {
	return s.blocks
}

// BlockSize returns the samples per block.
func (s *Stream) BlockSize() int {
	return s.blockSize
}

// SetTempo asks the producer to change tempo before its next block. Only
// the latest pending value is kept. It never blocks.
func (s *Stream) SetTempo(bpm float64) {
	for {
		select {
		case s.tempo <- bpm:
			return
		default:
		}
		select {
		case <-s.tempo:
		default:
		}
	}
}

// Run produces blocks until ctx is done, then closes the block channel.
// It returns nil on cancellation.
func (s *Stream) Run(ctx context.Context) error {
	defer close(s.blocks)
	for {
		select {
		case bpm := <-s.tempo:
			if s.metronome != nil {
				s.metronome.SetBPM(bpm)
			}
		default:
		}

		block := make([]float64, s.blockSize)
		for i := range block {
			block[i] = s.src()
		}

		select {
		case s.blocks <- block:
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		}
	}
}

// blockDuration is the playback time of one block.
func blockDuration(blockSize, sampleRate int) time.Duration {
	return time.Duration(blockSize) * time.Second / time.Duration(sampleRate)
}
