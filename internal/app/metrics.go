package app

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"
)

// Metrics counts run loop activity. Counters are atomic so a snapshot can
// be taken from another goroutine, e.g. a signal handler.
type Metrics struct {
	// Render passes
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64

	// Terminal events handled, and polls that timed out
	eventCount atomic.Uint64
	idlePolls  atomic.Uint64

	// Resolved commands by class
	editorCommands atomic.Uint64
	localCommands  atomic.Uint64

	reloads      atomic.Uint64
	reloadErrors atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{startTime: time.Now()}
	m.frameMinNs.Store(math.MaxInt64)
	return m
}

// RecordFrame records one render pass.
func (m *Metrics) RecordFrame(d time.Duration) {
	ns := d.Nanoseconds()
	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)

	for {
		old := m.frameMinNs.Load()
		if ns >= old || m.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordEvent records a handled terminal event.
func (m *Metrics) RecordEvent() {
	m.eventCount.Add(1)
}

// RecordIdle records a poll that returned no event.
func (m *Metrics) RecordIdle() {
	m.idlePolls.Add(1)
}

// RecordEditorCommand records a dispatched editor command.
func (m *Metrics) RecordEditorCommand() {
	m.editorCommands.Add(1)
}

// RecordLocalCommand records a command routed to a window.
func (m *Metrics) RecordLocalCommand() {
	m.localCommands.Add(1)
}

// RecordReload records a config reload attempt.
func (m *Metrics) RecordReload(err error) {
	m.reloads.Add(1)
	if err != nil {
		m.reloadErrors.Add(1)
	}
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frames := m.frameCount.Load()

	var avg int64
	if frames > 0 {
		avg = m.frameTotalNs.Load() / int64(frames)
	}
	minNs := m.frameMinNs.Load()
	if minNs == math.MaxInt64 {
		minNs = 0
	}

	return MetricsSnapshot{
		Uptime:         time.Since(m.startTime),
		FrameCount:     frames,
		AvgFrameTime:   time.Duration(avg),
		MinFrameTime:   time.Duration(minNs),
		MaxFrameTime:   time.Duration(m.frameMaxNs.Load()),
		EventCount:     m.eventCount.Load(),
		IdlePolls:      m.idlePolls.Load(),
		EditorCommands: m.editorCommands.Load(),
		LocalCommands:  m.localCommands.Load(),
		Reloads:        m.reloads.Load(),
		ReloadErrors:   m.reloadErrors.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	FrameCount     uint64
	AvgFrameTime   time.Duration
	MinFrameTime   time.Duration
	MaxFrameTime   time.Duration
	EventCount     uint64
	IdlePolls      uint64
	EditorCommands uint64
	LocalCommands  uint64
	Reloads        uint64
	ReloadErrors   uint64
}

// String formats the snapshot for the log.
func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("uptime=%s frames=%d avg=%s max=%s events=%d idle=%d editor=%d local=%d reloads=%d/%d",
		s.Uptime.Round(time.Millisecond), s.FrameCount, s.AvgFrameTime, s.MaxFrameTime,
		s.EventCount, s.IdlePolls, s.EditorCommands, s.LocalCommands,
		s.Reloads-s.ReloadErrors, s.Reloads)
}
