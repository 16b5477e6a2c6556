package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks event-loop performance counters.
type Metrics struct {
	// Frame timing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	lastFrameNs  atomic.Int64

	// Event processing
	eventCount   atomic.Uint64
	eventTotalNs atomic.Int64

	// Buffer reloads triggered by the file watcher
	reloadCount atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records frame render timing.
func (m *Metrics) RecordFrame(duration time.Duration) {
	m.frameCount.Add(1)
	m.frameTotalNs.Add(duration.Nanoseconds())
	m.lastFrameNs.Store(duration.Nanoseconds())
}

// RecordEvent records event processing timing.
func (m *Metrics) RecordEvent(duration time.Duration) {
	m.eventCount.Add(1)
	m.eventTotalNs.Add(duration.Nanoseconds())
}

// RecordReload records a buffer reload.
func (m *Metrics) RecordReload() {
	m.reloadCount.Add(1)
}

// Snapshot returns a point-in-time view of the counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frameCount := m.frameCount.Load()
	eventCount := m.eventCount.Load()

	var avgFrameNs int64
	if frameCount > 0 {
		avgFrameNs = m.frameTotalNs.Load() / int64(frameCount)
	}

	var avgEventNs int64
	if eventCount > 0 {
		avgEventNs = m.eventTotalNs.Load() / int64(eventCount)
	}

	return MetricsSnapshot{
		Uptime:         time.Since(m.startTime),
		FrameCount:     frameCount,
		AvgFrameTimeNs: avgFrameNs,
		LastFrameNs:    m.lastFrameNs.Load(),
		EventCount:     eventCount,
		AvgEventNs:     avgEventNs,
		ReloadCount:    m.reloadCount.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	FrameCount     uint64
	AvgFrameTimeNs int64
	LastFrameNs    int64
	EventCount     uint64
	AvgEventNs     int64
	ReloadCount    uint64
}

// AvgFPS returns the average frames per second.
func (s MetricsSnapshot) AvgFPS() float64 {
	if s.AvgFrameTimeNs == 0 {
		return 0
	}
	return 1e9 / float64(s.AvgFrameTimeNs)
}
