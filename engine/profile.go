package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/frameclock/status"
)

// ProfileSink receives frame-boundary notifications from the keeper:
// EndMeasure closes the previous frame interval, BeginMeasure opens the
// next. Both are invoked once per AdvanceFrame on the advance thread.
// Failures are ignored by the keeper.
type ProfileSink interface {
	BeginMeasure()
	EndMeasure()
}

// NopSink discards all frame measurements
type NopSink struct{}

func (NopSink) BeginMeasure() {}
func (NopSink) EndMeasure()   {}

// StatusSink records frame wall durations into a status registry.
// Metric pointers are cached at construction; the advance loop writes
// directly to atomics.
type StatusSink struct {
	provider TimeProvider

	// Advance-thread only
	measuring  bool
	frameStart time.Time

	statFrames *atomic.Int64
	statLastMS *status.AtomicFloat
	statMaxMS  *status.AtomicFloat
}

// NewStatusSink creates a sink publishing frame metrics under frame.*
func NewStatusSink(reg *status.Registry, provider TimeProvider) *StatusSink {
	return &StatusSink{
		provider:   provider,
		statFrames: reg.Ints.Get("frame.count"),
		statLastMS: reg.Floats.Get("frame.wall_ms"),
		statMaxMS:  reg.Floats.Get("frame.wall_max_ms"),
	}
}

// BeginMeasure marks the start of a frame interval
func (s *StatusSink) BeginMeasure() {
	s.frameStart = s.provider.Now()
	s.measuring = true
}

// EndMeasure closes the current frame interval and publishes its wall
// duration. A close with no open interval (the very first frame) is a no-op.
func (s *StatusSink) EndMeasure() {
	if !s.measuring {
		return
	}
	s.measuring = false

	s.statFrames.Add(1)
	ms := float64(s.provider.Now().Sub(s.frameStart)) / float64(time.Millisecond)
	s.statLastMS.Set(ms)
	if ms > s.statMaxMS.Get() {
		s.statMaxMS.Set(ms)
	}
}
