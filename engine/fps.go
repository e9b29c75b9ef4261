package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/frameclock/constant"
)

// fpsSampler aggregates frame counts over rolling one-second windows.
// The published value is always the last closed window's count, never a
// live instantaneous rate, so it is stale by up to one window.
type fpsSampler struct {
	window time.Duration

	// Advance-thread only
	windowStart time.Duration
	accum       int64

	published atomic.Int64
}

func newFPSSampler() *fpsSampler {
	return &fpsSampler{window: constant.FPSSampleWindow}
}

// reset rebases the sampling window at mark, discarding any partial count
func (s *fpsSampler) reset(mark time.Duration) {
	s.windowStart = mark
	s.accum = 0
}

// feed records one frame at the given elapsed mark. When the window spans
// at least one sample interval the accumulated count is published and the
// boundary-crossing frame opens the next window.
func (s *fpsSampler) feed(mark time.Duration) {
	if mark-s.windowStart >= s.window {
		s.published.Store(s.accum)
		s.reset(mark)
	}
	s.accum++
}

// fps returns the last closed window's frame count
func (s *fpsSampler) fps() int64 {
	return s.published.Load()
}
