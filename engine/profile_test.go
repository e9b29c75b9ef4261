package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/frameclock/status"
)

func TestStatusSinkMeasuresFrames(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	reg := status.NewRegistry()
	sink := NewStatusSink(reg, mock)

	// First close has no open interval and must be a no-op
	sink.EndMeasure()
	if n := reg.Ints.Get("frame.count").Load(); n != 0 {
		t.Errorf("Expected no frames counted before first begin, got %d", n)
	}

	sink.BeginMeasure()
	mock.Advance(16 * time.Millisecond)
	sink.EndMeasure()

	if n := reg.Ints.Get("frame.count").Load(); n != 1 {
		t.Errorf("Expected 1 frame counted, got %d", n)
	}
	if ms := reg.Floats.Get("frame.wall_ms").Get(); ms != 16.0 {
		t.Errorf("Expected 16ms wall duration, got %v", ms)
	}

	// Max tracks the slowest frame
	sink.BeginMeasure()
	mock.Advance(40 * time.Millisecond)
	sink.EndMeasure()
	sink.BeginMeasure()
	mock.Advance(5 * time.Millisecond)
	sink.EndMeasure()

	if ms := reg.Floats.Get("frame.wall_max_ms").Get(); ms != 40.0 {
		t.Errorf("Expected 40ms max wall duration, got %v", ms)
	}
	if ms := reg.Floats.Get("frame.wall_ms").Get(); ms != 5.0 {
		t.Errorf("Expected 5ms last wall duration, got %v", ms)
	}
	if n := reg.Ints.Get("frame.count").Load(); n != 3 {
		t.Errorf("Expected 3 frames counted, got %d", n)
	}
}

func TestStatusSinkDrivenByKeeper(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	reg := status.NewRegistry()

	tk := NewTimeKeeper(mock)
	tk.SetProfileSink(NewStatusSink(reg, mock))

	for i := 0; i < 10; i++ {
		tk.AdvanceFrame(false)
		mock.Advance(16 * time.Millisecond)
	}

	// The sink closes an interval on every advance after the first
	if n := reg.Ints.Get("frame.count").Load(); n != 9 {
		t.Errorf("Expected 9 closed frame intervals for 10 advances, got %d", n)
	}
	if ms := reg.Floats.Get("frame.wall_ms").Get(); ms != 16.0 {
		t.Errorf("Expected 16ms measured frame, got %v", ms)
	}
}

func TestProfileSinkInterface(t *testing.T) {
	var _ ProfileSink = NopSink{}
	var _ ProfileSink = &StatusSink{}
}
