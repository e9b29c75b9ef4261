package engine

import "time"

// TimeResource is a coherent snapshot of all published time quantities,
// taken once per AdvanceFrame. The individual keeper accessors are
// best-effort lock-free reads and may observe values from different frames
// when read together; consumers that need multi-field consistency read a
// TimeResource instead.
type TimeResource struct {
	// GameTime is the accumulated simulation time (pausable, scalable)
	GameTime time.Duration

	// RealTime is the wall-clock time of the snapshot (unaffected by freeze)
	RealTime time.Time

	// MainTimer is real elapsed time since the clock started counting
	MainTimer time.Duration

	// DeltaTime is the scale- and freeze-adjusted frame delta
	DeltaTime time.Duration

	// TimeMult is the dimensionless per-frame multiplier (0 while frozen)
	TimeMult float64

	// FrameNumber is the frame count at the snapshot
	FrameNumber int64

	// FPS is the last completed sampling window's frame count
	FPS int
}
