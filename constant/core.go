package constant

import "time"

// Frame Timing
const (
	// NominalFrameDuration is the target time budget per frame at the
	// design refresh rate (60 Hz)
	NominalFrameDuration = time.Second / 60

	// MaxFrameDeltaFactor bounds how many nominal frames a single real
	// frame may report; longer stalls are clamped rather than injected
	// into simulation time
	MaxFrameDeltaFactor = 2

	// MaxFrameDelta is the ceiling applied to a frame's measured elapsed
	// time (effectively floors simulated rate at 30 logical fps)
	MaxFrameDelta = MaxFrameDeltaFactor * NominalFrameDuration

	// FPSSampleWindow is the rolling window over which frame rate is measured
	FPSSampleWindow = time.Second
)

// DefaultTimeScale is the simulation speed factor applied until the host
// changes it
const DefaultTimeScale = 1.0
