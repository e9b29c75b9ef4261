package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/frameclock/constant"
	"github.com/lixenwraith/frameclock/status"
)

// TimeKeeper is the authoritative time source for a frame loop. It converts
// raw elapsed wall-clock time into the derived quantities every other
// subsystem consumes: a clamped per-frame delta, a scalable and freezable
// simulation clock, a frame counter and a measured frame rate.
//
// AdvanceFrame must be called exactly once per frame from a single
// designated thread; concurrent or re-entrant calls corrupt the frame mark
// bookkeeping. The published accessors are lock-free atomics and may be read
// from other threads as best-effort snapshots; use Snapshot for a coherent
// multi-field view.
type TimeKeeper struct {
	provider TimeProvider
	sink     ProfileSink
	run      RunContext

	nominal  time.Duration
	maxDelta time.Duration

	// Wall-clock epoch, set at construction
	startupTime time.Time

	// Lazy clock start: the monotonic epoch begins counting at the first
	// AdvanceFrame, not at construction. Advance-thread only.
	clockRunning bool
	epoch        time.Time

	// Wall reading at the start of the previous advance, relative to the
	// epoch. Advance-thread only.
	frameBeginMark time.Duration

	// Published state (lock-free reads from any thread)
	mainTimer   atomic.Int64 // nanoseconds since epoch
	lastDelta   atomic.Int64 // clamped real elapsed, nanoseconds
	gameTimer   atomic.Int64 // accumulated simulation nanoseconds
	frameCount  atomic.Int64
	freezeDepth atomic.Int32
	timeScale   status.AtomicFloat
	timeMult    status.AtomicFloat

	sampler *fpsSampler

	// Coherent per-frame snapshot for multi-field consumers
	resMu sync.RWMutex
	res   TimeResource
}

// NewTimeKeeper creates a time keeper driven by the given provider. The
// monotonic clock does not start counting until the first AdvanceFrame.
func NewTimeKeeper(provider TimeProvider) *TimeKeeper {
	tk := &TimeKeeper{
		provider:    provider,
		sink:        NopSink{},
		run:         alwaysLive{},
		nominal:     constant.NominalFrameDuration,
		maxDelta:    constant.MaxFrameDelta,
		startupTime: provider.Now(),
		sampler:     newFPSSampler(),
	}
	tk.timeScale.Set(constant.DefaultTimeScale)
	return tk
}

// SetProfileSink installs the per-frame measurement collaborator.
// Must be called before the first AdvanceFrame.
func (tk *TimeKeeper) SetProfileSink(sink ProfileSink) {
	if sink == nil {
		sink = NopSink{}
	}
	tk.sink = sink
}

// SetRunContext installs the live/design-time execution flag.
// Must be called before the first AdvanceFrame.
func (tk *TimeKeeper) SetRunContext(run RunContext) {
	if run == nil {
		run = alwaysLive{}
	}
	tk.run = run
}

// SetNominalFrameDuration overrides the target frame budget (default 60 Hz).
// The stall clamp follows at constant.MaxFrameDeltaFactor times the budget.
// Must be called before the first AdvanceFrame.
func (tk *TimeKeeper) SetNominalFrameDuration(d time.Duration) {
	if d <= 0 {
		return
	}
	tk.nominal = d
	tk.maxDelta = constant.MaxFrameDeltaFactor * d
}

// AdvanceFrame is the single per-frame state transition. The host loop
// calls it once per rendered frame. With forceFixedStep the frame reports
// exactly one nominal frame duration regardless of real elapsed time, for
// deterministic stepping (headless runs, record/replay).
func (tk *TimeKeeper) AdvanceFrame(forceFixedStep bool) {
	if !tk.clockRunning {
		tk.clockRunning = true
		tk.epoch = tk.provider.Now()
		tk.frameBeginMark = 0
		tk.sampler.reset(0)
	}

	notifySink(tk.sink)

	frame := tk.frameCount.Add(1)

	mainTimer := tk.provider.Now().Sub(tk.epoch)
	raw := mainTimer - tk.frameBeginMark

	var delta time.Duration
	switch {
	case forceFixedStep:
		delta = tk.nominal
	case raw < 0:
		delta = 0
	case raw > tk.maxDelta:
		delta = tk.maxDelta
	default:
		delta = raw
	}

	tk.frameBeginMark = mainTimer
	tk.mainTimer.Store(int64(mainTimer))
	tk.lastDelta.Store(int64(delta))

	if tk.freezeDepth.Load() == 0 {
		scale := tk.timeScale.Get()
		// Scale, not freeze, decides whether simulation time moves
		// forward, backward or not at all on a live frame
		if tk.run.Live() {
			tk.gameTimer.Add(int64(float64(delta) * scale))
		}
		tk.timeMult.Set(scale * float64(delta) / float64(tk.nominal))
	} else {
		// Frozen: simulation halts, real time tracking continues
		tk.timeMult.Set(0)
	}

	tk.sampler.feed(mainTimer)

	tk.publishSnapshot(mainTimer, frame)
}

// notifySink signals the end of the previous frame interval and the start
// of a new one. Sink failures must not disturb frame accounting.
func notifySink(s ProfileSink) {
	defer func() { _ = recover() }()
	s.EndMeasure()
	s.BeginMeasure()
}

func (tk *TimeKeeper) publishSnapshot(mainTimer time.Duration, frame int64) {
	mult := tk.timeMult.Get()

	tk.resMu.Lock()
	tk.res = TimeResource{
		GameTime:    time.Duration(tk.gameTimer.Load()),
		RealTime:    tk.startupTime.Add(mainTimer),
		MainTimer:   mainTimer,
		DeltaTime:   time.Duration(mult * float64(tk.nominal)),
		TimeMult:    mult,
		FrameNumber: frame,
		FPS:         int(tk.sampler.fps()),
	}
	tk.resMu.Unlock()
}

// Snapshot returns the coherent multi-field view published by the most
// recent AdvanceFrame
func (tk *TimeKeeper) Snapshot() TimeResource {
	tk.resMu.RLock()
	defer tk.resMu.RUnlock()
	return tk.res
}

// StartupTime returns the calendar time captured when the keeper was created
func (tk *TimeKeeper) StartupTime() time.Time {
	return tk.startupTime
}

// MainTimer returns real elapsed time since the clock started counting.
// Zero before the first AdvanceFrame.
func (tk *TimeKeeper) MainTimer() time.Duration {
	return time.Duration(tk.mainTimer.Load())
}

// GameTimer returns accumulated simulation time. It stands still while
// frozen and scales with TimeScale, which may drive it backward.
func (tk *TimeKeeper) GameTimer() time.Duration {
	return time.Duration(tk.gameTimer.Load())
}

// LastDelta returns the clamped real time elapsed over the previous frame
func (tk *TimeKeeper) LastDelta() time.Duration {
	return time.Duration(tk.lastDelta.Load())
}

// DeltaTime returns the frame delta in seconds for movement code, already
// scale- and freeze-adjusted: TimeMult times the nominal frame duration
func (tk *TimeKeeper) DeltaTime() float64 {
	return tk.timeMult.Get() * tk.nominal.Seconds()
}

// TimeMult returns the dimensionless per-frame multiplier. Exactly 1.0 at
// nominal frame rate with scale 1.0; exactly 0 while frozen.
func (tk *TimeKeeper) TimeMult() float64 {
	return tk.timeMult.Get()
}

// TimeScale returns the simulation speed factor
func (tk *TimeKeeper) TimeScale() float64 {
	return tk.timeScale.Get()
}

// SetTimeScale sets the simulation speed factor. Zero and negative values
// are accepted: zero halts simulation time without freezing, negative runs
// it backward.
func (tk *TimeKeeper) SetTimeScale(scale float64) {
	tk.timeScale.Set(scale)
}

// FPS returns the frame count of the last completed one-second window.
// Zero until the first window closes; stale by up to one window.
func (tk *TimeKeeper) FPS() int {
	return int(tk.sampler.fps())
}

// FrameCount returns the number of frames advanced since startup
func (tk *TimeKeeper) FrameCount() int64 {
	return tk.frameCount.Load()
}

// NominalFrameDuration returns the configured per-frame time budget
func (tk *TimeKeeper) NominalFrameDuration() time.Duration {
	return tk.nominal
}
