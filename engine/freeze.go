package engine

// Freeze suspends simulation time. Calls nest: each Freeze must be balanced
// by a Resume before simulation time moves again. Real time tracking, the
// frame counter and delta measurement continue while frozen.
func (tk *TimeKeeper) Freeze() {
	tk.freezeDepth.Add(1)
}

// Resume undoes one Freeze. An unbalanced Resume with no matching Freeze is
// a silent no-op; the depth never goes below zero.
func (tk *TimeKeeper) Resume() {
	for {
		depth := tk.freezeDepth.Load()
		if depth <= 0 {
			return
		}
		if tk.freezeDepth.CompareAndSwap(depth, depth-1) {
			return
		}
	}
}

// ResumeHard forces the freeze depth to zero regardless of nesting,
// reserved for host-level recovery such as re-entering live execution
func (tk *TimeKeeper) ResumeHard() {
	tk.freezeDepth.Store(0)
}

// IsFrozen reports whether simulation time is currently suspended
func (tk *TimeKeeper) IsFrozen() bool {
	return tk.freezeDepth.Load() > 0
}

// FreezeDepth returns the current freeze nesting depth
func (tk *TimeKeeper) FreezeDepth() int {
	return int(tk.freezeDepth.Load())
}
