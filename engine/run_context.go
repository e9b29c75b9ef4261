package engine

import "sync/atomic"

// RunContext tells the keeper whether the host is executing live gameplay
// or a design-time context such as an editor. Simulation time accumulates
// only on live frames; all other time tracking is unaffected.
type RunContext interface {
	Live() bool
}

// alwaysLive is the default context for hosts with no design-time mode
type alwaysLive struct{}

func (alwaysLive) Live() bool { return true }

// ModalContext is a live/design-time flag the host can flip from any thread
type ModalContext struct {
	live atomic.Bool
}

// NewModalContext creates a context with the given initial liveness
func NewModalContext(live bool) *ModalContext {
	c := &ModalContext{}
	c.live.Store(live)
	return c
}

// Live reports whether the host is in live execution
func (c *ModalContext) Live() bool {
	return c.live.Load()
}

// SetLive switches between live and design-time execution
func (c *ModalContext) SetLive(live bool) {
	c.live.Store(live)
}
