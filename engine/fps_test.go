package engine

import (
	"testing"
	"time"
)

func TestFPSSamplerWindowClose(t *testing.T) {
	s := newFPSSampler()
	s.reset(0)

	// 60 frames inside the first second publish nothing
	for i := 0; i < 60; i++ {
		s.feed(time.Duration(i) * time.Second / 60)
	}
	if s.fps() != 0 {
		t.Errorf("Expected no publish inside first window, got %d", s.fps())
	}

	// The boundary-crossing frame publishes the closed window's count
	s.feed(time.Second)
	if s.fps() != 60 {
		t.Errorf("Expected 60 fps published at boundary, got %d", s.fps())
	}

	// The crossing frame belongs to the new window
	if s.accum != 1 {
		t.Errorf("Expected new window to hold the crossing frame, got %d", s.accum)
	}
}

func TestFPSSamplerSlowFrames(t *testing.T) {
	s := newFPSSampler()
	s.reset(0)

	// 400ms frames: each boundary-crossing frame publishes the 3 frames
	// of the closed window
	marks := []time.Duration{0, 400, 800, 1200, 1600, 2000, 2400}
	for _, ms := range marks {
		s.feed(ms * time.Millisecond)
	}
	// Last close at 2400ms published frames at 1200, 1600, 2000
	if s.fps() != 3 {
		t.Errorf("Expected 3 fps over slow window, got %d", s.fps())
	}
}

func TestFPSSamplerReset(t *testing.T) {
	s := newFPSSampler()
	s.reset(0)

	s.feed(0)
	s.feed(100 * time.Millisecond)
	s.reset(5 * time.Second)

	if s.accum != 0 {
		t.Errorf("Expected accumulator cleared by reset, got %d", s.accum)
	}

	// Window is rebased, not carried over
	s.feed(5100 * time.Millisecond)
	if s.fps() != 0 {
		t.Errorf("Expected no publish right after rebase, got %d", s.fps())
	}
	s.feed(6 * time.Second)
	if s.fps() != 1 {
		t.Errorf("Expected 1 fps after rebased window closed, got %d", s.fps())
	}
}
