package core

import "time"

// FrameTicker gates simulation ticks inside a frame loop: the loop
// draws every frame at the target fps but the sim only advances on
// every every-th frame.
type FrameTicker struct {
	frame   time.Duration
	every   int
	counter int
}

// NewFrameTicker targets fps frames per second, advancing the sim on
// every every-th frame.
func NewFrameTicker(fps, every int) *FrameTicker {
	if fps <= 0 {
		fps = 60
	}
	if every <= 0 {
		every = 1
	}
	return &FrameTicker{frame: time.Second / time.Duration(fps), every: every}
}

// FrameInterval returns the wall-clock budget of a single frame.
func (t *FrameTicker) FrameInterval() time.Duration { return t.frame }

// Advance records one elapsed frame and reports whether this frame
// should step the simulation.
func (t *FrameTicker) Advance() bool {
	t.counter++
	if t.counter >= t.every {
		t.counter = 0
		return true
	}
	return false
}
