package components

import "github.com/yohamta/donburi"

// ClockData is the singleton simulation clock. DT is the seconds step for the
// current tick, already clamped against frame hitches.
type ClockData struct {
	DT    float64
	Frame uint64
}

var Clock = donburi.NewComponentType[ClockData]()

// HitStopData freezes gameplay for a few frames on heavy hits. Animation-only
// effects keep running while frozen.
type HitStopData struct {
	FramesRemaining int
}

// Frozen reports whether gameplay should skip this frame.
func (h *HitStopData) Frozen() bool {
	return h.FramesRemaining > 0
}

// Freeze extends the freeze to at least the given frame count.
func (h *HitStopData) Freeze(frames int) {
	if frames > h.FramesRemaining {
		h.FramesRemaining = frames
	}
}

var HitStop = donburi.NewComponentType[HitStopData]()
