package components

import (
	cfg "github.com/mossforge/forestfall/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// BufferedPress is a press event waiting to be consumed.
type BufferedPress struct {
	Action cfg.ActionID
	Age    float64 // seconds since the press
}

// InputData stores the current and previous frame's pressed state for all
// actions plus a short time-ordered buffer of presses. JustPressed and
// JustReleased are computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	Buffer []BufferedPress
}

var Input = donburi.NewComponentType[InputData]()

// Action derives the temporal state for one action.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	cur, prev := in.Current[id], in.Previous[id]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

// PushBuffered records a press for later consumption, evicting the oldest
// entry when the buffer is full.
func (in *InputData) PushBuffered(id cfg.ActionID) {
	if len(in.Buffer) >= cfg.Input.BufferSize {
		in.Buffer = in.Buffer[1:]
	}
	in.Buffer = append(in.Buffer, BufferedPress{Action: id})
}

// AgeBuffer advances buffered press ages and drops entries older than the
// buffer window.
func (in *InputData) AgeBuffer(dt float64) {
	kept := in.Buffer[:0]
	for _, b := range in.Buffer {
		b.Age += dt
		if b.Age <= cfg.Input.BufferWindow {
			kept = append(kept, b)
		}
	}
	in.Buffer = kept
}

// ConsumeBuffered removes and reports the most recent buffered press of the
// action. Consuming twice for one press returns false the second time.
func (in *InputData) ConsumeBuffered(id cfg.ActionID) bool {
	for i := len(in.Buffer) - 1; i >= 0; i-- {
		if in.Buffer[i].Action == id {
			in.Buffer = append(in.Buffer[:i], in.Buffer[i+1:]...)
			return true
		}
	}
	return false
}
