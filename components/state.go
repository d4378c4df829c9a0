package components

import (
	"github.com/mossforge/forestfall/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // seconds in the current state
}

// SetState switches states and resets the timer. A no-op when already there.
func (s *StateData) SetState(id config.StateID) {
	if s.CurrentState == id {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = id
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
