package components

import (
	"github.com/automoto/punkpark/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

// Set moves to state, resetting the timer only on change.
func (s *StateData) Set(state config.StateID) {
	if s.CurrentState == state {
		s.StateTimer++
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = state
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
