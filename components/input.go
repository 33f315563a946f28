package components

import "github.com/yohamta/donburi"

// InputData is the control intent for one entity this tick.
type InputData struct {
	Direction int // -1 left, 0 none, 1 right
	Jump      bool
	Attack    bool
}

var Input = donburi.NewComponentType[InputData]()
