package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector
	LastSafeX float64 // last position where the player stood on ground
	LastSafeY float64
}

var Player = donburi.NewComponentType[PlayerData]()
