package components

import (
	cfg "github.com/automoto/punkpark/config"
	"github.com/automoto/punkpark/shared/geom"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Variant   int // sprite set, 1-based like the level's variant property
	Direction Vector

	// Patrol
	Walked    float64 // distance covered since the last turn
	IdleTimer int     // ticks spent idle at the current end

	// Field of vision, rebuilt from the body every tick
	FOV     geom.Rect
	Spotted bool
}

var Enemy = donburi.NewComponentType[EnemyData]()

// UpdateFOV rebuilds the field of vision around body. The rectangle is
// 2*FOVHorizontal plus half a body wide. Facing right it starts FOVHorizontal
// left of the body and ends FOVHorizontal-W/2 past its right edge; facing left
// it shifts half a body further left. Vertically it starts H/2+FOVVertical/2
// above the body's top and is 2*FOVVertical tall.
func (e *EnemyData) UpdateFOV(body geom.Rect) {
	h, v := cfg.Enemy.FOVHorizontal, cfg.Enemy.FOVVertical
	x := body.X - h
	if e.Direction.X < 0 {
		x -= body.W / 2
	}
	e.FOV = geom.NewRect(x, body.Y-body.H/2-v/2, h*2+body.W/2, v*2)
}
