package systems

import (
	"github.com/automoto/punkpark/components"
	cfg "github.com/automoto/punkpark/config"
	"github.com/automoto/punkpark/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		friction := physics.Friction
		if !physics.OnGround {
			friction = physics.AirFriction
		}
		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, friction)
		physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, physics.MaxSpeed)

		physics.SpeedY = gamemath.ApplyGravity(physics.SpeedY, physics.Gravity, cfg.Physics.MaxFallSpeed)
		physics.Falling = physics.SpeedY > 0 && !physics.OnGround
	})
}
