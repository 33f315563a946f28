package systems

import (
	"github.com/automoto/punkpark/components"
	cfg "github.com/automoto/punkpark/config"
	"github.com/automoto/punkpark/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates derives the animation state from physics. Enemies keep the
// state their patrol chose unless they are in the air.
func UpdateStates(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		input := components.Input.Get(e)
		state := components.State.Get(e)
		state.Set(playerState(physics, input))
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.OnGround {
			return
		}
		components.State.Get(e).Set(airState(physics))
	})
}

func playerState(physics *components.PhysicsData, input *components.InputData) cfg.StateID {
	switch {
	case !physics.OnGround:
		return airState(physics)
	case input.Attack:
		return cfg.Attack
	case physics.SpeedX != 0:
		return cfg.Running
	default:
		return cfg.Idle
	}
}

func airState(physics *components.PhysicsData) cfg.StateID {
	if physics.SpeedY < 0 {
		return cfg.Jumping
	}
	return cfg.Falling
}
