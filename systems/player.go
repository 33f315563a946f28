package systems

import (
	"github.com/automoto/punkpark/components"
	cfg "github.com/automoto/punkpark/config"
	"github.com/automoto/punkpark/shared/gamemath"
	"github.com/automoto/punkpark/shared/geom"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

func UpdatePlayer(ecs *ecs.ECS) {
	var bounds geom.Rect
	levelEntry, hasLevel := components.Level.First(ecs.World)
	if hasLevel {
		bounds = components.Level.Get(levelEntry).Bounds
	}

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		input := components.Input.Get(e)
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		if hasLevel && obj.Y > bounds.Bottom() {
			respawn(player, physics, obj)
			return
		}

		handlePlayerInput(input, player, physics)

		// Track last safe ground position for respawn
		if physics.OnGround {
			player.LastSafeX = obj.X
			player.LastSafeY = obj.Y
		}
	})
}

func handlePlayerInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	physics.SpeedX += float64(input.Direction) * cfg.Player.Acceleration
	player.Direction.X = gamemath.Facing(input.Direction, player.Direction.X)

	// Jump only from the ground
	if input.Jump && physics.OnGround {
		physics.SpeedY = -cfg.Player.JumpSpeed
		physics.OnGround = false
	}
}

// respawn puts a player that left the bottom of the level back where it last
// stood.
func respawn(player *components.PlayerData, physics *components.PhysicsData, obj *components.ObjectData) {
	zap.L().Info("player fell out of level",
		zap.Float64("x", obj.X),
		zap.Float64("y", obj.Y),
	)
	obj.X, obj.Y = player.LastSafeX, player.LastSafeY
	physics.SpeedX, physics.SpeedY = 0, 0
	physics.Falling = false
}
