package systems

import (
	"github.com/automoto/punkpark/components"
	cfg "github.com/automoto/punkpark/config"
	"github.com/automoto/punkpark/shared/collision"
	"github.com/automoto/punkpark/shared/geom"
	"github.com/automoto/punkpark/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

func UpdateEnemies(ecs *ecs.ECS) {
	// Get player position for the vision check
	var playerRect geom.Rect
	playerEntry, hasPlayer := tags.Player.First(ecs.World)
	if hasPlayer {
		playerRect = components.Object.Get(playerEntry).Rect()
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		physics := components.Physics.Get(e)
		state := components.State.Get(e)
		body := components.Object.Get(e).Rect()

		enemy.UpdateFOV(body)
		updateVision(enemy, body, playerRect, hasPlayer)
		patrol(enemy, physics, state)
	})
}

// updateVision sets Spotted while the player overlaps the field of vision.
func updateVision(enemy *components.EnemyData, body, player geom.Rect, hasPlayer bool) {
	spotted := false
	if hasPlayer {
		_, spotted = collision.RectCollision(enemy.FOV, player)
	}
	if spotted == enemy.Spotted {
		return
	}
	enemy.Spotted = spotted

	msg := "enemy lost player"
	if spotted {
		msg = "enemy spotted player"
	}
	zap.L().Info(msg,
		zap.Int("variant", enemy.Variant),
		zap.Float64("x", body.X),
		zap.Float64("y", body.Y),
	)
}

// patrol walks WalkRange in the facing direction, idles for IdleTimeout
// ticks, then turns around.
func patrol(enemy *components.EnemyData, physics *components.PhysicsData, state *components.StateData) {
	if enemy.Walked >= cfg.Enemy.WalkRange {
		enemy.IdleTimer++
		if enemy.IdleTimer < cfg.Enemy.IdleTimeout {
			physics.SpeedX = 0
			state.Set(cfg.Idle)
			return
		}
		enemy.IdleTimer = 0
		enemy.Walked = 0
		enemy.Direction.X = -enemy.Direction.X
	}

	physics.SpeedX = enemy.Direction.X * cfg.Enemy.WalkSpeed
	enemy.Walked += cfg.Enemy.WalkSpeed
	state.Set(cfg.Walk)
}
