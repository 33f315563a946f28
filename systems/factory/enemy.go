package factory

import (
	"github.com/automoto/punkpark/archetypes"
	"github.com/automoto/punkpark/components"
	cfg "github.com/automoto/punkpark/config"
	"github.com/automoto/punkpark/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a patrolling enemy facing right. Variants below 1 use
// the first sprite set.
func CreateEnemy(ecs *ecs.ECS, x, y float64, variant int) *donburi.Entry {
	if variant < 1 {
		variant = 1
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Character.CollisionWidth, cfg.Character.CollisionHeight)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Character.CollisionWidth, cfg.Character.CollisionHeight))
	obj.AddTags(tags.ResolvCharacter, tags.ResolvEnemy)
	obj.Data = enemy

	data := components.EnemyData{
		Variant:   variant,
		Direction: components.Vector{X: cfg.DirectionRight, Y: 0},
	}
	data.UpdateFOV(components.ObjectData{Object: obj}.Rect())
	components.Enemy.SetValue(enemy, data)

	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Walk,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:  cfg.Enemy.Gravity,
		Friction: cfg.Enemy.Friction,
		MaxSpeed: cfg.Enemy.MaxSpeed,
	})

	return enemy
}
