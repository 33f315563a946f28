package systems

import (
	"github.com/automoto/punkpark/components"
	cfg "github.com/automoto/punkpark/config"
	"github.com/automoto/punkpark/shared/collision"
	"github.com/automoto/punkpark/shared/gamemath"
	"github.com/automoto/punkpark/shared/geom"
	"github.com/automoto/punkpark/shared/quadtree"
	"github.com/automoto/punkpark/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every body by its speed and resolves it against the
// level geometry. Character bodies push each other through the resolv space;
// static geometry comes only from the level index.
func UpdateCollisions(ecs *ecs.ECS) {
	var index *quadtree.Tree
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		index = components.Level.Get(levelEntry).Index
	}

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		moveHorizontal(physics, obj)
		obj.Y += gamemath.ClampSpeed(physics.SpeedY, cfg.Physics.VerticalSpeedClamp)
		resolveStatic(index, physics, obj)
	})
}

// moveHorizontal applies SpeedX, easing off other characters instead of
// stopping dead against them.
func moveHorizontal(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	if object.Space != nil {
		if check := object.Check(dx, 0, tags.ResolvCharacter); check != nil {
			if characters := check.ObjectsByTags(tags.ResolvCharacter); len(characters) > 0 {
				contact := check.ContactWithObject(characters[0])
				if contact.X() != 0 {
					// Already overlapping, back off by a fixed step
					if dx > 0 {
						dx = -cfg.Physics.CharacterPushback
					} else {
						dx = cfg.Physics.CharacterPushback
					}
				} else {
					dx = contact.X()
				}
			}
		}
	}

	object.X += dx
}

// staticCandidates looks up the index bucket under the body's feet, then
// under its centre when nothing is stored there.
func staticCandidates(index *quadtree.Tree, body geom.Rect) []geom.Rect {
	cx, cy := body.Center()
	if rects, ok := index.Search(cx, body.Bottom()); ok {
		return rects
	}
	rects, _ := index.Search(cx, cy)
	return rects
}

// resolveStatic classifies the body against each candidate tile and pushes it
// out through the face it struck. Floors are resolved in a first pass so a
// body sunk into the ground by gravity is lifted before its neighbouring tiles
// are classified; otherwise the tile beside it reads as a wall.
func resolveStatic(index *quadtree.Tree, physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = false
	physics.Contacts = components.ContactSet{}
	if index == nil {
		return
	}

	candidates := staticCandidates(index, components.ObjectData{Object: object}.Rect())

	for _, tile := range candidates {
		body := components.ObjectData{Object: object}.Rect()
		side, ok := collision.RectCollision(body, tile)
		if !ok || side != collision.Top || physics.SpeedY < 0 {
			continue // rising bodies pass through floor contacts
		}
		object.Y = tile.Y - body.H
		physics.SpeedY = 0
		physics.OnGround = true
		physics.Falling = false
		physics.Contacts[side] = true
	}

	for _, tile := range candidates {
		body := components.ObjectData{Object: object}.Rect()
		side, ok := collision.RectCollision(body, tile)
		if !ok {
			continue
		}

		switch side {
		case collision.Top:
			continue // handled above
		case collision.Bottom:
			object.Y = tile.Bottom()
			if physics.SpeedY < 0 {
				physics.SpeedY = 0
			}
		case collision.Left:
			object.X = tile.X - body.W
			if physics.SpeedX > 0 {
				physics.SpeedX = 0
			}
		case collision.Right:
			object.X = tile.Right()
			if physics.SpeedX < 0 {
				physics.SpeedX = 0
			}
		}
		physics.Contacts[side] = true
	}
}
