// Package leveldata turns Tiled maps into the static geometry and spawn points
// a level needs. It depends on go-tiled only; nothing here touches ebiten or
// the ECS.
package leveldata

import "github.com/automoto/punkpark/shared/geom"

// CollisionData holds everything collision-relevant parsed from a TMX file.
type CollisionData struct {
	Name        string
	SolidRects  []geom.Rect
	SpawnPoints []SpawnPoint
	EnemySpawns []EnemySpawn
	MapWidth    int
	MapHeight   int
}

// Bounds returns the level extent anchored at the origin.
func (d *CollisionData) Bounds() geom.Rect {
	return geom.NewRect(0, 0, float64(d.MapWidth), float64(d.MapHeight))
}

// SpawnPoint is a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// EnemySpawn is an enemy start position. Variant selects the sprite set.
type EnemySpawn struct {
	X, Y    float64
	Variant int
}
