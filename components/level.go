package components

import (
	"github.com/automoto/punkpark/shared/geom"
	"github.com/automoto/punkpark/shared/leveldata"
	"github.com/automoto/punkpark/shared/quadtree"
	"github.com/yohamta/donburi"
)

// LevelData is the single level entity. Its Index is shared read-only by
// every body in the level.
type LevelData struct {
	Name     string
	Bounds   geom.Rect
	Solids   []geom.Rect
	Index    *quadtree.Tree
	Rejected []leveldata.Rejected
	Spawns   []leveldata.SpawnPoint
	Enemies  []leveldata.EnemySpawn
}

var Level = donburi.NewComponentType[LevelData]()
