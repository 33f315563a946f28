package factory

import (
	"github.com/automoto/punkpark/archetypes"
	"github.com/automoto/punkpark/components"
	cfg "github.com/automoto/punkpark/config"
	"github.com/automoto/punkpark/shared/leveldata"
	"github.com/automoto/punkpark/shared/quadtree"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateLevel spawns the level entity and builds its static geometry index.
// Rects the index cannot hold are logged and kept on the component.
func CreateLevel(ecs *ecs.ECS, data *leveldata.CollisionData) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	index, rejected := leveldata.BuildIndex(data,
		quadtree.WithLimit(cfg.Index.Limit),
		quadtree.WithMaxDepth(cfg.Index.MaxDepth),
	)

	log := zap.L().With(zap.String("level", data.Name))
	for _, r := range rejected {
		log.Warn("solid rect not indexed", zap.Stringer("rect", r))
	}
	stats := index.Stats()
	log.Info("level index built",
		zap.Int("rects", stats.Rects),
		zap.Int("rejected", len(rejected)),
		zap.Int("nodes", stats.Nodes),
		zap.Int("leaves", stats.Leaves),
		zap.Int("depth", stats.MaxDepth),
		zap.Float64("limit", index.Limit()),
	)

	components.Level.SetValue(level, components.LevelData{
		Name:     data.Name,
		Bounds:   data.Bounds(),
		Solids:   data.SolidRects,
		Index:    index,
		Rejected: rejected,
		Spawns:   data.SpawnPoints,
		Enemies:  data.EnemySpawns,
	})

	return level
}
