package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/punkpark/components"
	cfg "github.com/automoto/punkpark/config"
	"github.com/automoto/punkpark/shared/leveldata"
	"github.com/automoto/punkpark/systems"
	"github.com/automoto/punkpark/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Resolv cell size for the character space
const spaceCellSize = 16

// SceneChanger swaps the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PlatformerScene plays one level. Levels are cycled with Tab.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       map[string]*leveldata.CollisionData
	names        []string
	current      int
	once         sync.Once
}

// NewPlatformerScene plays the level called start, or the first level when
// start is empty or unknown.
func NewPlatformerScene(sc SceneChanger, levels map[string]*leveldata.CollisionData, names []string, start string) *PlatformerScene {
	current := 0
	for i, name := range names {
		if name == start {
			current = i
			break
		}
	}
	return &PlatformerScene{
		sceneChanger: sc,
		levels:       levels,
		names:        names,
		current:      current,
	}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && len(ps.names) > 1 {
		next := ps.names[(ps.current+1)%len(ps.names)]
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.levels, ps.names, next))
		return
	}

	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ps.ecs = newWorld(ps.levels[ps.names[ps.current]])
}

// newWorld registers the systems and spawns the level, its character space
// and every character in it.
func newWorld(data *leveldata.CollisionData) *ecs.ECS {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdateStates)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateObjects)

	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	populate(ecs, data)
	return ecs
}

// populate creates the level entity first so the index exists before any
// body queries it.
func populate(ecs *ecs.ECS, data *leveldata.CollisionData) {
	factory.CreateLevel(ecs, data)

	spaceEntry := factory.CreateSpace(ecs, data.MapWidth, data.MapHeight, spaceCellSize, spaceCellSize)
	space := components.Space.Get(spaceEntry)

	if len(data.SpawnPoints) == 0 {
		panic("no player spawn points defined in map " + data.Name)
	}
	spawn := data.SpawnPoints[0]
	player := factory.CreatePlayer(ecs, spawn.X, spawn.Y)
	space.Add(components.Object.Get(player).Object)

	for _, es := range data.EnemySpawns {
		enemy := factory.CreateEnemy(ecs, es.X, es.Y, es.Variant)
		space.Add(components.Object.Get(enemy).Object)
	}

	zap.L().Info("level ready",
		zap.String("level", data.Name),
		zap.Int("enemies", len(data.EnemySpawns)),
	)
}
