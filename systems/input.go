package systems

import (
	"github.com/automoto/punkpark/components"
	cfg "github.com/automoto/punkpark/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	leftKeys   = []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}
	rightKeys  = []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}
	jumpKeys   = []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW}
	attackKeys = []ebiten.Key{ebiten.KeyX, ebiten.KeyJ}
)

// UpdateInput polls the keyboard into every InputData.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}

	dir := 0
	if anyPressed(leftKeys) {
		dir--
	}
	if anyPressed(rightKeys) {
		dir++
	}
	jump := anyPressed(jumpKeys)
	attack := anyPressed(attackKeys)

	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		components.Input.SetValue(e, components.InputData{
			Direction: dir,
			Jump:      jump,
			Attack:    attack,
		})
	})
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
