package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/punkpark/components"
	cfg "github.com/automoto/punkpark/config"
	"github.com/automoto/punkpark/shared/geom"
	"github.com/automoto/punkpark/shared/quadtree"
	"github.com/automoto/punkpark/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

var debugFace = text.NewGoXFace(basicfont.Face7x13)

// Index node outlines, one colour per quadrant
var quadrantColors = map[quadtree.Quadrant]color.RGBA{
	quadtree.Root:        {255, 255, 255, 255},
	quadtree.TopLeft:     {255, 0, 255, 255},
	quadtree.TopRight:    {0, 255, 0, 255},
	quadtree.BottomLeft:  {255, 128, 0, 255},
	quadtree.BottomRight: {0, 128, 255, 255},
}

var (
	tileColor    = color.RGBA{100, 100, 100, 255}
	playerColor  = color.RGBA{0, 0, 255, 255}
	enemyColor   = color.RGBA{255, 0, 0, 255}
	fovColor     = color.RGBA{255, 255, 0, 255}
	spottedColor = color.RGBA{255, 64, 64, 255}
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	var lines []string

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		if level.Index != nil {
			st := level.Index.Stats()
			lines = append(lines, fmt.Sprintf("%s  rects %d  leaves %d  depth %d  rejected %d",
				level.Name, st.Rects, st.Leaves, st.MaxDepth, len(level.Rejected)))
		}
		for _, tile := range level.Solids {
			strokeRect(screen, tile, tileColor)
		}
		if level.Index != nil {
			level.Index.Walk(func(b geom.Rect, q quadtree.Quadrant, _ int, _ bool) {
				strokeRect(screen, b, quadrantColors[q])
			})
		}
	}

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if e.HasComponent(tags.Player) {
			c = playerColor
		} else if e.HasComponent(tags.Enemy) {
			c = enemyColor
		}
		strokeRect(screen, components.Object.Get(e).Rect(), c)
	})

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		c := fovColor
		if enemy.Spotted {
			c = spottedColor
		}
		strokeRect(screen, enemy.FOV, c)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		state := components.State.Get(e)
		lines = append(lines, fmt.Sprintf("player %s  ground %t  speed %.2f,%.2f",
			state.CurrentState, physics.OnGround, physics.SpeedX, physics.SpeedY))
	})

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, float64(8+i*16))
		text.Draw(screen, line, debugFace, op)
	}
}

func strokeRect(screen *ebiten.Image, r geom.Rect, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)
}
