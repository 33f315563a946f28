package systems

import (
	"github.com/automoto/punkpark/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes every body's cells in the character space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	}
}
