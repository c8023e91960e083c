package systems

import (
	"github.com/automoto/housewalk/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers moved collision objects with their space cells.
// Must run AFTER UpdateCollisions.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
