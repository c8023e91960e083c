package systems

import (
	"github.com/automoto/housewalk/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every playing clip by one tick.
// Must run AFTER UpdatePlayer so a clip switched this tick starts counting immediately.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		components.Animation.Get(e).Advance()
	})
}
