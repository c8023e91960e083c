package systems

import (
	"github.com/automoto/housewalk/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the scene tick. Runs first so every other system sees the
// same tick number for the whole update.
func UpdateClock(ecs *ecs.ECS) {
	getOrCreateClock(ecs).Tick++
}

// CurrentTick returns the number of updates run so far.
func CurrentTick(ecs *ecs.ECS) int64 {
	return getOrCreateClock(ecs).Tick
}

func getOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
