package systems

import (
	"github.com/automoto/housewalk/components"
	cfg "github.com/automoto/housewalk/config"
	"github.com/automoto/housewalk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves the player by its velocity for one tick, one axis at a
// time, stopping flush against solid bodies. A move that would have entered a
// solid records that body in PhysicsData.Touching.
func UpdateCollisions(ecs *ecs.ECS) {
	width, height := sceneBounds(ecs)
	tps := float64(cfg.C.TPS)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		physics.Touching = nil

		if hit := moveHorizontal(obj, physics.Velocity.X/tps); hit != nil {
			physics.Touching = hit
		}
		if hit := moveVertical(obj, physics.Velocity.Y/tps); hit != nil {
			physics.Touching = hit
		}

		clampToBounds(obj, width, height)
	})
}

// moveHorizontal applies dx and returns the solid the object was stopped by, if any.
func moveHorizontal(object *resolv.Object, dx float64) *resolv.Object {
	if dx == 0 {
		return nil
	}

	target := object.X + dx
	var hit *resolv.Object
	for _, solid := range blockingSolids(object, dx, 0) {
		if dx > 0 && solid.X-object.W < target {
			target = solid.X - object.W
			hit = solid
		} else if dx < 0 && solid.X+solid.W > target {
			target = solid.X + solid.W
			hit = solid
		}
	}

	object.X = target
	return hit
}

// moveVertical applies dy and returns the solid the object was stopped by, if any.
func moveVertical(object *resolv.Object, dy float64) *resolv.Object {
	if dy == 0 {
		return nil
	}

	target := object.Y + dy
	var hit *resolv.Object
	for _, solid := range blockingSolids(object, 0, dy) {
		if dy > 0 && solid.Y-object.H < target {
			target = solid.Y - object.H
			hit = solid
		} else if dy < 0 && solid.Y+solid.H > target {
			target = solid.Y + solid.H
			hit = solid
		}
	}

	object.Y = target
	return hit
}

// blockingSolids uses the space's cells as a broad phase and keeps the solids the
// object's box would actually overlap after moving by (dx, dy).
func blockingSolids(object *resolv.Object, dx, dy float64) []*resolv.Object {
	check := object.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	var solids []*resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlaps(object, dx, dy, solid) {
			solids = append(solids, solid)
		}
	}
	return solids
}

// overlaps reports whether a, offset by (dx, dy), intersects b. Boxes that only
// share an edge do not overlap.
func overlaps(a *resolv.Object, dx, dy float64, b *resolv.Object) bool {
	return a.X+dx < b.X+b.W &&
		a.X+a.W+dx > b.X &&
		a.Y+dy < b.Y+b.H &&
		a.Y+a.H+dy > b.Y
}

func clampToBounds(object *resolv.Object, width, height float64) {
	if object.X < 0 {
		object.X = 0
	} else if object.X+object.W > width {
		object.X = width - object.W
	}
	if object.Y < 0 {
		object.Y = 0
	} else if object.Y+object.H > height {
		object.Y = height - object.H
	}
}

// sceneBounds returns the layout size, falling back to the window size.
func sceneBounds(ecs *ecs.ECS) (float64, float64) {
	if entry, ok := components.Scene.First(ecs.World); ok {
		if scene := components.Scene.Get(entry); scene.Layout != nil {
			return float64(scene.Layout.Width), float64(scene.Layout.Height)
		}
	}
	return float64(cfg.C.Width), float64(cfg.C.Height)
}
