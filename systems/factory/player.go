package factory

import (
	"github.com/automoto/housewalk/archetypes"
	"github.com/automoto/housewalk/assets"
	"github.com/automoto/housewalk/components"
	cfg "github.com/automoto/housewalk/config"
	"github.com/automoto/housewalk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the character with its sprite centered on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64, atlas *assets.Atlas) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Speed:  cfg.Player.Speed,
		Facing: cfg.DefaultAnimation,
	})
	components.Physics.SetValue(player, components.PhysicsData{})

	animData := GenerateAnimations(atlas)
	animData.Play(cfg.DefaultAnimation)
	// shown until the first animation tick
	animData.FrameName = cfg.Player.SpawnFrame
	components.Animation.Set(player, animData)

	return player
}
