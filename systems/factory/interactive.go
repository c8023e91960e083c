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

// CreateInteractive places a static collidable object. The collision box comes
// from the layout; the sprite is centered on it and keeps its full frame size.
func CreateInteractive(ecs *ecs.ECS, spawn assets.InteractiveSpawn, sheet *assets.SpriteSheet) *donburi.Entry {
	entry := archetypes.Interactive.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.Width, spawn.Height, tags.ResolvSolid, tags.ResolvInteractive)
	obj.SetShape(resolv.NewRectangle(0, 0, spawn.Width, spawn.Height))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	spriteW := float64(cfg.Interactive.FrameWidth)
	spriteH := float64(cfg.Interactive.FrameHeight)
	if sheet != nil {
		spriteW = float64(sheet.FrameWidth)
		spriteH = float64(sheet.FrameHeight)
	}

	components.Interactive.SetValue(entry, components.InteractiveData{
		Name:         spawn.Name,
		X:            spawn.CenterX(),
		Y:            spawn.CenterY(),
		SpriteWidth:  spriteW,
		SpriteHeight: spriteH,
	})

	sprite := components.SpriteData{
		X:      spawn.CenterX(),
		Y:      spawn.CenterY(),
		ScaleX: 1,
		ScaleY: 1,
	}
	if sheet != nil {
		sprite.Image = sheet.Frame(0)
	}
	components.Sprite.SetValue(entry, sprite)

	return entry
}
