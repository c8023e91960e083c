package factory

import (
	"github.com/automoto/housewalk/archetypes"
	"github.com/automoto/housewalk/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpeechBubble creates the single, initially hidden, speech bubble.
func CreateSpeechBubble(ecs *ecs.ECS, img *ebiten.Image) *donburi.Entry {
	entry := archetypes.SpeechBubble.Spawn(ecs)
	components.SpeechBubble.SetValue(entry, components.SpeechBubbleData{
		Image:    img,
		Visible:  false,
		PopScale: 1,
	})
	return entry
}

// CreateBackground creates the background entity.
func CreateBackground(ecs *ecs.ECS, img *ebiten.Image) *donburi.Entry {
	entry := archetypes.Background.Spawn(ecs)
	components.Background.SetValue(entry, components.BackgroundData{Image: img})
	return entry
}

// CreateScene stores the loaded layout and assets for systems that need them.
func CreateScene(ecs *ecs.ECS, data components.SceneData) *donburi.Entry {
	entry := archetypes.Scene.Spawn(ecs)
	components.Scene.SetValue(entry, data)
	return entry
}
