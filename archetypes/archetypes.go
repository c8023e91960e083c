package archetypes

import (
	"github.com/automoto/housewalk/components"
	cfg "github.com/automoto/housewalk/config"
	"github.com/automoto/housewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.Physics,
	)
	Interactive = newArchetype(
		tags.Interactive,
		components.Interactive,
		components.Object,
		components.Sprite,
	)
	Background = newArchetype(
		tags.Background,
		components.Background,
	)
	SpeechBubble = newArchetype(
		tags.Bubble,
		components.SpeechBubble,
	)
	Space = newArchetype(
		components.Space,
	)
	Scene = newArchetype(
		components.Scene,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
