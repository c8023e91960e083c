package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/housewalk/assets"
	"github.com/automoto/housewalk/components"
	cfg "github.com/automoto/housewalk/config"
	"github.com/automoto/housewalk/systems"
	"github.com/automoto/housewalk/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HouseScene is the single room: the walking character, the vending machine and
// the speech bubble shown when the two touch.
type HouseScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewHouseScene(sc SceneChanger) *HouseScene {
	return &HouseScene{sceneChanger: sc}
}

func (hs *HouseScene) Update() {
	hs.once.Do(hs.configure)
	hs.ecs.Update()
}

func (hs *HouseScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if hs.ecs == nil {
		return
	}
	hs.ecs.Draw(screen)
}

func (hs *HouseScene) configure() {
	sceneAssets := assets.MustLoadSceneAssets()
	layout := assets.MustLoadSceneLayout()

	hs.ecs = NewHouseECS(sceneAssets, layout)

	log.Printf("Loaded scene %s (%dx%d) with %d interactive(s)", layout.Name, layout.Width, layout.Height, len(layout.Interactives))
}

// NewHouseECS builds the world, registers systems and renderers in order, and
// spawns every entity of the room. Draw order follows renderer registration.
func NewHouseECS(sceneAssets *assets.SceneAssets, layout *assets.SceneLayout) *ecs.ECS {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateSpeechBubble)
	ecs.AddSystem(systems.UpdateAnimations)

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawSpeechBubble)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	populate(ecs, sceneAssets, layout)
	return ecs
}

func populate(ecs *ecs.ECS, sceneAssets *assets.SceneAssets, layout *assets.SceneLayout) {
	factory.CreateSpace(ecs, layout.Width, layout.Height, 16, 16)
	factory.CreateScene(ecs, components.SceneData{Layout: layout, Assets: sceneAssets})
	factory.CreateBackground(ecs, sceneAssets.Background)

	for _, spawn := range layout.Interactives {
		var sheet *assets.SpriteSheet
		switch spawn.Sprite {
		case "machine":
			sheet = sceneAssets.Machine
		case "logo":
			sheet = sceneAssets.Logo
		default:
			log.Printf("Interactive %q has unknown sprite %q, drawing nothing", spawn.Name, spawn.Sprite)
		}
		factory.CreateInteractive(ecs, spawn, sheet)
	}

	x, y := float64(cfg.C.Width)/2, float64(cfg.C.Height)/2
	if layout.PlayerSpawn != nil {
		x, y = layout.PlayerSpawn.X, layout.PlayerSpawn.Y
	}
	factory.CreatePlayer(ecs, x, y, sceneAssets.Character)

	factory.CreateSpeechBubble(ecs, sceneAssets.SpeechBubble)
}
