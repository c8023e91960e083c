package systems

import (
	"io/fs"
	"testing"

	"github.com/automoto/housewalk/assets"
	"github.com/automoto/housewalk/components"
	cfg "github.com/automoto/housewalk/config"
	"github.com/automoto/housewalk/systems/factory"
	"github.com/automoto/housewalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testWorld is the house scene without any images, driven one tick at a time.
type testWorld struct {
	ecs     *ecs.ECS
	player  *donburi.Entry
	machine *donburi.Entry
	bubble  *donburi.Entry
}

func newTestWorld(t *testing.T, playerX, playerY float64) *testWorld {
	t.Helper()

	layout, err := assets.LoadSceneLayout(assets.FS(), assets.LayoutPath)
	if err != nil {
		t.Fatalf("Failed to load layout: %v", err)
	}
	raw, err := fs.ReadFile(assets.FS(), assets.CharacterAtlas)
	if err != nil {
		t.Fatalf("Failed to read atlas: %v", err)
	}
	data, err := assets.ParseAtlasData(raw)
	if err != nil {
		t.Fatalf("Failed to parse atlas: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, layout.Width, layout.Height, 16, 16)
	factory.CreateScene(e, components.SceneData{Layout: layout})

	w := &testWorld{ecs: e}
	w.machine = factory.CreateInteractive(e, layout.Interactives[0], nil)
	w.player = factory.CreatePlayer(e, playerX, playerY, assets.NewAtlas(nil, data))
	w.bubble = factory.CreateSpeechBubble(e, nil)
	return w
}

// step runs one update with the given keys held, in scene system order.
func (w *testWorld) step(keys ...ebiten.Key) {
	UpdateClock(w.ecs)
	pollKeyboard(getOrCreateInput(w.ecs), pressed(keys...))
	UpdateSettings(w.ecs)
	UpdatePlayer(w.ecs)
	UpdateCollisions(w.ecs)
	UpdateObjects(w.ecs)
	UpdateSpeechBubble(w.ecs)
	UpdateAnimations(w.ecs)
}

func (w *testWorld) steps(n int, keys ...ebiten.Key) {
	for i := 0; i < n; i++ {
		w.step(keys...)
	}
}

func (w *testWorld) playerObject() *components.ObjectData {
	return components.Object.Get(w.player)
}

func (w *testWorld) bubbleData() *components.SpeechBubbleData {
	b, _ := tags.Bubble.First(w.ecs.World)
	return components.SpeechBubble.Get(b)
}

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, key := range keys {
			if key == k {
				return true
			}
		}
		return false
	}
}

func frameName(n int) string {
	return factory.CharacterNaming().Name(n)
}

func stepDistance() float64 {
	return cfg.Player.Speed / float64(cfg.C.TPS)
}

func approxEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
