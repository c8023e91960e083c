package factory

import (
	"io/fs"
	"testing"

	"github.com/automoto/housewalk/assets"
	"github.com/automoto/housewalk/components"
	cfg "github.com/automoto/housewalk/config"
	"github.com/automoto/housewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func embeddedAtlas(t *testing.T) *assets.Atlas {
	t.Helper()
	raw, err := fs.ReadFile(assets.FS(), assets.CharacterAtlas)
	if err != nil {
		t.Fatalf("Failed to read atlas: %v", err)
	}
	data, err := assets.ParseAtlasData(raw)
	if err != nil {
		t.Fatalf("Failed to parse atlas: %v", err)
	}
	return assets.NewAtlas(nil, data)
}

func TestGenerateAnimations(t *testing.T) {
	animData := GenerateAnimations(embeddedAtlas(t))

	if len(animData.Animations) != 4 {
		t.Fatalf("Expected 4 clips, got %d", len(animData.Animations))
	}

	tests := []struct {
		id          cfg.AnimationID
		first, last int
	}{
		{cfg.IdleRight, 1, 6},
		{cfg.IdleUp, 7, 12},
		{cfg.IdleLeft, 13, 18},
		{cfg.IdleDown, 19, 24},
	}
	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			anim, ok := animData.Animations[tt.id]
			if !ok {
				t.Fatalf("Missing clip %s", tt.id)
			}
			if anim.First != tt.first || anim.Last != tt.last {
				t.Errorf("Expected frames %d-%d, got %d-%d", tt.first, tt.last, anim.First, anim.Last)
			}
			if anim.SpeedInTps != 6 {
				t.Errorf("Expected 6 ticks per frame, got %.2f", anim.SpeedInTps)
			}
			if anim.FreezeOnComplete {
				t.Error("Expected clip to loop")
			}
		})
	}
}

func TestGenerateAnimations_MissingFramePanics(t *testing.T) {
	data, err := assets.ParseAtlasData([]byte(`{"frames": {"Adam_idle_anim_1.png": {"frame": {"x": 0, "y": 0, "w": 16, "h": 32}}}}`))
	if err != nil {
		t.Fatalf("Failed to parse atlas: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for an atlas missing clip frames")
		}
	}()
	GenerateAnimations(assets.NewAtlas(nil, data))
}

func TestCreateInteractive(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	spaceEntry := CreateSpace(e, 800, 600, 16, 16)

	spawn := assets.InteractiveSpawn{Name: "machine", Sprite: "machine", X: 176, Y: 168, Width: 48, Height: 64}
	entry := CreateInteractive(e, spawn, nil)

	obj := components.Object.Get(entry)
	if obj.X != 176 || obj.Y != 168 || obj.W != 48 || obj.H != 64 {
		t.Errorf("Unexpected collision box %.0f,%.0f %.0fx%.0f", obj.X, obj.Y, obj.W, obj.H)
	}
	if !obj.HasTags(tags.ResolvSolid, tags.ResolvInteractive) {
		t.Error("Expected solid and interactive tags")
	}
	if obj.Data != entry {
		t.Error("Expected object to point back at its entry")
	}
	if len(components.Space.Get(spaceEntry).Objects()) != 1 {
		t.Error("Expected object to be added to the space")
	}

	data := components.Interactive.Get(entry)
	if data.X != 200 || data.Y != 200 || data.SpriteWidth != 64 || data.SpriteHeight != 64 {
		t.Errorf("Unexpected interactive data %+v", data)
	}
}

func TestCreatePlayer(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 800, 600, 16, 16)

	player := CreatePlayer(e, 400, 300, embeddedAtlas(t))

	if !player.HasComponent(tags.Player) {
		t.Error("Expected player tag")
	}
	obj := components.Object.Get(player)
	if obj.CenterX() != 400 || obj.CenterY() != 300 {
		t.Errorf("Expected player centered at (400, 300), got (%.1f, %.1f)", obj.CenterX(), obj.CenterY())
	}
	if components.Player.Get(player).Speed != cfg.Player.Speed {
		t.Errorf("Expected speed %.0f", cfg.Player.Speed)
	}
	if frame := components.Animation.Get(player).FrameName; frame != cfg.Player.SpawnFrame {
		t.Errorf("Expected spawn frame %s, got %s", cfg.Player.SpawnFrame, frame)
	}
}
