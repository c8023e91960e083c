package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_PartialOverrides(t *testing.T) {
	data := []byte(`
player:
  speed: 150
bubble:
  displaySeconds: 2.5
debug: true
`)

	o, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if o.Player.Speed == nil || *o.Player.Speed != 150 {
		t.Errorf("Expected player.speed=150, got %v", o.Player.Speed)
	}
	if o.Bubble.DisplaySeconds == nil || *o.Bubble.DisplaySeconds != 2.5 {
		t.Errorf("Expected bubble.displaySeconds=2.5, got %v", o.Bubble.DisplaySeconds)
	}
	if o.Window.Width != nil {
		t.Errorf("Expected window.width to stay unset, got %d", *o.Window.Width)
	}
	if o.Debug == nil || !*o.Debug {
		t.Errorf("Expected debug=true")
	}
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"negative speed", "player:\n  speed: -1\n", "player.speed"},
		{"zero width", "window:\n  width: 0\n", "window.width"},
		{"zero tps", "window:\n  tps: 0\n", "window.tps"},
		{"negative bubble time", "bubble:\n  displaySeconds: -4\n", "bubble.displaySeconds"},
		{"zero frame rate", "animation:\n  frameRate: 0\n", "animation.frameRate"},
		{"malformed", "player: [", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestOverrides_Apply(t *testing.T) {
	savedC := *C
	savedPlayer := Player
	savedBubble := Bubble
	savedAnimation := Animation
	savedDebug := Debug
	defer func() {
		*C = savedC
		Player = savedPlayer
		Bubble = savedBubble
		Animation = savedAnimation
		Debug = savedDebug
	}()

	o, err := Parse([]byte("window:\n  tps: 30\nplayer:\n  speed: 120\nanimation:\n  frameRate: 5\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	o.Apply()

	if C.TPS != 30 {
		t.Errorf("Expected TPS=30, got %d", C.TPS)
	}
	if C.Width != savedC.Width {
		t.Errorf("Expected width to keep default %d, got %d", savedC.Width, C.Width)
	}
	if Player.Speed != 120 {
		t.Errorf("Expected speed=120, got %.1f", Player.Speed)
	}
	if Animation.FrameRate != 5 {
		t.Errorf("Expected frameRate=5, got %.1f", Animation.FrameRate)
	}
	if Bubble.DisplaySeconds != savedBubble.DisplaySeconds {
		t.Errorf("Expected bubble duration to keep default, got %.2f", Bubble.DisplaySeconds)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestLoad_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "house.yaml")
	if err := os.WriteFile(path, []byte("window:\n  title: Test\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	o, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if o.Window.Title == nil || *o.Window.Title != "Test" {
		t.Errorf("Expected title 'Test', got %v", o.Window.Title)
	}
}

func TestTicksFor(t *testing.T) {
	saved := C.TPS
	defer func() { C.TPS = saved }()

	C.TPS = 60
	if got := TicksFor(4); got != 240 {
		t.Errorf("Expected 240 ticks for 4s at 60 TPS, got %d", got)
	}
	if got := TicksFor(0); got != 0 {
		t.Errorf("Expected 0 ticks for 0s, got %d", got)
	}
}

func TestAnimationID_String(t *testing.T) {
	tests := map[AnimationID]string{
		IdleUp:    "idle_up",
		IdleDown:  "idle_down",
		IdleLeft:  "idle_left",
		IdleRight: "idle_right",
	}
	for id, want := range tests {
		if got := id.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
	if got := AnimationID(99).String(); got != "AnimationID(99)" {
		t.Errorf("Unexpected fallback string %q", got)
	}
}
