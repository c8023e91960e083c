package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed float64 // pixels per second along a single axis

	// Spawn
	SpawnFrame string // atlas frame shown before the first tick

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int
}

// InteractiveConfig describes the static object the player can bump into.
// Sprite bounds and collision footprint are both centered on the object position.
type InteractiveConfig struct {
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int
}

// BubbleConfig contains speech bubble configuration values
type BubbleConfig struct {
	DisplaySeconds float64 // How long the bubble stays up after the last touch
	DisplayWidth   float64 // Rendered size, independent of the source image
	DisplayHeight  float64
	PopSeconds     float64 // Duration of the pop-in scale tween
	PopStartScale  float32
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	FrameRate   float64 // frames per second for every clip
	FramePrefix string
	FrameSuffix string
	ZeroPad     int
}

// UIConfig contains debug overlay configuration values
type UIConfig struct {
	DebugTextColor    color.RGBA
	DebugTextBgColor  color.RGBA
	DebugSolidColor   color.RGBA
	DebugPlayerColor  color.RGBA
	DebugFontSize     float64
	DebugTextPadding  float64
	DebugOutlineWidth float32
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Draw collision boxes and player state
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Interactive InteractiveConfig
var Bubble BubbleConfig
var Animation AnimationConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
	DirectionUp    = -1.0
	DirectionDown  = 1.0
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
		Title:  "House",
	}

	// Player Config
	Player = PlayerConfig{
		Speed:      200.0,
		SpawnFrame: "Adam_idle_anim_21.png",

		// Dimensions (body matches the atlas frame)
		FrameWidth:      16,
		FrameHeight:     32,
		CollisionWidth:  16,
		CollisionHeight: 32,
	}

	// Vending machine: 64x64 sprite with a narrower 48x64 body
	Interactive = InteractiveConfig{
		FrameWidth:      64,
		FrameHeight:     64,
		CollisionWidth:  48,
		CollisionHeight: 64,
	}

	Bubble = BubbleConfig{
		DisplaySeconds: 4.0,
		DisplayWidth:   90,
		DisplayHeight:  90,
		PopSeconds:     0.15,
		PopStartScale:  0.6,
	}

	Animation = AnimationConfig{
		FrameRate:   10,
		FramePrefix: "Adam_idle_anim_",
		FrameSuffix: ".png",
		ZeroPad:     0,
	}

	UI = UIConfig{
		DebugTextColor:    White,
		DebugTextBgColor:  BlackOverlay,
		DebugSolidColor:   color.RGBA{R: 100, G: 100, B: 100, A: 255},
		DebugPlayerColor:  Blue,
		DebugFontSize:     12,
		DebugTextPadding:  4,
		DebugOutlineWidth: 1,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay: false,
	}
}

// TicksFor converts a duration in seconds to a whole number of update ticks.
func TicksFor(seconds float64) int {
	return int(seconds*float64(C.TPS) + 0.5)
}
