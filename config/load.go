package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the optional YAML tuning file passed with -config.
// Every field is a pointer so that omitted keys keep their built-in defaults.
type Overrides struct {
	Window struct {
		Width  *int    `yaml:"width"`
		Height *int    `yaml:"height"`
		TPS    *int    `yaml:"tps"`
		Title  *string `yaml:"title"`
	} `yaml:"window"`

	Player struct {
		Speed *float64 `yaml:"speed"`
	} `yaml:"player"`

	Bubble struct {
		DisplaySeconds *float64 `yaml:"displaySeconds"`
		DisplayWidth   *float64 `yaml:"displayWidth"`
		DisplayHeight  *float64 `yaml:"displayHeight"`
	} `yaml:"bubble"`

	Animation struct {
		FrameRate *float64 `yaml:"frameRate"`
	} `yaml:"animation"`

	Debug *bool `yaml:"debug"`
}

// Load reads an override file from disk and validates it.
func Load(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates override YAML.
func Parse(data []byte) (*Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &o, nil
}

// Validate rejects values the scene cannot run with.
func (o *Overrides) Validate() error {
	if o.Window.Width != nil && *o.Window.Width <= 0 {
		return fmt.Errorf("window.width must be positive, got %d", *o.Window.Width)
	}
	if o.Window.Height != nil && *o.Window.Height <= 0 {
		return fmt.Errorf("window.height must be positive, got %d", *o.Window.Height)
	}
	if o.Window.TPS != nil && *o.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", *o.Window.TPS)
	}
	if o.Player.Speed != nil && *o.Player.Speed < 0 {
		return fmt.Errorf("player.speed must not be negative, got %.1f", *o.Player.Speed)
	}
	if o.Bubble.DisplaySeconds != nil && *o.Bubble.DisplaySeconds < 0 {
		return fmt.Errorf("bubble.displaySeconds must not be negative, got %.2f", *o.Bubble.DisplaySeconds)
	}
	if o.Bubble.DisplayWidth != nil && *o.Bubble.DisplayWidth <= 0 {
		return fmt.Errorf("bubble.displayWidth must be positive, got %.1f", *o.Bubble.DisplayWidth)
	}
	if o.Bubble.DisplayHeight != nil && *o.Bubble.DisplayHeight <= 0 {
		return fmt.Errorf("bubble.displayHeight must be positive, got %.1f", *o.Bubble.DisplayHeight)
	}
	if o.Animation.FrameRate != nil && *o.Animation.FrameRate <= 0 {
		return fmt.Errorf("animation.frameRate must be positive, got %.1f", *o.Animation.FrameRate)
	}
	return nil
}

// Apply copies every set field onto the global configuration.
func (o *Overrides) Apply() {
	if o.Window.Width != nil {
		C.Width = *o.Window.Width
	}
	if o.Window.Height != nil {
		C.Height = *o.Window.Height
	}
	if o.Window.TPS != nil {
		C.TPS = *o.Window.TPS
	}
	if o.Window.Title != nil {
		C.Title = *o.Window.Title
	}
	if o.Player.Speed != nil {
		Player.Speed = *o.Player.Speed
	}
	if o.Bubble.DisplaySeconds != nil {
		Bubble.DisplaySeconds = *o.Bubble.DisplaySeconds
	}
	if o.Bubble.DisplayWidth != nil {
		Bubble.DisplayWidth = *o.Bubble.DisplayWidth
	}
	if o.Bubble.DisplayHeight != nil {
		Bubble.DisplayHeight = *o.Bubble.DisplayHeight
	}
	if o.Animation.FrameRate != nil {
		Animation.FrameRate = *o.Animation.FrameRate
	}
	if o.Debug != nil {
		Debug.Overlay = *o.Debug
	}
}
