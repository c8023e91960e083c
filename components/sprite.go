package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is a static image drawn centered on (X, Y).
type SpriteData struct {
	Image  *ebiten.Image
	X, Y   float64
	ScaleX float64
	ScaleY float64
}

var Sprite = donburi.NewComponentType[SpriteData]()

// BackgroundData is drawn at the origin and then repeated to fill the screen.
type BackgroundData struct {
	Image *ebiten.Image
}

var Background = donburi.NewComponentType[BackgroundData]()
