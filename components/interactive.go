package components

import "github.com/yohamta/donburi"

// InteractiveData describes a static object the player can bump into.
// X/Y is the sprite center; the sprite is larger than the collision box.
type InteractiveData struct {
	Name         string
	X, Y         float64
	SpriteWidth  float64
	SpriteHeight float64
}

var Interactive = donburi.NewComponentType[InteractiveData]()
