package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Interactive = donburi.NewTag().SetName("Interactive")
	Background  = donburi.NewTag().SetName("Background")
	Bubble      = donburi.NewTag().SetName("Bubble")
)

// Resolv tags for physics collision
const (
	ResolvSolid       = "solid"
	ResolvPlayer      = "Player"
	ResolvInteractive = "interactive"
)
