package components

import (
	"github.com/automoto/housewalk/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed float64
	// Facing is the clip of the last direction with nonzero velocity.
	Facing config.AnimationID
}

var Player = donburi.NewComponentType[PlayerData]()
