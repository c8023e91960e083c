package components

import "github.com/yohamta/donburi"

// ClockData counts update ticks since the scene started.
type ClockData struct {
	Tick int64
}

var Clock = donburi.NewComponentType[ClockData]()
