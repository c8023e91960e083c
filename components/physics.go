package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// IsZero reports whether both axes are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

type PhysicsData struct {
	Velocity Vector         // pixels per second
	Touching *resolv.Object // static body the last move was stopped by, nil if none
}

var Physics = donburi.NewComponentType[PhysicsData]()
