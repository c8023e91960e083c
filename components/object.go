package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's collision box in the resolv space. X/Y are the top-left corner.
type ObjectData struct {
	*resolv.Object
}

// CenterX returns the horizontal center of the box.
func (o *ObjectData) CenterX() float64 { return o.X + o.W/2 }

// CenterY returns the vertical center of the box.
func (o *ObjectData) CenterY() float64 { return o.Y + o.H/2 }

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
