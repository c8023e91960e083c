package config

import "fmt"

// AnimationID names one of the character's looping clips.
type AnimationID int

const (
	AnimationNone AnimationID = iota
	IdleUp
	IdleDown
	IdleLeft
	IdleRight
)

var animationKeys = map[AnimationID]string{
	AnimationNone: "none",
	IdleUp:        "idle_up",
	IdleDown:      "idle_down",
	IdleLeft:      "idle_left",
	IdleRight:     "idle_right",
}

func (a AnimationID) String() string {
	if key, ok := animationKeys[a]; ok {
		return key
	}
	return fmt.Sprintf("AnimationID(%d)", int(a))
}

// AnimationDef is an inclusive frame-number range inside the character atlas.
type AnimationDef struct {
	First int
	Last  int
	Step  int
}

// CharacterAnimations maps each clip to its range of Adam_idle_anim_<n>.png frames.
var CharacterAnimations = map[AnimationID]AnimationDef{
	IdleRight: {First: 1, Last: 6, Step: 1},
	IdleUp:    {First: 7, Last: 12, Step: 1},
	IdleLeft:  {First: 13, Last: 18, Step: 1},
	IdleDown:  {First: 19, Last: 24, Step: 1},
}

// StillFrames is the frame shown when the player stops, keyed by the clip of the
// last direction moved.
var StillFrames = map[AnimationID]int{
	IdleRight: 1,
	IdleUp:    7,
	IdleLeft:  13,
	IdleDown:  19,
}

// DefaultAnimation is the clip playing when the scene starts.
const DefaultAnimation = IdleDown
