package components

import (
	"github.com/automoto/housewalk/assets"
	"github.com/automoto/housewalk/assets/animations"
	"github.com/automoto/housewalk/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Atlas            *assets.Atlas
	Naming           animations.Naming
	Animations       map[config.AnimationID]*animations.Animation
	CurrentAnimation *animations.Animation
	Current          config.AnimationID
	Playing          bool
	FrameName        string // atlas frame drawn this tick
}

// Play switches to the given clip. Asking for the clip that is already playing
// leaves its frame and timer untouched.
func (a *AnimationData) Play(id config.AnimationID) {
	if a.Playing && a.Current == id && a.CurrentAnimation != nil {
		return
	}

	anim, ok := a.Animations[id]
	if !ok {
		return
	}
	a.CurrentAnimation = anim
	a.Current = id
	a.Playing = true
	anim.Restart()
	a.FrameName = a.Naming.Name(anim.Frame())
}

// Stop freezes playback on whatever frame is showing.
func (a *AnimationData) Stop() {
	a.Playing = false
}

// SetFrame shows a specific atlas frame number without touching the current clip.
func (a *AnimationData) SetFrame(n int) {
	a.FrameName = a.Naming.Name(n)
}

// Advance ticks the current clip if it is playing.
func (a *AnimationData) Advance() {
	if !a.Playing || a.CurrentAnimation == nil {
		return
	}
	a.CurrentAnimation.Update()
	a.FrameName = a.Naming.Name(a.CurrentAnimation.Frame())
}

var Animation = donburi.NewComponentType[AnimationData]()
