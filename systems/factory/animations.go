package factory

import (
	"fmt"

	"github.com/automoto/housewalk/assets"
	"github.com/automoto/housewalk/assets/animations"
	"github.com/automoto/housewalk/components"
	cfg "github.com/automoto/housewalk/config"
)

// CharacterNaming is the frame naming convention of the character atlas.
func CharacterNaming() animations.Naming {
	return animations.Naming{
		Prefix:  cfg.Animation.FramePrefix,
		Suffix:  cfg.Animation.FrameSuffix,
		ZeroPad: cfg.Animation.ZeroPad,
	}
}

// GenerateAnimations registers every character clip against the atlas. All clips
// share the configured frame rate and loop forever. Panics if the atlas lacks a frame
// any clip or still frame refers to.
func GenerateAnimations(atlas *assets.Atlas) *components.AnimationData {
	naming := CharacterNaming()
	speed := animations.TicksPerFrame(cfg.Animation.FrameRate, cfg.C.TPS)

	animData := &components.AnimationData{
		Atlas:      atlas,
		Naming:     naming,
		Animations: make(map[cfg.AnimationID]*animations.Animation, len(cfg.CharacterAnimations)),
	}

	for id, def := range cfg.CharacterAnimations {
		for _, name := range animations.GenerateFrameNames(naming.Prefix, def.First, def.Last, naming.ZeroPad, naming.Suffix) {
			if !atlas.Data.Has(name) {
				panic(fmt.Sprintf("Animation %s: frame %s not found in atlas", id, name))
			}
		}
		animData.Animations[id] = animations.NewAnimation(def.First, def.Last, def.Step, speed)
	}

	for id, n := range cfg.StillFrames {
		if name := naming.Name(n); !atlas.Data.Has(name) {
			panic(fmt.Sprintf("Still frame for %s: frame %s not found in atlas", id, name))
		}
	}

	return animData
}
