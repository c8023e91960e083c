package systems

import (
	"github.com/automoto/housewalk/components"
	cfg "github.com/automoto/housewalk/config"
	"github.com/automoto/housewalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var bubbleDrawOp = &ebiten.DrawImageOptions{}

// UpdateSpeechBubble shows the bubble above whatever the player is pushing
// against and hides it once its deadline passes. Every touching tick moves the
// deadline forward, so the bubble stays up for as long as contact continues.
// Must run AFTER UpdateCollisions.
func UpdateSpeechBubble(ecs *ecs.ECS) {
	bubbleEntry, ok := tags.Bubble.First(ecs.World)
	if !ok {
		return
	}
	bubble := components.SpeechBubble.Get(bubbleEntry)
	tick := CurrentTick(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Touching == nil || !physics.Touching.HasTags(tags.ResolvInteractive) {
			return
		}
		target, ok := physics.Touching.Data.(*donburi.Entry)
		if !ok || !target.Valid() || !target.HasComponent(components.Interactive) {
			return
		}
		ShowSpeechBubble(bubble, components.Interactive.Get(target), target, tick)
	})

	if bubble.Visible && tick >= bubble.HiddenAtTick {
		HideSpeechBubble(bubble)
	}

	updateBubblePop(bubble)
}

// ShowSpeechBubble moves the bubble above the object, reveals it and sets it to
// hide DisplaySeconds after tick.
func ShowSpeechBubble(bubble *components.SpeechBubbleData, target *components.InteractiveData, source *donburi.Entry, tick int64) {
	wasVisible := bubble.Visible && bubble.Source == source

	bubble.X = target.X
	bubble.Y = target.Y - target.SpriteHeight
	bubble.Visible = true
	bubble.Source = source
	bubble.HiddenAtTick = tick + int64(cfg.TicksFor(cfg.Bubble.DisplaySeconds))

	if !wasVisible {
		bubble.Pop = gween.New(cfg.Bubble.PopStartScale, 1, float32(cfg.Bubble.PopSeconds), ease.OutBack)
		bubble.PopScale = cfg.Bubble.PopStartScale
	}
}

// HideSpeechBubble hides the bubble. Hiding an already hidden bubble is a no-op.
func HideSpeechBubble(bubble *components.SpeechBubbleData) {
	bubble.Visible = false
	bubble.Source = nil
	bubble.Pop = nil
	bubble.PopScale = 1
}

func updateBubblePop(bubble *components.SpeechBubbleData) {
	if bubble.Pop == nil {
		return
	}
	scale, finished := bubble.Pop.Update(1 / float32(cfg.C.TPS))
	bubble.PopScale = scale
	if finished {
		bubble.Pop = nil
		bubble.PopScale = 1
	}
}

// DrawSpeechBubble renders the bubble centered on its position at the configured
// display size, regardless of the source image size.
func DrawSpeechBubble(ecs *ecs.ECS, screen *ebiten.Image) {
	bubbleEntry, ok := tags.Bubble.First(ecs.World)
	if !ok {
		return
	}
	bubble := components.SpeechBubble.Get(bubbleEntry)
	if !bubble.Visible || bubble.Image == nil {
		return
	}

	w := float64(bubble.Image.Bounds().Dx())
	h := float64(bubble.Image.Bounds().Dy())
	scale := float64(bubble.PopScale)

	bubbleDrawOp.GeoM.Reset()
	bubbleDrawOp.GeoM.Translate(-w/2, -h/2)
	bubbleDrawOp.GeoM.Scale(cfg.Bubble.DisplayWidth/w*scale, cfg.Bubble.DisplayHeight/h*scale)
	bubbleDrawOp.GeoM.Translate(bubble.X, bubble.Y)
	screen.DrawImage(bubble.Image, bubbleDrawOp)
}
