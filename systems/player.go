package systems

import (
	"github.com/automoto/housewalk/components"
	cfg "github.com/automoto/housewalk/config"
	"github.com/automoto/housewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Movement is one tick of directional input mapped to motion.
type Movement struct {
	Velocity  components.Vector
	Animation cfg.AnimationID // AnimationNone when no direction is held
}

// ResolveMovement maps held directions to a velocity along at most one axis.
// Priority is left, right, up, down: a horizontal key always wins over a vertical one.
func ResolveMovement(input *components.InputData, speed float64) Movement {
	switch {
	case GetAction(input, cfg.ActionMoveLeft).Pressed:
		return Movement{Velocity: components.Vector{X: cfg.DirectionLeft * speed}, Animation: cfg.IdleLeft}
	case GetAction(input, cfg.ActionMoveRight).Pressed:
		return Movement{Velocity: components.Vector{X: cfg.DirectionRight * speed}, Animation: cfg.IdleRight}
	case GetAction(input, cfg.ActionMoveUp).Pressed:
		return Movement{Velocity: components.Vector{Y: cfg.DirectionUp * speed}, Animation: cfg.IdleUp}
	case GetAction(input, cfg.ActionMoveDown).Pressed:
		return Movement{Velocity: components.Vector{Y: cfg.DirectionDown * speed}, Animation: cfg.IdleDown}
	}
	return Movement{Animation: cfg.AnimationNone}
}

func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(input, playerEntry)
	})
}

func updateSinglePlayer(input *components.InputData, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	animData := components.Animation.Get(playerEntry)

	move := ResolveMovement(input, player.Speed)
	physics.Velocity = move.Velocity

	if move.Animation != cfg.AnimationNone {
		animData.Play(move.Animation)
		player.Facing = move.Animation
		return
	}

	// Standing still: freeze on the frame for the last direction moved
	animData.Stop()
	if frame, ok := cfg.StillFrames[player.Facing]; ok {
		animData.SetFrame(frame)
	}
}
