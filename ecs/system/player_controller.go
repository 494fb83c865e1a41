package system

import (
	"github.com/milk9111/superanimalrun/common"
	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/tuning"
)

const (
	jumpSquash     = 0.6
	squashRelax    = 0.15
	walkFrameTicks = 6
	walkFrameCount = 4
)

// PlayerControlSystem turns the sampled input into velocity, facing and
// animation state. It runs before physics.
type PlayerControlSystem struct {
	cfg *tuning.Config
}

func NewPlayerControlSystem(cfg *tuning.Config) *PlayerControlSystem {
	return &PlayerControlSystem{cfg: cfg}
}

func (s *PlayerControlSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	p, ok := findPlayer(w)
	if !ok {
		return
	}
	input, ok := ecs.Get(w, p.entity, component.InputComponent.Kind())
	if !ok {
		return
	}

	p.v.X = 0
	switch {
	case input.MoveX > 0:
		p.v.X = s.cfg.Player.Speed
		p.player.Facing = 1
	case input.MoveX < 0:
		p.v.X = -s.cfg.Player.Speed
		p.player.Facing = -1
	}

	if input.Jump && p.body.OnGround {
		p.v.Y = s.cfg.Player.JumpForce
		p.body.OnGround = false
		p.player.Jumping = true
		p.player.Squash = jumpSquash
		w.Events().Emit(ecs.EventJump)
	}

	p.player.Squash = common.Lerp(p.player.Squash, 1, squashRelax)

	if p.v.X != 0 && p.body.OnGround {
		p.player.WalkTimer++
		if p.player.WalkTimer > walkFrameTicks {
			p.player.WalkTimer = 0
			p.player.WalkFrame = (p.player.WalkFrame + 1) % walkFrameCount
		}
	} else {
		p.player.WalkFrame = 0
	}
}
