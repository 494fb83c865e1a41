package system

import (
	"github.com/milk9111/superanimalrun/common"
	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/tuning"
)

const (
	landingRebound   = 1.2
	reboundThreshold = 0.8
	// ceilingBounce is the downward speed after bumping a platform from below.
	ceilingBounce = 1
)

// PhysicsSystem moves every PhysicsBody under gravity and resolves it against
// the static platforms. Ground enemies get no ledge detection: they walk off
// edges and die once they drop below the level.
type PhysicsSystem struct {
	cfg       *tuning.Config
	platforms []platformRect
}

type platformRect struct {
	x, y, w, h float64
}

func NewPhysicsSystem(cfg *tuning.Config) *PhysicsSystem {
	return &PhysicsSystem{cfg: cfg}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	s.platforms = s.platforms[:0]
	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Platform, t *component.Transform) {
		s.platforms = append(s.platforms, platformRect{x: t.X, y: t.Y, w: p.Width, h: p.Height})
	})

	bounds := levelBounds(w, s.cfg)

	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody) {
		if !bodyActive(w, e) {
			return
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
		if !ok {
			return
		}

		v.Y += s.cfg.Physics.Gravity
		if v.Y > body.MaxFall {
			v.Y = body.MaxFall
		}

		wasOnGround := body.OnGround
		body.OnGround = false
		body.Landed = false

		// The vertical pass runs against the pre-move x.
		t.Y += v.Y
		for _, p := range s.platforms {
			s.resolveVertical(body, t, v, p)
		}
		t.X += v.X
		for _, p := range s.platforms {
			s.resolveSides(body, t, v, p)
		}
		if body.OnGround && !wasOnGround {
			body.Landed = true
		}
		if body.OnGround {
			if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
				player.Jumping = false
				if player.Squash < reboundThreshold {
					player.Squash = landingRebound
				}
			}
		}

		switch {
		case body.ClampToLevel:
			if t.X < 0 {
				t.X = 0
			}
			if t.X > bounds.Width-body.Width {
				t.X = bounds.Width - body.Width
			}
		case body.TurnAtWalls:
			if t.X < 0 {
				t.X = 0
				v.X = common.Abs(v.X)
			}
			if t.X > bounds.Width-body.Width {
				t.X = bounds.Width - body.Width
				v.X = -common.Abs(v.X)
			}
		}

		if bounds.Beneath(t.Y, body.FallMargin) {
			s.fellOut(w, e)
		}
	})
}

func (s *PhysicsSystem) resolveVertical(body *component.PhysicsBody, t *component.Transform, v *component.Velocity, p platformRect) {
	if t.X+body.Width <= p.x || t.X >= p.x+p.w {
		return
	}
	if feet := t.Bottom(body.Height); v.Y >= 0 && feet > p.y && feet < p.y+p.h+s.cfg.Physics.LandBand {
		t.Y = p.y - body.Height
		v.Y = 0
		body.OnGround = true
		return
	}
	if body.BlockCeiling && v.Y < 0 && t.Y < p.y+p.h && t.Y > p.y {
		t.Y = p.y + p.h
		v.Y = ceilingBounce
	}
}

func (s *PhysicsSystem) resolveSides(body *component.PhysicsBody, t *component.Transform, v *component.Velocity, p platformRect) {
	if body.WallBand <= 0 {
		return
	}
	side := s.cfg.Physics.SideBand
	if t.Bottom(body.Height) <= p.y+side || t.Y >= p.y+p.h-side {
		return
	}
	if v.X > 0 && t.X+body.Width > p.x && t.X+body.Width < p.x+body.WallBand {
		t.X = p.x - body.Width
		if body.TurnAtWalls {
			v.X = -v.X
		}
		return
	}
	if v.X < 0 && t.X < p.x+p.w && t.X > p.x+p.w-body.WallBand {
		t.X = p.x + p.w
		if body.TurnAtWalls {
			v.X = -v.X
		}
	}
}

// fellOut handles enemies and the boss dropping out of the world. The player
// is left to the safe respawn system.
func (s *PhysicsSystem) fellOut(w *ecs.World, e ecs.Entity) {
	if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
		enemy.Alive = false
		return
	}
	if boss, ok := ecs.Get(w, e, component.BossComponent.Kind()); ok && boss.Alive {
		boss.Alive = false
		addScore(w, s.cfg.Score.BossDefeat)
		setMessage(w, bossDefeatedMessage)
		w.Events().Emit(ecs.EventBossDefeat)
	}
}

// bodyActive reports whether e still takes part in the simulation. Dead
// enemies and bosses keep their components but are frozen.
func bodyActive(w *ecs.World, e ecs.Entity) bool {
	if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok && !enemy.Alive {
		return false
	}
	if boss, ok := ecs.Get(w, e, component.BossComponent.Kind()); ok && !boss.Alive {
		return false
	}
	return true
}
