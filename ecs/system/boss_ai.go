package system

import (
	"math/rand/v2"

	"github.com/milk9111/superanimalrun/common"
	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/tuning"
)

const bossChargeJump = 0.8

// BossAISystem runs the patrol / charge state machine. Gravity, platform
// contact and level-edge turns are left to the physics system.
type BossAISystem struct {
	cfg *tuning.Config
	rng *rand.Rand
}

func NewBossAISystem(cfg *tuning.Config, rng *rand.Rand) *BossAISystem {
	return &BossAISystem{cfg: cfg, rng: rng}
}

func (s *BossAISystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	p, hasPlayer := findPlayer(w)

	ecs.ForEach(w, component.BossComponent.Kind(), func(e ecs.Entity, boss *component.Boss) {
		if !boss.Alive {
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
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())

		boss.AnimTimer += animStep
		if boss.HitTimer > 0 {
			boss.HitTimer--
		}
		if boss.RoarTimer > 0 {
			boss.RoarTimer--
		}
		boss.ChargeTimer++

		cfg := s.cfg.Boss
		if !boss.Charging && hasPlayer && boss.ChargeTimer > cfg.ChargeCooldown &&
			common.Abs(p.t.X-t.X) < cfg.ChargeRange {
			boss.Charging = true
			boss.ChargeTimer = 0
			boss.RoarTimer = cfg.RoarFrames
			dir := -1.0
			if p.t.X > t.X {
				dir = 1
			}
			v.X = dir * boss.ChargeSpeed
			if body != nil && body.OnGround && s.rng.Float64() < cfg.ChargeJumpChance {
				v.Y = s.cfg.Player.JumpForce * bossChargeJump
				body.OnGround = false
			}
			w.Events().Emit(ecs.EventBossRoar)
			return
		}

		if boss.Charging {
			if boss.ChargeTimer > cfg.ChargeFrames {
				boss.Charging = false
				boss.ChargeTimer = 0
				v.X = cfg.ReturnSpeed
				if t.X > boss.StartX {
					v.X = -v.X
				}
			}
			return
		}
		patrol(t.X, boss.StartX, boss.PatrolRange, v)
	})
}
