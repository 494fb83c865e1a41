package system

import (
	"math/rand/v2"

	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/tuning"
)

// SafeRespawnSystem remembers where the player last stood on solid ground and
// puts them back there after a fall into a pit, costing a life.
type SafeRespawnSystem struct {
	cfg *tuning.Config
	rng *rand.Rand
}

func NewSafeRespawnSystem(cfg *tuning.Config, rng *rand.Rand) *SafeRespawnSystem {
	return &SafeRespawnSystem{cfg: cfg, rng: rng}
}

func (s *SafeRespawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	p, ok := findPlayer(w)
	if !ok {
		return
	}
	safe, ok := ecs.Get(w, p.entity, component.SafeRespawnComponent.Kind())
	if !ok {
		return
	}

	if p.body.OnGround {
		safe.Record(p.t.X, p.t.Y)
		return
	}

	if !levelBounds(w, s.cfg).Beneath(p.t.Y, p.body.FallMargin) {
		return
	}
	if run, ok := ecs.Singleton(w, component.RunComponent.Kind()); ok && run.Over {
		return
	}
	if safe.Valid {
		p.t.X, p.t.Y = safe.X, safe.Y
	}
	p.v.X, p.v.Y = 0, 0
	hurtPlayer(w, s.cfg, s.rng, p)
}
