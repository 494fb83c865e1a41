package system

import (
	"math/rand/v2"

	"github.com/milk9111/superanimalrun/common"
	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/ecs/entity"
	"github.com/milk9111/superanimalrun/tuning"
)

type PickupSystem struct {
	cfg *tuning.Config
	rng *rand.Rand
}

func NewPickupSystem(cfg *tuning.Config, rng *rand.Rand) *PickupSystem {
	return &PickupSystem{cfg: cfg, rng: rng}
}

func (s *PickupSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	p, ok := findPlayer(w)
	if !ok {
		return
	}
	run, ok := ecs.Singleton(w, component.RunComponent.Kind())
	if !ok {
		return
	}
	playerBB := p.bb()

	ecs.ForEach2(w, component.CoinComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, coin *component.Coin, t *component.Transform) {
		if coin.Collected || !playerBB.Intersects(rectBB(t.X, t.Y, coin.Width, coin.Height)) {
			return
		}
		coin.Collected = true
		run.Coins++
		run.Score += s.cfg.Score.Coin
		cx, cy := t.Center(coin.Width, coin.Height)
		entity.SpawnBurst(w, s.rng, cx, cy, common.Coin, 8)
		w.Events().Emit(ecs.EventCoin)
	})
}
