package system

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/superanimalrun/common"
	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/ecs/entity"
	"github.com/milk9111/superanimalrun/tuning"
)

// GoalSystem clears the level when the player reaches the flag. The flag is
// inert while any boss is alive.
type GoalSystem struct {
	cfg *tuning.Config
	rng *rand.Rand
}

func NewGoalSystem(cfg *tuning.Config, rng *rand.Rand) *GoalSystem {
	return &GoalSystem{cfg: cfg, rng: rng}
}

func (s *GoalSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	run, ok := ecs.Singleton(w, component.RunComponent.Kind())
	if !ok || run.Cleared || run.Over {
		return
	}
	if bossAlive(w) {
		return
	}
	p, ok := findPlayer(w)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.GoalComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, goal *component.Goal, t *component.Transform) {
		if run.Cleared || !p.bb().Intersects(rectBB(t.X, t.Y, goal.Width, goal.Height)) {
			return
		}
		run.Cleared = true
		run.Score += s.cfg.Score.Goal
		run.Message = fmt.Sprintf("Level %d complete! SPACE to continue", run.Level)
		cx, cy := t.Center(goal.Width, goal.Height)
		entity.SpawnBurst(w, s.rng, cx, cy, common.TextYellow, 30)
		w.Events().Emit(ecs.EventLevelWin)
	})
}

func bossAlive(w *ecs.World) bool {
	alive := false
	ecs.ForEach(w, component.BossComponent.Kind(), func(_ ecs.Entity, boss *component.Boss) {
		alive = alive || boss.Alive
	})
	return alive
}
