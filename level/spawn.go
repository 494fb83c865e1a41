package level

import (
	"fmt"

	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/ecs/entity"
	"github.com/milk9111/superanimalrun/tuning"
)

// Spawn populates w with every entity described by layout plus the player,
// camera, level bounds and the run scoreboard.
func Spawn(w *ecs.World, cfg tuning.Config, layout Layout, run component.Run) error {
	if w == nil {
		return fmt.Errorf("level: spawn: nil world")
	}
	run.Level = layout.Level

	if _, err := entity.NewRun(w, run); err != nil {
		return fmt.Errorf("level: spawn: %w", err)
	}
	if _, err := entity.NewLevelBounds(w, layout.Width, layout.Height); err != nil {
		return fmt.Errorf("level: spawn: %w", err)
	}
	if _, err := entity.NewCamera(w, cfg); err != nil {
		return fmt.Errorf("level: spawn: %w", err)
	}

	for _, s := range layout.Stars {
		if _, err := entity.NewStar(w, s); err != nil {
			return fmt.Errorf("level: spawn: %w", err)
		}
	}
	for _, m := range layout.Mountains {
		if _, err := entity.NewMountain(w, m); err != nil {
			return fmt.Errorf("level: spawn: %w", err)
		}
	}
	for _, c := range layout.Clouds {
		if _, err := entity.NewCloud(w, c); err != nil {
			return fmt.Errorf("level: spawn: %w", err)
		}
	}

	for _, p := range layout.Platforms {
		if _, err := entity.NewPlatform(w, p.Kind, p.X, p.Y, p.W, p.H); err != nil {
			return fmt.Errorf("level: spawn: %w", err)
		}
	}
	for _, c := range layout.Coins {
		if _, err := entity.NewCoin(w, c.X, c.Y, coinSize, c.Phase); err != nil {
			return fmt.Errorf("level: spawn: %w", err)
		}
	}
	for _, e := range layout.Enemies {
		if _, err := entity.NewEnemy(w, cfg, entity.EnemyOpts{
			Kind:        e.Kind,
			X:           e.X,
			Y:           e.Y,
			VX:          e.VX,
			PatrolRange: e.PatrolRange,
			AnimTimer:   e.AnimTimer,
		}); err != nil {
			return fmt.Errorf("level: spawn: %w", err)
		}
	}
	if _, err := entity.NewBoss(w, cfg, entity.BossOpts{
		Kind:        layout.Boss.Kind,
		X:           layout.Boss.X,
		Y:           layout.Boss.Y,
		HP:          layout.Boss.HP,
		PatrolSpeed: layout.Boss.PatrolSpeed,
		ChargeSpeed: layout.Boss.ChargeSpeed,
	}); err != nil {
		return fmt.Errorf("level: spawn: %w", err)
	}
	if _, err := entity.NewGoal(w, cfg, layout.Goal.X, layout.Goal.Y); err != nil {
		return fmt.Errorf("level: spawn: %w", err)
	}
	if _, err := entity.NewPlayer(w, cfg); err != nil {
		return fmt.Errorf("level: spawn: %w", err)
	}
	return nil
}
