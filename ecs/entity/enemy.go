package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/tuning"
)

// EnemyOpts describes one spawned animal.
type EnemyOpts struct {
	Kind        component.EnemyKind
	X           float64
	Y           float64
	VX          float64
	PatrolRange float64
	AnimTimer   float64
}

// NewEnemy builds an animal. Ground walkers get a physics body with no ledge
// detection; flyers move kinematically under their AI.
func NewEnemy(w *ecs.World, cfg tuning.Config, opts EnemyOpts) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	err := firstErr(
		attach(w, e, component.EnemyComponent, &component.Enemy{
			Kind:        opts.Kind,
			Width:       cfg.Enemy.Width,
			Height:      cfg.Enemy.Height,
			Alive:       true,
			StartX:      opts.X,
			StartY:      opts.Y,
			PatrolRange: opts.PatrolRange,
			AnimTimer:   opts.AnimTimer,
		}, "enemy"),
		attach(w, e, component.TransformComponent, &component.Transform{X: opts.X, Y: opts.Y}, "enemy"),
		attach(w, e, component.VelocityComponent, &component.Velocity{Vector: cp.Vector{X: opts.VX}}, "enemy"),
	)
	if err != nil {
		return e, err
	}

	if opts.Kind.Aerial() {
		return e, nil
	}

	return e, attach(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width:       cfg.Enemy.Width,
		Height:      cfg.Enemy.Height,
		MaxFall:     cfg.Enemy.MaxFall,
		WallBand:    cfg.Enemy.WallBand,
		TurnAtWalls: true,
		FallMargin:  cfg.Enemy.FallMargin,
	}, "enemy")
}

// BossOpts describes the level guardian.
type BossOpts struct {
	Kind        component.BossKind
	X           float64
	Y           float64
	HP          int
	PatrolSpeed float64
	ChargeSpeed float64
}

func NewBoss(w *ecs.World, cfg tuning.Config, opts BossOpts) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	return e, firstErr(
		attach(w, e, component.BossComponent, &component.Boss{
			Kind:        opts.Kind,
			Width:       cfg.Boss.Width,
			Height:      cfg.Boss.Height,
			Alive:       true,
			HP:          opts.HP,
			MaxHP:       opts.HP,
			StartX:      opts.X,
			PatrolRange: cfg.Boss.PatrolRange,
			PatrolSpeed: opts.PatrolSpeed,
			ChargeSpeed: opts.ChargeSpeed,
		}, "boss"),
		attach(w, e, component.TransformComponent, &component.Transform{X: opts.X, Y: opts.Y}, "boss"),
		attach(w, e, component.VelocityComponent, &component.Velocity{Vector: cp.Vector{X: opts.PatrolSpeed}}, "boss"),
		attach(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
			Width:       cfg.Boss.Width,
			Height:      cfg.Boss.Height,
			MaxFall:     cfg.Enemy.MaxFall,
			TurnAtWalls: true,
			FallMargin:  cfg.Enemy.FallMargin,
		}, "boss"),
	)
}
