package entity

import (
	"fmt"

	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/tuning"
)

// PlayerSpawn returns the start position: near the left edge, just above the
// ground strip.
func PlayerSpawn(cfg tuning.Config) (float64, float64) {
	return cfg.Player.SpawnX, cfg.GroundY() - cfg.Player.Height - 10
}

func NewPlayer(w *ecs.World, cfg tuning.Config) (ecs.Entity, error) {
	x, y := PlayerSpawn(cfg)
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
		Facing: 1,
		Squash: 1,
	}); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:        cfg.Player.Width,
		Height:       cfg.Player.Height,
		MaxFall:      cfg.Player.MaxFall,
		WallBand:     cfg.Player.WallBand,
		BlockCeiling: true,
		ClampToLevel: true,
		FallMargin:   cfg.Player.FallMargin,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, entity, component.InvulnerableComponent.Kind(), &component.Invulnerable{}); err != nil {
		return 0, fmt.Errorf("player: add invulnerable: %w", err)
	}

	if err := ecs.Add(w, entity, component.SafeRespawnComponent.Kind(), &component.SafeRespawn{X: x, Y: y, Valid: true}); err != nil {
		return 0, fmt.Errorf("player: add safe respawn: %w", err)
	}

	return entity, nil
}
