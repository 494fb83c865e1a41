package system

import (
	"math/rand/v2"

	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/tuning"
)

// NewGameplayScheduler wires the per-frame systems in order: input, AI,
// physics, falls, contacts, the goal check, timers, effects and the camera.
func NewGameplayScheduler(cfg *tuning.Config, rng *rand.Rand) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewPlayerControlSystem(cfg),
		NewEnemyAISystem(cfg, rng),
		NewBossAISystem(cfg, rng),
		NewPhysicsSystem(cfg),
		NewSafeRespawnSystem(cfg, rng),
		NewPickupSystem(cfg, rng),
		NewCombatSystem(cfg, rng),
		NewGoalSystem(cfg, rng),
		NewInvulnerableSystem(),
		NewParticleSystem(),
		NewTTLSystem(),
		NewCameraSystem(cfg),
	)
}
