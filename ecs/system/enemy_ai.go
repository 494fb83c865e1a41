package system

import (
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/superanimalrun/common"
	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/tuning"
)

const (
	animStep       = 0.05
	eagleBobRate   = 2
	batZigzagRate  = 3
	eagleGroundGap = 30
	batGroundGap   = 10
)

// enemyContext carries what a behavior needs besides the enemy itself.
type enemyContext struct {
	cfg       *tuning.Config
	rng       *rand.Rand
	player    playerRefs
	hasPlayer bool
}

type enemyBehavior func(ctx *enemyContext, enemy *component.Enemy, t *component.Transform, v *component.Velocity)

// enemyBehaviors is indexed by kind. Ground walkers only animate here; the
// physics system moves them and turns them at walls.
var enemyBehaviors = [component.EnemyKindCount]enemyBehavior{
	component.EnemySnake: walkerBehavior,
	component.EnemyEagle: eagleBehavior,
	component.EnemyBoar:  walkerBehavior,
	component.EnemyBat:   batBehavior,
}

type EnemyAISystem struct {
	cfg *tuning.Config
	rng *rand.Rand
}

func NewEnemyAISystem(cfg *tuning.Config, rng *rand.Rand) *EnemyAISystem {
	return &EnemyAISystem{cfg: cfg, rng: rng}
}

func (s *EnemyAISystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ctx := &enemyContext{cfg: s.cfg, rng: s.rng}
	ctx.player, ctx.hasPlayer = findPlayer(w)

	ecs.ForEach(w, component.EnemyComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy) {
		if !enemy.Alive || enemy.Kind < 0 || enemy.Kind >= component.EnemyKindCount {
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
		enemy.AnimTimer += animStep
		enemyBehaviors[enemy.Kind](ctx, enemy, t, v)
	})
}

func walkerBehavior(*enemyContext, *component.Enemy, *component.Transform, *component.Velocity) {}

// patrol flips the horizontal direction once the enemy strays past its range.
// The new direction always points back toward the start.
func patrol(x, startX, patrolRange float64, v *component.Velocity) {
	switch {
	case x > startX+patrolRange:
		v.X = -common.Abs(v.X)
	case x < startX-patrolRange:
		v.X = common.Abs(v.X)
	}
}

func eagleBehavior(ctx *enemyContext, enemy *component.Enemy, t *component.Transform, v *component.Velocity) {
	cfg := ctx.cfg.Enemy.Eagle
	if !enemy.Diving {
		t.X += v.X
		t.Y = enemy.StartY + math.Sin(enemy.AnimTimer*eagleBobRate)*cfg.BobAmplitude
		patrol(t.X, enemy.StartX, enemy.PatrolRange, v)
		if ctx.hasPlayer && common.Abs(ctx.player.t.X-t.X) < cfg.DiveRange && ctx.player.t.Y > t.Y {
			enemy.Diving = true
			enemy.DiveTimer = 0
		}
		return
	}

	v.Y += cfg.DiveAccel
	t.Y += v.Y
	enemy.DiveTimer++
	if enemy.DiveTimer > cfg.DiveFrames || t.Y > ctx.cfg.GroundY()-eagleGroundGap {
		enemy.Diving = false
		enemy.DiveTimer = 0
		v.Y = 0
		t.Y = enemy.StartY
	}
}

func batBehavior(ctx *enemyContext, enemy *component.Enemy, t *component.Transform, v *component.Velocity) {
	cfg := ctx.cfg.Enemy.Bat
	if !enemy.Diving {
		t.X += v.X
		t.Y = enemy.StartY + math.Sin(enemy.AnimTimer*batZigzagRate)*cfg.ZigzagAmplitude
		patrol(t.X, enemy.StartX, enemy.PatrolRange, v)
		if !ctx.hasPlayer {
			return
		}
		dx := common.Abs(ctx.player.t.X - t.X)
		dy := ctx.player.t.Y - t.Y
		if dx < cfg.DiveRangeX && dy > 0 && dy < cfg.DiveRangeY {
			enemy.Diving = true
			enemy.DiveTimer = 0
			// Aimed once at the trigger position, never re-aimed.
			aim := cp.Vector{X: ctx.player.t.X - t.X, Y: dy}.Normalize().Mult(cfg.DiveSpeed)
			v.Vector = aim
		}
		return
	}

	t.X += v.X
	t.Y += v.Y
	enemy.DiveTimer++
	if enemy.DiveTimer > cfg.DiveFrames || t.Y > ctx.cfg.GroundY()-batGroundGap {
		enemy.Diving = false
		enemy.DiveTimer = 0
		v.Y = 0
		t.Y = enemy.StartY
		v.X = ctx.cfg.Enemy.WalkSpeed
		if ctx.rng.Float64() < 0.5 {
			v.X = -v.X
		}
	}
}
