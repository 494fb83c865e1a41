package system

import (
	"math/rand/v2"

	"github.com/milk9111/superanimalrun/common"
	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/ecs/entity"
	"github.com/milk9111/superanimalrun/tuning"
)

const (
	stompBounce     = 0.6
	bossStompBounce = 0.7

	bossDefeatedMessage = "Boss defeated! Head for the flag!"
)

// CombatSystem resolves player contact with enemies and the boss. Landing on
// top while falling is a stomp; any other contact hurts the player.
type CombatSystem struct {
	cfg *tuning.Config
	rng *rand.Rand
}

func NewCombatSystem(cfg *tuning.Config, rng *rand.Rand) *CombatSystem {
	return &CombatSystem{cfg: cfg, rng: rng}
}

// isStomp reports whether a falling player's feet are above the target's
// midpoint plus tolerance.
func isStomp(playerY, playerH, vy, targetY, targetH, tolerance float64) bool {
	return vy > 0 && playerY+playerH < targetY+targetH/2+tolerance
}

func (s *CombatSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	p, ok := findPlayer(w)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, t *component.Transform) {
		if !enemy.Alive || s.playerShielded(w, p) {
			return
		}
		if !p.bb().Intersects(hitBB(t.X, t.Y, enemy.Width, enemy.Height, s.cfg.Enemy.HitInset)) {
			return
		}
		if !isStomp(p.t.Y, p.player.Height, p.v.Y, t.Y, enemy.Height, s.cfg.Enemy.StompTolerance) {
			hurtPlayer(w, s.cfg, s.rng, p)
			return
		}
		enemy.Alive = false
		p.v.Y = s.cfg.Player.JumpForce * stompBounce
		addScore(w, s.cfg.Score.Stomp)
		cx, cy := t.Center(enemy.Width, enemy.Height)
		entity.SpawnBurst(w, s.rng, cx, cy, common.EnemyColor(enemy.Kind), 12)
		requestShake(w, s.cfg.Shake.Stomp)
		w.Events().Push(ecs.Event{Type: ecs.EventStomp, Data: enemy.Kind})
	})

	ecs.ForEach2(w, component.BossComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, boss *component.Boss, t *component.Transform) {
		if !boss.Alive || s.playerShielded(w, p) {
			return
		}
		if !p.bb().Intersects(hitBB(t.X, t.Y, boss.Width, boss.Height, s.cfg.Boss.HitInset)) {
			return
		}
		if !isStomp(p.t.Y, p.player.Height, p.v.Y, t.Y, boss.Height, s.cfg.Boss.StompTolerance) {
			hurtPlayer(w, s.cfg, s.rng, p)
			return
		}
		s.stompBoss(w, p, boss, t)
	})
}

func (s *CombatSystem) stompBoss(w *ecs.World, p playerRefs, boss *component.Boss, t *component.Transform) {
	boss.HP--
	boss.HitTimer = s.cfg.Boss.HitFlashFrames
	p.v.Y = s.cfg.Player.JumpForce * bossStompBounce
	requestShake(w, s.cfg.Shake.BossHit)
	entity.SpawnBurst(w, s.rng, t.X+boss.Width/2, t.Y, common.TextPink, 10)
	addScore(w, s.cfg.Score.BossHit)
	w.Events().Emit(ecs.EventBossHit)

	if boss.HP > 0 {
		return
	}
	boss.HP = 0
	boss.Alive = false
	addScore(w, s.cfg.Score.BossDefeat)
	requestShake(w, s.cfg.Shake.BossDefeat)
	cx, cy := t.Center(boss.Width, boss.Height)
	entity.SpawnBurst(w, s.rng, cx, cy, common.BossColor(boss.Kind), 30)
	entity.SpawnBurst(w, s.rng, cx, cy, common.TextYellow, 20)
	setMessage(w, bossDefeatedMessage)
	w.Events().Emit(ecs.EventBossDefeat)
}

// playerShielded reports whether contact damage and stomps are skipped this
// frame: the player is invulnerable or the run has ended.
func (s *CombatSystem) playerShielded(w *ecs.World, p playerRefs) bool {
	if run, ok := ecs.Singleton(w, component.RunComponent.Kind()); ok && run.Over {
		return true
	}
	inv, ok := ecs.Get(w, p.entity, component.InvulnerableComponent.Kind())
	return ok && inv.Active()
}
