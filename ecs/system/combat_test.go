package system

import (
	"testing"

	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/ecs/entity"
)

func TestCombatStompOrHurt(t *testing.T) {
	cases := []struct {
		name         string
		playerY      float64
		vy           float64
		invulnerable int
		wantAlive    bool
		wantLives    int
		wantScore    int
	}{
		{"stomp_from_above", 366, 3, 0, false, 3, 50},
		{"side_contact_hurts", 392, 0, 0, true, 2, 0},
		{"rising_into_enemy_hurts", 366, -2, 0, true, 2, 0},
		{"invulnerable_ignored", 392, 0, 10, true, 3, 0},
		{"falling_feet_at_midpoint_tolerance_hurts", 381, 3, 0, true, 2, 0},
		{"falling_feet_just_above_tolerance_stomps", 380.5, 3, 0, false, 3, 50},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, cfg, rng := newTestWorld(t)
			e := addEnemy(t, w, cfg, component.EnemySnake, 300, 392, 1.2)
			p := addPlayer(t, w, cfg, 300, c.playerY)
			p.v.Y = c.vy
			inv := mustGet(t, w, p.entity, component.InvulnerableComponent)
			inv.Frames = c.invulnerable

			NewCombatSystem(cfg, rng).Update(w)

			enemy := mustGet(t, w, e, component.EnemyComponent)
			run := mustRun(t, w)
			if enemy.Alive != c.wantAlive {
				t.Fatalf("expected alive=%v, got %v", c.wantAlive, enemy.Alive)
			}
			if run.Lives != c.wantLives {
				t.Fatalf("expected %d lives, got %d", c.wantLives, run.Lives)
			}
			if run.Score != c.wantScore {
				t.Fatalf("expected score %d, got %d", c.wantScore, run.Score)
			}
			if !c.wantAlive && p.v.Y != cfg.Player.JumpForce*stompBounce {
				t.Fatalf("expected stomp bounce, got vy %v", p.v.Y)
			}
			if c.wantLives < 3 && inv.Frames != cfg.Player.InvincibleFrames {
				t.Fatalf("expected invincibility after a hit, got %d", inv.Frames)
			}
		})
	}
}

func TestLosingLastLifeEndsRunOnce(t *testing.T) {
	w, cfg, rng := newTestWorld(t)
	addEnemy(t, w, cfg, component.EnemySnake, 300, 392, 1.2)
	p := addPlayer(t, w, cfg, 300, 392)
	run := mustRun(t, w)
	run.Lives = 1

	combat := NewCombatSystem(cfg, rng)
	combat.Update(w)
	combat.Update(w)
	hurtPlayer(w, cfg, rng, p)

	if !run.Over || run.Lives != 0 {
		t.Fatalf("expected run over with 0 lives, got %+v", *run)
	}
	if n := countEvents(w.Events().Drain(), ecs.EventGameOver); n != 1 {
		t.Fatalf("expected one game over event, got %d", n)
	}
}

func TestStompingBossAtOneHP(t *testing.T) {
	w, cfg, rng := newTestWorld(t)
	e := addBoss(t, w, cfg, 1000, 366, 1)
	p := addPlayer(t, w, cfg, 1010, 345)
	p.v.Y = 4
	run := mustRun(t, w)
	run.Score = 500

	NewCombatSystem(cfg, rng).Update(w)

	boss := mustGet(t, w, e, component.BossComponent)
	if boss.Alive || boss.HP != 0 {
		t.Fatalf("expected boss defeated, got %+v", *boss)
	}
	if run.Score != 725 {
		t.Fatalf("expected score 725, got %d", run.Score)
	}
	if run.Message != bossDefeatedMessage {
		t.Fatalf("expected defeat message, got %q", run.Message)
	}
	if n := ecs.Count(w, component.ParticleComponent.Kind()); n != 60 {
		t.Fatalf("expected 60 particles, got %d", n)
	}
	events := w.Events().Drain()
	if countEvents(events, ecs.EventBossHit) != 1 || countEvents(events, ecs.EventBossDefeat) != 1 {
		t.Fatalf("expected boss hit and defeat events, got %+v", events)
	}
}

func TestStompingBossWithHPLeft(t *testing.T) {
	w, cfg, rng := newTestWorld(t)
	e := addBoss(t, w, cfg, 1000, 366, 3)
	p := addPlayer(t, w, cfg, 1010, 345)
	p.v.Y = 4

	NewCombatSystem(cfg, rng).Update(w)

	boss := mustGet(t, w, e, component.BossComponent)
	if !boss.Alive || boss.HP != 2 || boss.HitTimer != cfg.Boss.HitFlashFrames {
		t.Fatalf("unexpected boss state %+v", *boss)
	}
	if got := mustRun(t, w).Score; got != cfg.Score.BossHit {
		t.Fatalf("expected score %d, got %d", cfg.Score.BossHit, got)
	}
	if p.v.Y != cfg.Player.JumpForce*bossStompBounce {
		t.Fatalf("expected boss bounce, got %v", p.v.Y)
	}
}

func TestBossStompNeedsFeetAboveMidpoint(t *testing.T) {
	cases := []struct {
		name      string
		playerY   float64
		wantHP    int
		wantLives int
	}{
		{"feet_at_tolerance_hurts", 370, 3, 2},
		{"feet_just_above_tolerance_stomps", 369.5, 2, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, cfg, rng := newTestWorld(t)
			e := addBoss(t, w, cfg, 1000, 366, 3)
			p := addPlayer(t, w, cfg, 1010, c.playerY)
			p.v.Y = 4

			NewCombatSystem(cfg, rng).Update(w)

			boss := mustGet(t, w, e, component.BossComponent)
			if boss.HP != c.wantHP {
				t.Fatalf("expected boss hp %d, got %d", c.wantHP, boss.HP)
			}
			if lives := mustRun(t, w).Lives; lives != c.wantLives {
				t.Fatalf("expected %d lives, got %d", c.wantLives, lives)
			}
		})
	}
}

func TestGoalBlockedWhileBossAlive(t *testing.T) {
	w, cfg, rng := newTestWorld(t)
	boss := mustGet(t, w, addBoss(t, w, cfg, 2850, 362, 4), component.BossComponent)
	if _, err := entity.NewGoal(w, *cfg, 3050, 354); err != nil {
		t.Fatalf("goal: %v", err)
	}
	addPlayer(t, w, cfg, 3055, 380)
	goal := NewGoalSystem(cfg, rng)
	run := mustRun(t, w)

	for i := 0; i < 5; i++ {
		goal.Update(w)
	}
	if run.Cleared || run.Score != 0 {
		t.Fatalf("flag must not trigger while the boss lives, got %+v", *run)
	}

	boss.Alive = false
	goal.Update(w)
	goal.Update(w)
	if !run.Cleared || run.Score != cfg.Score.Goal {
		t.Fatalf("expected cleared level with flag bonus once, got %+v", *run)
	}
	if n := countEvents(w.Events().Drain(), ecs.EventLevelWin); n != 1 {
		t.Fatalf("expected one level win event, got %d", n)
	}
}

func TestPickupCollectsOnce(t *testing.T) {
	w, cfg, rng := newTestWorld(t)
	c, err := entity.NewCoin(w, 205, 300, 16, 0)
	if err != nil {
		t.Fatalf("coin: %v", err)
	}
	addPlayer(t, w, cfg, 200, 290)
	pickup := NewPickupSystem(cfg, rng)
	pickup.Update(w)
	pickup.Update(w)

	run := mustRun(t, w)
	if run.Coins != 1 || run.Score != cfg.Score.Coin {
		t.Fatalf("expected one coin worth %d, got %+v", cfg.Score.Coin, *run)
	}
	if !mustGet(t, w, c, component.CoinComponent).Collected {
		t.Fatalf("coin should be collected")
	}
}
