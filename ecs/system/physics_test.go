package system

import (
	"testing"

	"github.com/milk9111/superanimalrun/ecs/component"
)

func TestPhysicsCapsFallSpeed(t *testing.T) {
	cases := []struct {
		name string
		vy   float64
	}{
		{"at_rest", 0},
		{"near_cap", 11.8},
		{"above_cap", 40},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, cfg, _ := newTestWorld(t)
			p := addPlayer(t, w, cfg, 100, 0)
			p.v.Y = c.vy
			NewPhysicsSystem(cfg).Update(w)
			if p.v.Y > cfg.Player.MaxFall {
				t.Fatalf("vy %v exceeds max fall %v", p.v.Y, cfg.Player.MaxFall)
			}
		})
	}
}

func TestPhysicsLandsExactlyOnTop(t *testing.T) {
	w, cfg, _ := newTestWorld(t)
	addPlatform(t, w, 0, 400, 300, 16)
	p := addPlayer(t, w, cfg, 100, 370)
	p.v.Y = 0
	p.player.Squash = 0.7

	NewPhysicsSystem(cfg).Update(w)

	if p.t.Y+p.player.Height != 400 {
		t.Fatalf("expected feet at 400, got %v", p.t.Y+p.player.Height)
	}
	if p.v.Y != 0 {
		t.Fatalf("expected vy 0, got %v", p.v.Y)
	}
	if !p.body.OnGround || !p.body.Landed {
		t.Fatalf("expected grounded and landed, got %+v", *p.body)
	}
	if p.player.Squash != landingRebound {
		t.Fatalf("expected squash rebound, got %v", p.player.Squash)
	}
}

func TestPhysicsCeilingBump(t *testing.T) {
	w, cfg, _ := newTestWorld(t)
	addPlatform(t, w, 0, 200, 300, 16)
	p := addPlayer(t, w, cfg, 100, 212)
	p.v.Y = -5

	NewPhysicsSystem(cfg).Update(w)

	if p.t.Y != 216 || p.v.Y != ceilingBounce {
		t.Fatalf("expected to be pushed below the platform, got y=%v vy=%v", p.t.Y, p.v.Y)
	}
}

func TestPhysicsSideContactTurnsWalkers(t *testing.T) {
	w, cfg, _ := newTestWorld(t)
	addPlatform(t, w, 0, 418, 1000, 32)
	addPlatform(t, w, 400, 380, 100, 38)
	e := addEnemy(t, w, cfg, component.EnemySnake, 370, 392, 2)
	tr := mustGet(t, w, e, component.TransformComponent)
	v := mustGet(t, w, e, component.VelocityComponent)

	NewPhysicsSystem(cfg).Update(w)

	if tr.X != 400-cfg.Enemy.Width {
		t.Fatalf("expected snake pushed out to %v, got %v", 400-cfg.Enemy.Width, tr.X)
	}
	if v.X != -2 {
		t.Fatalf("expected reversed velocity, got %v", v.X)
	}
}

func TestPhysicsClampsPlayerToLevel(t *testing.T) {
	w, cfg, _ := newTestWorld(t)
	p := addPlayer(t, w, cfg, 2, 100)
	p.v.X = -5
	NewPhysicsSystem(cfg).Update(w)
	if p.t.X != 0 {
		t.Fatalf("expected x clamped to 0, got %v", p.t.X)
	}
}

func TestBoarWalksOffLedgeAndDies(t *testing.T) {
	w, cfg, rng := newTestWorld(t)
	addPlatform(t, w, 0, cfg.GroundY(), 200, cfg.Tile)
	e := addEnemy(t, w, cfg, component.EnemyBoar, 120, cfg.GroundY()-cfg.Enemy.Height, cfg.Enemy.BoarSpeed)
	enemy := mustGet(t, w, e, component.EnemyComponent)
	tr := mustGet(t, w, e, component.TransformComponent)

	ai := NewEnemyAISystem(cfg, rng)
	physics := NewPhysicsSystem(cfg)
	frames := 0
	for ; frames < 300 && enemy.Alive; frames++ {
		ai.Update(w)
		physics.Update(w)
	}
	if enemy.Alive {
		t.Fatalf("boar should have fallen out of the world")
	}
	if tr.Y <= cfg.Viewport.Height+cfg.Enemy.FallMargin {
		t.Fatalf("boar died at y=%v, above the kill line", tr.Y)
	}

	// Dead enemies are frozen.
	y := tr.Y
	physics.Update(w)
	if tr.Y != y {
		t.Fatalf("dead boar moved from %v to %v", y, tr.Y)
	}
}

func TestBossFallingOutAwardsDefeat(t *testing.T) {
	w, cfg, _ := newTestWorld(t)
	e := addBoss(t, w, cfg, 500, cfg.Viewport.Height+cfg.Enemy.FallMargin, 4)
	boss := mustGet(t, w, e, component.BossComponent)
	NewPhysicsSystem(cfg).Update(w)
	if boss.Alive {
		t.Fatalf("boss should be dead after falling out")
	}
	if got := mustRun(t, w).Score; got != cfg.Score.BossDefeat {
		t.Fatalf("expected score %d, got %d", cfg.Score.BossDefeat, got)
	}
}
