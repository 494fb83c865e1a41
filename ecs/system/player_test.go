package system

import (
	"testing"

	"github.com/milk9111/superanimalrun/common"
	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/ecs/entity"
)

func TestPlayerControl(t *testing.T) {
	cases := []struct {
		name       string
		moveX      float64
		jump       bool
		onGround   bool
		wantVX     float64
		wantFacing int
		wantJump   bool
	}{
		{"idle", 0, false, true, 0, 1, false},
		{"run_left", -1, false, true, -5, -1, false},
		{"run_right_and_jump", 1, true, true, 5, 1, true},
		{"no_double_jump", 0, true, false, 0, 1, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, cfg, _ := newTestWorld(t)
			p := addPlayer(t, w, cfg, 200, 300)
			p.body.OnGround = c.onGround
			p.v.Y = 2
			input := mustGet(t, w, p.entity, component.InputComponent)
			input.MoveX, input.Jump = c.moveX, c.jump

			NewPlayerControlSystem(cfg).Update(w)

			if p.v.X != c.wantVX || p.player.Facing != c.wantFacing {
				t.Fatalf("expected vx=%v facing=%d, got vx=%v facing=%d", c.wantVX, c.wantFacing, p.v.X, p.player.Facing)
			}
			jumped := p.v.Y == cfg.Player.JumpForce
			if jumped != c.wantJump {
				t.Fatalf("expected jump=%v, got vy=%v", c.wantJump, p.v.Y)
			}
			if jumped && countEvents(w.Events().Drain(), ecs.EventJump) != 1 {
				t.Fatalf("expected a jump event")
			}
		})
	}
}

func TestPitFallRespawnsAndCostsLife(t *testing.T) {
	w, cfg, rng := newTestWorld(t)
	p := addPlayer(t, w, cfg, 500, 386)
	p.body.OnGround = true

	respawn := NewSafeRespawnSystem(cfg, rng)
	respawn.Update(w)

	p.body.OnGround = false
	p.t.X, p.t.Y = 700, cfg.Viewport.Height+cfg.Player.FallMargin+1
	respawn.Update(w)

	if p.t.X != 500 || p.t.Y != 386 {
		t.Fatalf("expected respawn at (500,386), got (%v,%v)", p.t.X, p.t.Y)
	}
	if got := mustRun(t, w).Lives; got != cfg.Player.Lives-1 {
		t.Fatalf("expected %d lives, got %d", cfg.Player.Lives-1, got)
	}
}

func TestPitFallWhileInvulnerableOnlyRespawns(t *testing.T) {
	w, cfg, rng := newTestWorld(t)
	p := addPlayer(t, w, cfg, 500, 386)
	mustGet(t, w, p.entity, component.InvulnerableComponent).Frames = 30
	p.t.Y = cfg.Viewport.Height + cfg.Player.FallMargin + 1

	NewSafeRespawnSystem(cfg, rng).Update(w)

	x, y := entity.PlayerSpawn(*cfg)
	if p.t.X != x || p.t.Y != y {
		t.Fatalf("expected respawn at spawn (%v,%v), got (%v,%v)", x, y, p.t.X, p.t.Y)
	}
	if got := mustRun(t, w).Lives; got != cfg.Player.Lives {
		t.Fatalf("invulnerable fall should not cost a life, got %d", got)
	}
}

func TestInvulnerabilityAndParticlesExpire(t *testing.T) {
	w, cfg, rng := newTestWorld(t)
	p := addPlayer(t, w, cfg, 500, 386)
	inv := mustGet(t, w, p.entity, component.InvulnerableComponent)
	inv.Frames = 2
	entity.SpawnBurst(w, rng, 100, 100, common.Coin, 8)

	sched := ecs.NewScheduler(NewInvulnerableSystem(), NewParticleSystem(), NewTTLSystem())
	for i := 0; i < 60; i++ {
		sched.Update(w)
	}
	if inv.Active() {
		t.Fatalf("invulnerability should have run out")
	}
	if n := ecs.Count(w, component.ParticleComponent.Kind()); n != 0 {
		t.Fatalf("expected particles to expire, %d left", n)
	}
}
