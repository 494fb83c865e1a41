package system

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/ecs/entity"
	"github.com/milk9111/superanimalrun/tuning"
)

func newTestWorld(t *testing.T) (*ecs.World, *tuning.Config, *rand.Rand) {
	t.Helper()
	cfg := tuning.Default()
	w := ecs.NewWorld()
	if _, err := entity.NewRun(w, component.Run{Lives: cfg.Player.Lives, Level: 1}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := entity.NewCamera(w, cfg); err != nil {
		t.Fatalf("camera: %v", err)
	}
	if _, err := entity.NewLevelBounds(w, cfg.LevelWidth, cfg.Viewport.Height); err != nil {
		t.Fatalf("bounds: %v", err)
	}
	return w, &cfg, rand.New(rand.NewPCG(1, 2))
}

func addPlayer(t *testing.T, w *ecs.World, cfg *tuning.Config, x, y float64) playerRefs {
	t.Helper()
	if _, err := entity.NewPlayer(w, *cfg); err != nil {
		t.Fatalf("player: %v", err)
	}
	p, ok := findPlayer(w)
	if !ok {
		t.Fatalf("player not found")
	}
	p.t.X, p.t.Y = x, y
	return p
}

func addPlatform(t *testing.T, w *ecs.World, x, y, width, height float64) {
	t.Helper()
	if _, err := entity.NewPlatform(w, component.PlatformGround, x, y, width, height); err != nil {
		t.Fatalf("platform: %v", err)
	}
}

func addEnemy(t *testing.T, w *ecs.World, cfg *tuning.Config, kind component.EnemyKind, x, y, vx float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewEnemy(w, *cfg, entity.EnemyOpts{Kind: kind, X: x, Y: y, VX: vx, PatrolRange: 150})
	if err != nil {
		t.Fatalf("enemy: %v", err)
	}
	return e
}

func addBoss(t *testing.T, w *ecs.World, cfg *tuning.Config, x, y float64, hp int) ecs.Entity {
	t.Helper()
	e, err := entity.NewBoss(w, *cfg, entity.BossOpts{Kind: component.BossLion, X: x, Y: y, HP: hp, PatrolSpeed: 1.8, ChargeSpeed: 3.5})
	if err != nil {
		t.Fatalf("boss: %v", err)
	}
	return e
}

func mustRun(t *testing.T, w *ecs.World) *component.Run {
	t.Helper()
	run, ok := ecs.Singleton(w, component.RunComponent.Kind())
	if !ok {
		t.Fatalf("run singleton missing")
	}
	return run
}

func countEvents(events []ecs.Event, typ ecs.EventType) int {
	n := 0
	for _, evt := range events {
		if evt.Type == typ {
			n++
		}
	}
	return n
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, handle component.ComponentHandle[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, handle.Kind())
	if !ok {
		t.Fatalf("entity %v missing component", e)
	}
	return v
}

func TestGameplaySchedulerOrder(t *testing.T) {
	cfg := tuning.Default()
	want := []string{
		"PlayerControlSystem",
		"EnemyAISystem",
		"BossAISystem",
		"PhysicsSystem",
		"SafeRespawnSystem",
		"PickupSystem",
		"CombatSystem",
		"GoalSystem",
		"InvulnerableSystem",
		"ParticleSystem",
		"TTLSystem",
		"CameraSystem",
	}
	got := NewGameplayScheduler(&cfg, rand.New(rand.NewPCG(1, 2))).Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d systems, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("system %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestTTLTick(t *testing.T) {
	tests := []struct {
		name    string
		frames  int
		expired bool
		left    int
	}{
		{name: "counting", frames: 3, expired: false, left: 2},
		{name: "last frame", frames: 1, expired: true, left: 0},
		{name: "already zero", frames: 0, expired: true, left: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ttl := component.TTL{Frames: tt.frames}
			if got := ttl.Tick(); got != tt.expired {
				t.Fatalf("expected expired=%v, got %v", tt.expired, got)
			}
			if ttl.Frames != tt.left {
				t.Fatalf("expected %d frames left, got %d", tt.left, ttl.Frames)
			}
		})
	}
}
