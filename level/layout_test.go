package level

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/tuning"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestGenerateGroundGapsStayInsideWindow(t *testing.T) {
	cfg := tuning.Default()
	for seed := uint64(1); seed <= 50; seed++ {
		lvl := int(seed%5) + 1
		layout := Generate(cfg, lvl, DefaultDifficulty(lvl), newRNG(seed))

		var ground []PlatformSpec
		for _, p := range layout.Platforms {
			if p.Kind == component.PlatformGround {
				ground = append(ground, p)
			}
		}
		if len(ground) == 0 {
			t.Fatalf("seed %d: no ground segments", seed)
		}
		if ground[0].X != 0 {
			t.Fatalf("seed %d: first ground segment starts at %v", seed, ground[0].X)
		}
		last := ground[len(ground)-1]
		if last.X+last.W < cfg.LevelWidth {
			t.Fatalf("seed %d: ground ends at %v before level end", seed, last.X+last.W)
		}
		for i := 1; i < len(ground); i++ {
			prevEnd := ground[i-1].X + ground[i-1].W
			if ground[i].X == prevEnd {
				continue
			}
			if prevEnd <= gapStart {
				t.Fatalf("seed %d: gap opens at %v, before %v", seed, prevEnd, float64(gapStart))
			}
			if ground[i].X > cfg.LevelWidth-gapEndMargin {
				t.Fatalf("seed %d: gap ends at %v, past %v", seed, ground[i].X, cfg.LevelWidth-gapEndMargin)
			}
			if gap := ground[i].X - prevEnd; gap < gapMin || gap > gapMin+gapVar {
				t.Fatalf("seed %d: gap width %v out of range", seed, gap)
			}
		}
	}
}

func TestGenerateCounts(t *testing.T) {
	cfg := tuning.Default()
	for _, lvl := range []int{1, 2, 5} {
		diff := DefaultDifficulty(lvl)
		layout := Generate(cfg, lvl, diff, newRNG(uint64(lvl)))

		floating := 0
		for _, p := range layout.Platforms {
			if p.Kind == component.PlatformFloating {
				floating++
				if p.H != floatHeight || p.W < floatMinWidth || p.W > floatMinWidth+floatVarWidth {
					t.Fatalf("level %d: floating platform %+v has bad size", lvl, p)
				}
			}
		}
		if floating != diff.Platforms {
			t.Fatalf("level %d: expected %d floating platforms, got %d", lvl, diff.Platforms, floating)
		}
		if len(layout.Enemies) != diff.Enemies {
			t.Fatalf("level %d: expected %d enemies, got %d", lvl, diff.Enemies, len(layout.Enemies))
		}
		if len(layout.Coins) < diff.GroundCoins || len(layout.Coins) > diff.GroundCoins+diff.Platforms {
			t.Fatalf("level %d: coin count %d out of range", lvl, len(layout.Coins))
		}
		if len(layout.Stars) != starCount || len(layout.Clouds) != cloudCount || len(layout.Mountains) != mountainCount {
			t.Fatalf("level %d: backdrop counts %d/%d/%d", lvl, len(layout.Stars), len(layout.Clouds), len(layout.Mountains))
		}
	}
}

func TestGenerateLevelOneEnemyPool(t *testing.T) {
	cfg := tuning.Default()
	for seed := uint64(1); seed <= 30; seed++ {
		layout := Generate(cfg, 1, DefaultDifficulty(1), newRNG(seed))
		for _, e := range layout.Enemies {
			if e.Kind != component.EnemySnake && e.Kind != component.EnemyEagle && e.Kind != component.EnemyBoar {
				t.Fatalf("seed %d: level 1 spawned %s", seed, e.Kind)
			}
			if e.Kind.Aerial() {
				if e.Y < aerialMinY || e.Y > aerialMinY+aerialVarY {
					t.Fatalf("seed %d: aerial enemy at y=%v", seed, e.Y)
				}
			} else if e.Y != cfg.GroundY()-groundEnemyGap {
				t.Fatalf("seed %d: ground enemy at y=%v", seed, e.Y)
			}
			speed := cfg.Enemy.WalkSpeed
			if e.Kind == component.EnemyBoar {
				speed = cfg.Enemy.BoarSpeed
			}
			if e.VX != speed && e.VX != -speed {
				t.Fatalf("seed %d: %s has vx %v", seed, e.Kind, e.VX)
			}
		}
	}
}

func TestGenerateBossAndGoal(t *testing.T) {
	cfg := tuning.Default()
	cases := []struct {
		level int
		kind  component.BossKind
	}{
		{1, component.BossLion},
		{2, component.BossTiger},
		{3, component.BossLion},
		{4, component.BossTiger},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			layout := Generate(cfg, c.level, DefaultDifficulty(c.level), newRNG(7))
			if layout.Boss.Kind != c.kind {
				t.Fatalf("level %d: expected %s, got %s", c.level, c.kind, layout.Boss.Kind)
			}
			if layout.Boss.HP != 3+c.level {
				t.Fatalf("level %d: expected boss hp %d, got %d", c.level, 3+c.level, layout.Boss.HP)
			}
			if layout.Boss.X != cfg.LevelWidth-350 || layout.Boss.Y != cfg.GroundY()-56 {
				t.Fatalf("boss at (%v,%v)", layout.Boss.X, layout.Boss.Y)
			}
			if layout.Goal.X != cfg.LevelWidth-150 || layout.Goal.Y != cfg.GroundY()-64 {
				t.Fatalf("goal at (%v,%v)", layout.Goal.X, layout.Goal.Y)
			}
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	cfg := tuning.Default()
	a := Generate(cfg, 3, DefaultDifficulty(3), newRNG(42))
	b := Generate(cfg, 3, DefaultDifficulty(3), newRNG(42))
	if len(a.Platforms) != len(b.Platforms) || len(a.Coins) != len(b.Coins) {
		t.Fatalf("same seed produced different layouts")
	}
	for i := range a.Platforms {
		if a.Platforms[i] != b.Platforms[i] {
			t.Fatalf("platform %d differs: %+v vs %+v", i, a.Platforms[i], b.Platforms[i])
		}
	}
}

func TestSpawnPopulatesWorld(t *testing.T) {
	cfg := tuning.Default()
	layout := Generate(cfg, 2, DefaultDifficulty(2), newRNG(3))
	w := ecs.NewWorld()
	if err := Spawn(w, cfg, layout, component.Run{Score: 120, Lives: 2}); err != nil {
		t.Fatalf("spawn: %v", err)
	}

	if got := ecs.Count(w, component.PlatformComponent.Kind()); got != len(layout.Platforms) {
		t.Fatalf("expected %d platforms, got %d", len(layout.Platforms), got)
	}
	if got := ecs.Count(w, component.EnemyComponent.Kind()); got != len(layout.Enemies) {
		t.Fatalf("expected %d enemies, got %d", len(layout.Enemies), got)
	}
	if got := ecs.Count(w, component.BossComponent.Kind()); got != 1 {
		t.Fatalf("expected one boss, got %d", got)
	}
	if got := ecs.Count(w, component.PlayerTagComponent.Kind()); got != 1 {
		t.Fatalf("expected one player, got %d", got)
	}
	run, ok := ecs.Singleton(w, component.RunComponent.Kind())
	if !ok {
		t.Fatalf("expected run singleton")
	}
	if run.Level != 2 || run.Score != 120 || run.Lives != 2 {
		t.Fatalf("unexpected run %+v", *run)
	}
}
