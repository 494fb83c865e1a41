// Package level builds procedural levels: the gapped ground strip, floating
// platforms, coins, enemies, the boss, the goal flag, and the parallax
// backdrop.
package level

import (
	"math"
	"math/rand/v2"

	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/tuning"
)

const (
	groundSegmentMin = 150
	groundSegmentVar = 300
	gapMin           = 80
	gapVar           = 60
	// Gaps never open before gapStart nor reach within gapEndMargin of the
	// level end, keeping the spawn, boss arena and flag on solid ground.
	gapStart     = 300
	gapEndMargin = 400

	floatMinX      = 200
	floatMarginX   = 400
	floatMinY      = 120
	floatMarginY   = 200
	floatMinWidth  = 64
	floatVarWidth  = 96
	floatHeight    = 16
	floatCoinLift  = 30
	floatCoinOdds  = 0.6
	coinSize       = 16
	groundCoinLift = 30

	enemyMinX      = 400
	enemyMarginX   = 600
	aerialMinY     = 60
	aerialVarY     = 150
	groundEnemyGap = 28
	patrolMin      = 100
	patrolVar      = 150

	starCount     = 80
	cloudCount    = 12
	mountainCount = 8
	mountainStep  = 450
)

type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type PlatformSpec struct {
	Kind component.PlatformKind `yaml:"-"`
	Name string                 `yaml:"kind"`
	Rect `yaml:",inline"`
}

type CoinSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Phase float64 `yaml:"phase"`
}

type EnemySpec struct {
	Kind        component.EnemyKind `yaml:"-"`
	Name        string              `yaml:"kind"`
	X           float64             `yaml:"x"`
	Y           float64             `yaml:"y"`
	VX          float64             `yaml:"vx"`
	PatrolRange float64             `yaml:"patrol_range"`
	AnimTimer   float64             `yaml:"anim_timer"`
}

type BossSpec struct {
	Kind        component.BossKind `yaml:"-"`
	Name        string             `yaml:"kind"`
	X           float64            `yaml:"x"`
	Y           float64            `yaml:"y"`
	HP          int                `yaml:"hp"`
	PatrolSpeed float64            `yaml:"patrol_speed"`
	ChargeSpeed float64            `yaml:"charge_speed"`
}

// Layout is a complete generated level, independent of any ECS world.
type Layout struct {
	Level      int                  `yaml:"level"`
	Width      float64              `yaml:"width"`
	Height     float64              `yaml:"height"`
	Difficulty Difficulty           `yaml:"difficulty"`
	Platforms  []PlatformSpec       `yaml:"platforms"`
	Coins      []CoinSpec           `yaml:"coins"`
	Enemies    []EnemySpec          `yaml:"enemies"`
	Boss       BossSpec             `yaml:"boss"`
	Goal       Rect                 `yaml:"goal"`
	Stars      []component.Star     `yaml:"-"`
	Clouds     []component.Cloud    `yaml:"-"`
	Mountains  []component.Mountain `yaml:"-"`
}

// Generate builds the layout for lvl. It never fails: every value is drawn
// from a bounded range.
func Generate(cfg tuning.Config, lvl int, diff Difficulty, rng *rand.Rand) Layout {
	if lvl < 1 {
		lvl = 1
	}
	l := Layout{
		Level:      lvl,
		Width:      cfg.LevelWidth,
		Height:     cfg.Viewport.Height,
		Difficulty: diff,
	}

	l.generateGround(cfg, diff, rng)
	l.generateFloating(cfg, diff, rng)
	l.generateGroundCoins(cfg, diff, rng)
	l.generateEnemies(cfg, diff, rng)
	l.placeBoss(cfg, diff)
	l.Goal = Rect{
		X: cfg.LevelWidth - cfg.Goal.OffsetFromEnd,
		Y: cfg.GroundY() - cfg.Goal.Height,
		W: cfg.Goal.Width,
		H: cfg.Goal.Height,
	}
	l.generateBackdrop(cfg, rng)
	return l
}

func (l *Layout) generateGround(cfg tuning.Config, diff Difficulty, rng *rand.Rand) {
	groundY := cfg.GroundY()
	gapLimit := cfg.LevelWidth - gapEndMargin
	x := 0.0
	for x < cfg.LevelWidth {
		seg := groundSegmentMin + rng.Float64()*groundSegmentVar
		l.Platforms = append(l.Platforms, PlatformSpec{
			Kind: component.PlatformGround,
			Name: component.PlatformGround.String(),
			Rect: Rect{X: x, Y: groundY, W: seg, H: cfg.Tile},
		})
		x += seg
		if x > gapStart && x < gapLimit && rng.Float64() < diff.GapChance {
			gap := gapMin + rng.Float64()*gapVar
			if x+gap <= gapLimit {
				x += gap
			}
		}
	}
}

func (l *Layout) generateFloating(cfg tuning.Config, diff Difficulty, rng *rand.Rand) {
	for i := 0; i < diff.Platforms; i++ {
		px := floatMinX + rng.Float64()*(cfg.LevelWidth-floatMarginX)
		py := floatMinY + rng.Float64()*(cfg.Viewport.Height-floatMarginY)
		pw := floatMinWidth + rng.Float64()*floatVarWidth
		l.Platforms = append(l.Platforms, PlatformSpec{
			Kind: component.PlatformFloating,
			Name: component.PlatformFloating.String(),
			Rect: Rect{X: px, Y: py, W: pw, H: floatHeight},
		})
		if rng.Float64() < floatCoinOdds {
			l.Coins = append(l.Coins, CoinSpec{
				X:     px + pw/2 - coinSize/2,
				Y:     py - floatCoinLift,
				Phase: rng.Float64() * 2 * math.Pi,
			})
		}
	}
}

func (l *Layout) generateGroundCoins(cfg tuning.Config, diff Difficulty, rng *rand.Rand) {
	for i := 0; i < diff.GroundCoins; i++ {
		l.Coins = append(l.Coins, CoinSpec{
			X:     floatMinX + rng.Float64()*(cfg.LevelWidth-floatMarginX),
			Y:     cfg.GroundY() - groundCoinLift,
			Phase: rng.Float64() * 2 * math.Pi,
		})
	}
}

func (l *Layout) generateEnemies(cfg tuning.Config, diff Difficulty, rng *rand.Rand) {
	pool := min(int(component.EnemyKindCount), diff.EnemyKinds)
	for i := 0; i < diff.Enemies; i++ {
		kind := component.EnemyPool[int(rng.Float64()*float64(pool))]
		ex := enemyMinX + rng.Float64()*(cfg.LevelWidth-enemyMarginX)
		var ey float64
		if kind.Aerial() {
			ey = aerialMinY + rng.Float64()*aerialVarY
		} else {
			ey = cfg.GroundY() - groundEnemyGap
		}
		speed := cfg.Enemy.WalkSpeed
		if kind == component.EnemyBoar {
			speed = cfg.Enemy.BoarSpeed
		}
		if rng.Float64() >= 0.5 {
			speed = -speed
		}
		l.Enemies = append(l.Enemies, EnemySpec{
			Kind:        kind,
			Name:        kind.String(),
			X:           ex,
			Y:           ey,
			VX:          speed,
			PatrolRange: patrolMin + rng.Float64()*patrolVar,
			AnimTimer:   rng.Float64() * 2 * math.Pi,
		})
	}
}

func (l *Layout) placeBoss(cfg tuning.Config, diff Difficulty) {
	kind := component.BossLion
	if (l.Level-1)%2 == 1 {
		kind = component.BossTiger
	}
	l.Boss = BossSpec{
		Kind:        kind,
		Name:        kind.String(),
		X:           cfg.LevelWidth - cfg.Boss.OffsetFromEnd,
		Y:           cfg.GroundY() - cfg.Boss.Height - 4,
		HP:          diff.BossHP,
		PatrolSpeed: diff.BossSpeed,
		ChargeSpeed: diff.BossChargeSpeed,
	}
}

func (l *Layout) generateBackdrop(cfg tuning.Config, rng *rand.Rand) {
	l.Stars = make([]component.Star, 0, starCount)
	for i := 0; i < starCount; i++ {
		l.Stars = append(l.Stars, component.Star{
			X:       rng.Float64() * cfg.LevelWidth,
			Y:       rng.Float64() * cfg.Viewport.Height * 0.6,
			Size:    rng.Float64()*2 + 0.5,
			Twinkle: rng.Float64() * 2 * math.Pi,
		})
	}
	l.Clouds = make([]component.Cloud, 0, cloudCount)
	for i := 0; i < cloudCount; i++ {
		l.Clouds = append(l.Clouds, component.Cloud{
			X:      rng.Float64() * cfg.LevelWidth,
			Y:      30 + rng.Float64()*100,
			Width:  60 + rng.Float64()*80,
			Height: 20 + rng.Float64()*20,
			Speed:  0.1 + rng.Float64()*0.3,
		})
	}
	// Mountains are spaced to cover the whole level at their parallax factor.
	step := math.Max(mountainStep, cfg.LevelWidth/mountainCount)
	l.Mountains = make([]component.Mountain, 0, mountainCount)
	for i := 0; i < mountainCount; i++ {
		l.Mountains = append(l.Mountains, component.Mountain{
			X:      float64(i)*step + rng.Float64()*100,
			Width:  200 + rng.Float64()*150,
			Height: 80 + rng.Float64()*100,
		})
	}
}
