// Package tuning holds the gameplay constants. Defaults are embedded; a yaml
// file on disk may override any subset of them.
package tuning

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Physics struct {
	Gravity  float64 `yaml:"gravity"`
	LandBand float64 `yaml:"land_band"`
	SideBand float64 `yaml:"side_band"`
}

type Player struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	SpawnX           float64 `yaml:"spawn_x"`
	Speed            float64 `yaml:"speed"`
	JumpForce        float64 `yaml:"jump_force"`
	MaxFall          float64 `yaml:"max_fall"`
	WallBand         float64 `yaml:"wall_band"`
	FallMargin       float64 `yaml:"fall_margin"`
	InvincibleFrames int     `yaml:"invincible_frames"`
	Lives            int     `yaml:"lives"`
}

type Eagle struct {
	DiveRange    float64 `yaml:"dive_range"`
	DiveAccel    float64 `yaml:"dive_accel"`
	DiveFrames   int     `yaml:"dive_frames"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
}

type Bat struct {
	DiveRangeX      float64 `yaml:"dive_range_x"`
	DiveRangeY      float64 `yaml:"dive_range_y"`
	DiveSpeed       float64 `yaml:"dive_speed"`
	DiveFrames      int     `yaml:"dive_frames"`
	ZigzagAmplitude float64 `yaml:"zigzag_amplitude"`
}

type Enemy struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MaxFall        float64 `yaml:"max_fall"`
	WallBand       float64 `yaml:"wall_band"`
	FallMargin     float64 `yaml:"fall_margin"`
	WalkSpeed      float64 `yaml:"walk_speed"`
	BoarSpeed      float64 `yaml:"boar_speed"`
	StompTolerance float64 `yaml:"stomp_tolerance"`
	HitInset       float64 `yaml:"hit_inset"`
	Eagle          Eagle   `yaml:"eagle"`
	Bat            Bat     `yaml:"bat"`
}

type Boss struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	OffsetFromEnd    float64 `yaml:"offset_from_end"`
	PatrolRange      float64 `yaml:"patrol_range"`
	ChargeRange      float64 `yaml:"charge_range"`
	ChargeCooldown   int     `yaml:"charge_cooldown"`
	ChargeFrames     int     `yaml:"charge_frames"`
	ChargeJumpChance float64 `yaml:"charge_jump_chance"`
	ReturnSpeed      float64 `yaml:"return_speed"`
	HitFlashFrames   int     `yaml:"hit_flash_frames"`
	RoarFrames       int     `yaml:"roar_frames"`
	StompTolerance   float64 `yaml:"stomp_tolerance"`
	HitInset         float64 `yaml:"hit_inset"`
}

type Goal struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	OffsetFromEnd float64 `yaml:"offset_from_end"`
}

type Score struct {
	Coin       int `yaml:"coin"`
	Stomp      int `yaml:"stomp"`
	BossHit    int `yaml:"boss_hit"`
	BossDefeat int `yaml:"boss_defeat"`
	Goal       int `yaml:"goal"`
}

type Camera struct {
	Smoothness float64 `yaml:"smoothness"`
	Lead       float64 `yaml:"lead"`
}

type Shake struct {
	Stomp      int `yaml:"stomp"`
	BossHit    int `yaml:"boss_hit"`
	Hurt       int `yaml:"hurt"`
	BossDefeat int `yaml:"boss_defeat"`
}

// Config is the full set of gameplay constants.
type Config struct {
	Viewport           Viewport `yaml:"viewport"`
	Tile               float64  `yaml:"tile"`
	LevelWidth         float64  `yaml:"level_width"`
	Physics            Physics  `yaml:"physics"`
	Player             Player   `yaml:"player"`
	Enemy              Enemy    `yaml:"enemy"`
	Boss               Boss     `yaml:"boss"`
	Goal               Goal     `yaml:"goal"`
	Score              Score    `yaml:"score"`
	Camera             Camera   `yaml:"camera"`
	Shake              Shake    `yaml:"shake"`
	NotificationFrames int      `yaml:"notification_frames"`
	// DifficultyScript is an optional path to a tengo difficulty curve; empty
	// uses the embedded one.
	DifficultyScript string `yaml:"difficulty_script"`
}

// GroundY is the top of the ground strip.
func (c Config) GroundY() float64 {
	return c.Viewport.Height - c.Tile
}

// Default returns the embedded configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic("tuning: embedded default.yaml: " + err.Error())
	}
	return cfg
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("tuning: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("tuning: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("tuning: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values that would make the world degenerate.
func (c Config) Validate() error {
	switch {
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("viewport must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height)
	case c.LevelWidth < c.Viewport.Width:
		return fmt.Errorf("level_width %v is narrower than the viewport", c.LevelWidth)
	case c.Player.MaxFall <= 0 || c.Enemy.MaxFall <= 0:
		return fmt.Errorf("max_fall must be positive")
	case c.Player.Lives <= 0:
		return fmt.Errorf("player.lives must be positive")
	}
	return nil
}
