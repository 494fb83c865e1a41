package level

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

//go:embed difficulty.tengo
var defaultScript []byte

// Difficulty is the set of level-scaled generation parameters.
type Difficulty struct {
	Platforms       int     `yaml:"platforms"`
	GroundCoins     int     `yaml:"ground_coins"`
	Enemies         int     `yaml:"enemies"`
	EnemyKinds      int     `yaml:"enemy_kinds"`
	GapChance       float64 `yaml:"gap_chance"`
	BossHP          int     `yaml:"boss_hp"`
	BossSpeed       float64 `yaml:"boss_speed"`
	BossChargeSpeed float64 `yaml:"boss_charge_speed"`
}

// DefaultDifficulty is the built-in curve, used when no script is available.
func DefaultDifficulty(lvl int) Difficulty {
	l := float64(lvl)
	return Difficulty{
		Platforms:       12 + lvl*3,
		GroundCoins:     8 + lvl*2,
		Enemies:         3 + lvl*2,
		EnemyKinds:      2 + lvl,
		GapChance:       0.3 + l*0.05,
		BossHP:          3 + lvl,
		BossSpeed:       1.5 + l*0.3,
		BossChargeSpeed: 3 + l*0.5,
	}
}

// Curve evaluates a tengo difficulty script per level.
type Curve struct {
	compiled *tengo.Compiled
}

// NewCurve compiles src. The script reads the global `level` and defines the
// Difficulty fields as snake_case globals.
func NewCurve(src []byte) (*Curve, error) {
	script := tengo.NewScript(src)
	if err := script.Add("level", 1); err != nil {
		return nil, fmt.Errorf("level: difficulty script: %w", err)
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("level: compile difficulty script: %w", err)
	}
	return &Curve{compiled: compiled}, nil
}

// DefaultCurve compiles the embedded script.
func DefaultCurve() *Curve {
	c, err := NewCurve(defaultScript)
	if err != nil {
		panic("level: embedded difficulty script: " + err.Error())
	}
	return c
}

// LoadCurve compiles the script at path, or the embedded one for "".
func LoadCurve(path string) (*Curve, error) {
	if path == "" {
		return DefaultCurve(), nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: load difficulty script %s: %w", path, err)
	}
	return NewCurve(src)
}

// At evaluates the curve for lvl. Names the script leaves undefined keep the
// built-in value. Runtime faults inside the VM, such as an integer division
// by zero, come back as errors.
func (c *Curve) At(lvl int) (Difficulty, error) {
	d := DefaultDifficulty(lvl)
	if c == nil || c.compiled == nil {
		return d, nil
	}
	if err := c.compiled.Set("level", lvl); err != nil {
		return d, fmt.Errorf("level: set level: %w", err)
	}
	if err := c.run(); err != nil {
		return d, err
	}

	readInt(c.compiled, "platforms", &d.Platforms)
	readInt(c.compiled, "ground_coins", &d.GroundCoins)
	readInt(c.compiled, "enemies", &d.Enemies)
	readInt(c.compiled, "enemy_kinds", &d.EnemyKinds)
	readFloat(c.compiled, "gap_chance", &d.GapChance)
	readInt(c.compiled, "boss_hp", &d.BossHP)
	readFloat(c.compiled, "boss_speed", &d.BossSpeed)
	readFloat(c.compiled, "boss_charge_speed", &d.BossChargeSpeed)
	return d.sanitized(), nil
}

func (c *Curve) run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("level: run difficulty script: %v", r)
		}
	}()
	if err := c.compiled.Run(); err != nil {
		return fmt.Errorf("level: run difficulty script: %w", err)
	}
	return nil
}

// MustAt evaluates the curve and falls back to the built-in values on error.
func (c *Curve) MustAt(lvl int) Difficulty {
	d, err := c.At(lvl)
	if err != nil {
		log.Printf("level: difficulty for level %d: %v (using defaults)", lvl, err)
		return DefaultDifficulty(lvl)
	}
	return d
}

func (d Difficulty) sanitized() Difficulty {
	if d.Platforms < 0 {
		d.Platforms = 0
	}
	if d.GroundCoins < 0 {
		d.GroundCoins = 0
	}
	if d.Enemies < 0 {
		d.Enemies = 0
	}
	if d.EnemyKinds < 1 {
		d.EnemyKinds = 1
	}
	if d.BossHP < 1 {
		d.BossHP = 1
	}
	if d.GapChance < 0 {
		d.GapChance = 0
	}
	return d
}

func readInt(c *tengo.Compiled, name string, dst *int) {
	if c.IsDefined(name) {
		*dst = c.Get(name).Int()
	}
}

func readFloat(c *tengo.Compiled, name string, dst *float64) {
	if c.IsDefined(name) {
		*dst = c.Get(name).Float()
	}
}
