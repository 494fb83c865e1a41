package level

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCurveMatchesBuiltin(t *testing.T) {
	curve := DefaultCurve()
	for lvl := 1; lvl <= 6; lvl++ {
		got, err := curve.At(lvl)
		if err != nil {
			t.Fatalf("level %d: %v", lvl, err)
		}
		want := DefaultDifficulty(lvl)
		if got.Platforms != want.Platforms || got.GroundCoins != want.GroundCoins ||
			got.Enemies != want.Enemies || got.EnemyKinds != want.EnemyKinds || got.BossHP != want.BossHP {
			t.Fatalf("level %d: got %+v, want %+v", lvl, got, want)
		}
		for _, pair := range [][2]float64{
			{got.GapChance, want.GapChance},
			{got.BossSpeed, want.BossSpeed},
			{got.BossChargeSpeed, want.BossChargeSpeed},
		} {
			if d := pair[0] - pair[1]; d > 1e-9 || d < -1e-9 {
				t.Fatalf("level %d: float mismatch %v vs %v", lvl, pair[0], pair[1])
			}
		}
	}
}

func TestCurvePartialScriptKeepsDefaults(t *testing.T) {
	curve, err := NewCurve([]byte(`enemies := level * 10
boss_hp := -4`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	d, err := curve.At(2)
	if err != nil {
		t.Fatalf("at: %v", err)
	}
	if d.Enemies != 20 {
		t.Fatalf("expected 20 enemies, got %d", d.Enemies)
	}
	if d.BossHP != 1 {
		t.Fatalf("expected boss hp clamped to 1, got %d", d.BossHP)
	}
	if d.Platforms != DefaultDifficulty(2).Platforms {
		t.Fatalf("expected default platforms, got %d", d.Platforms)
	}
}

func TestCurveErrors(t *testing.T) {
	if _, err := NewCurve([]byte(`platforms := (`)); err == nil {
		t.Fatalf("expected compile error")
	}

	curve, err := NewCurve([]byte(`platforms := 1 / (level - level)`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := curve.At(1); err == nil {
		t.Fatalf("expected runtime error")
	}
	if got := curve.MustAt(1); got != DefaultDifficulty(1) {
		t.Fatalf("MustAt should fall back to defaults, got %+v", got)
	}

	byLevel, err := NewCurve([]byte(`enemies := 10 / (level - 2)`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := byLevel.At(2); err == nil {
		t.Fatalf("expected division by zero on level 2")
	}
	if got := byLevel.MustAt(2); got != DefaultDifficulty(2) {
		t.Fatalf("MustAt(2) should fall back to defaults, got %+v", got)
	}
	d, err := byLevel.At(3)
	if err != nil {
		t.Fatalf("curve should still run after a fault: %v", err)
	}
	if d.Enemies != 10 {
		t.Fatalf("expected 10 enemies on level 3, got %d", d.Enemies)
	}

	if _, err := LoadCurve(filepath.Join(t.TempDir(), "missing.tengo")); err == nil {
		t.Fatalf("expected missing file error")
	}
}

func TestLoadCurveFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.tengo")
	if err := os.WriteFile(path, []byte(`platforms := 2`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	curve, err := LoadCurve(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d := curve.MustAt(4); d.Platforms != 2 {
		t.Fatalf("expected 2 platforms, got %d", d.Platforms)
	}
}
