package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/superanimalrun/level"
	"github.com/milk9111/superanimalrun/tuning"
	"gopkg.in/yaml.v3"
)

func TestRunWritesLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, tuning.Default(), level.DefaultCurve(), 2, 7); err != nil {
		t.Fatalf("run: %v", err)
	}

	var got struct {
		Level int `yaml:"level"`
		Boss  struct {
			Kind string `yaml:"kind"`
			HP   int    `yaml:"hp"`
		} `yaml:"boss"`
		Platforms []map[string]any `yaml:"platforms"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not yaml: %v", err)
	}
	if got.Level != 2 || got.Boss.Kind != "tiger" || got.Boss.HP != 5 {
		t.Fatalf("unexpected layout header: %+v", got)
	}
	if len(got.Platforms) == 0 {
		t.Fatalf("no platforms in output")
	}
	if strings.Contains(buf.String(), "stars") {
		t.Fatalf("backdrop should not be dumped")
	}
}

func TestRunSameSeedSameOutput(t *testing.T) {
	var a, b bytes.Buffer
	if err := run(&a, tuning.Default(), level.DefaultCurve(), 1, 3); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := run(&b, tuning.Default(), level.DefaultCurve(), 1, 3); err != nil {
		t.Fatalf("run: %v", err)
	}
	if a.String() != b.String() {
		t.Fatalf("same seed produced different output")
	}
}

func TestRunRejectsLevelZero(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, tuning.Default(), level.DefaultCurve(), 0, 1); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestGenerateToFile(t *testing.T) {
	cases := []struct {
		name    string
		level   int
		wantErr bool
	}{
		{"writes_level", 2, false},
		{"bad_level_still_closes", 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "level.yaml")
			err := generate(path, tuning.Default(), level.DefaultCurve(), c.level, 7)
			if (err != nil) != c.wantErr {
				t.Fatalf("expected error=%v, got %v", c.wantErr, err)
			}
			data, rerr := os.ReadFile(path)
			if rerr != nil {
				t.Fatalf("read output: %v", rerr)
			}
			if c.wantErr {
				if len(data) != 0 {
					t.Fatalf("expected an empty file, got %d bytes", len(data))
				}
				return
			}
			var want bytes.Buffer
			if err := run(&want, tuning.Default(), level.DefaultCurve(), c.level, 7); err != nil {
				t.Fatalf("run: %v", err)
			}
			if string(data) != want.String() {
				t.Fatalf("file output differs from stdout output")
			}
		})
	}
}

func TestGenerateBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "level.yaml")
	if err := generate(path, tuning.Default(), level.DefaultCurve(), 1, 1); err == nil {
		t.Fatalf("expected create error")
	}
}
