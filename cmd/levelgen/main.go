// Command levelgen prints a generated level as yaml.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/milk9111/superanimalrun/level"
	"github.com/milk9111/superanimalrun/tuning"
	"gopkg.in/yaml.v3"
)

func main() {
	lvl := flag.Int("level", 1, "level number to generate")
	seed := flag.Uint64("seed", 1, "generation seed")
	script := flag.String("script", "", "tengo difficulty script (default: built in)")
	tuningPath := flag.String("tuning", "", "yaml tuning override")
	out := flag.String("out", "", "output file (default: stdout)")
	flag.Parse()

	cfg, err := tuning.Load(*tuningPath)
	if err != nil {
		log.Fatal(err)
	}
	if *script == "" {
		*script = cfg.DifficultyScript
	}
	curve, err := level.LoadCurve(*script)
	if err != nil {
		log.Fatal(err)
	}

	if err := generate(*out, cfg, curve, *lvl, *seed); err != nil {
		log.Fatal(err)
	}
}

// generate writes the level to path, or to stdout when path is empty. The
// file is closed before returning, also on failure.
func generate(path string, cfg tuning.Config, curve *level.Curve, lvl int, seed uint64) (err error) {
	if path == "" {
		return run(os.Stdout, cfg, curve, lvl, seed)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("levelgen: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("levelgen: close %s: %w", path, cerr)
		}
	}()
	return run(f, cfg, curve, lvl, seed)
}

func run(w io.Writer, cfg tuning.Config, curve *level.Curve, lvl int, seed uint64) error {
	if lvl < 1 {
		return fmt.Errorf("levelgen: level must be at least 1, got %d", lvl)
	}
	diff, err := curve.At(lvl)
	if err != nil {
		return err
	}
	layout := level.Generate(cfg, lvl, diff, rand.New(rand.NewPCG(seed, seed)))

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(layout); err != nil {
		return fmt.Errorf("levelgen: encode: %w", err)
	}
	return enc.Close()
}
