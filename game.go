package main

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/superanimalrun/game"
	"github.com/milk9111/superanimalrun/level"
	"github.com/milk9111/superanimalrun/render/painter"
	"github.com/milk9111/superanimalrun/save"
	"github.com/milk9111/superanimalrun/sfx"
	"github.com/milk9111/superanimalrun/tuning"
)

const hudHeight = 28

type AppConfig struct {
	StartLevel int
	Seed       uint64
	TuningPath string
	Watch      bool
	Mute       bool
	// Store backs save data; nil keeps it in memory.
	Store save.Store
}

// App adapts game.Game to ebiten: it samples the keyboard, ticks the game,
// plays its sounds and paints its frame above the HUD bar.
type App struct {
	cfg        tuning.Config
	tuningPath string

	game    *game.Game
	painter *painter.Painter
	sounds  *sfx.Player
	hud     *hudUI
	watcher *tuning.Watcher

	frame game.Frame
}

func NewApp(c AppConfig) (*App, error) {
	cfg, err := tuning.Load(c.TuningPath)
	if err != nil {
		log.Printf("%v (using defaults)", err)
	}
	curve, err := level.LoadCurve(cfg.DifficultyScript)
	if err != nil {
		log.Printf("%v (using the built-in curve)", err)
		curve = level.DefaultCurve()
	}

	p, err := painter.New()
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	opts := []game.Option{game.WithStartLevel(c.StartLevel), game.WithCurve(curve)}
	if c.Seed != 0 {
		opts = append(opts, game.WithSeed(c.Seed))
	}

	a := &App{
		cfg:        cfg,
		tuningPath: c.TuningPath,
		game:       game.New(cfg, save.NewManager(c.Store), opts...),
		painter:    p,
		sounds:     sfx.New(audio.NewContext(sfx.SampleRate)),
		hud:        newHUDUI(cfg.Viewport.Width, hudHeight),
	}
	a.sounds.SetMuted(c.Mute)

	if c.Watch {
		if err := a.watch(); err != nil {
			log.Printf("app: watch tuning: %v", err)
		}
	}
	return a, nil
}

func (a *App) watch() error {
	w, err := tuning.NewWatcher(a.tuningPath, a.cfg.DifficultyScript)
	if err != nil {
		return err
	}
	a.watcher = w
	return nil
}

func (a *App) Close() {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
}

// ScreenSize is the logical window size: the canvas plus the HUD bar.
func (a *App) ScreenSize() (int, int) {
	return int(a.cfg.Viewport.Width), int(a.cfg.Viewport.Height) + hudHeight
}

func (a *App) Update() error {
	a.pollTuning()
	a.frame = a.game.Tick(readInput())
	a.sounds.Play(a.frame.Events)
	a.hud.Update(a.frame.HUD)
	return nil
}

// pollTuning applies file changes picked up since the last frame.
func (a *App) pollTuning() {
	for _, change := range a.watcher.Poll() {
		switch change.Kind {
		case tuning.ChangeCurve:
			curve, err := level.LoadCurve(change.Path)
			if err != nil {
				log.Printf("app: reload %s: %v", change.Path, err)
				continue
			}
			a.game.SetCurve(curve)
			log.Printf("app: reloaded difficulty curve %s", change.Path)
		case tuning.ChangeTuning:
			cfg, err := tuning.Load(change.Path)
			if err != nil {
				log.Printf("app: reload tuning: %v", err)
				continue
			}
			a.cfg = cfg
			a.game.SetTuning(cfg)
			log.Printf("app: reloaded tuning %s", change.Path)
		}
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	w, h := int(a.cfg.Viewport.Width), int(a.cfg.Viewport.Height)
	canvas := screen.SubImage(image.Rect(0, 0, w, h)).(*ebiten.Image)
	a.painter.Draw(canvas, a.frame.Commands, a.frame.ShakeX, a.frame.ShakeY)
	a.hud.Draw(screen)
}

func (a *App) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	w, h := a.ScreenSize()
	return float64(w), float64(h)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
