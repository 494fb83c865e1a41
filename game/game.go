// Package game is the state machine around one run: title screen, play,
// pause, level clear and game over. Tick advances it by one frame and returns
// what to draw.
package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/ecs/system"
	"github.com/milk9111/superanimalrun/level"
	"github.com/milk9111/superanimalrun/render"
	"github.com/milk9111/superanimalrun/save"
	"github.com/milk9111/superanimalrun/tuning"
)

const (
	noticeSaved      = "Game saved!"
	noticeSaveFailed = "Save failed!"
	noticeLoaded     = "Game loaded!"
	noticeNoSave     = "No save found!"
	noticeLoadFailed = "Could not load save!"
)

// Input is one frame of player intent. Left, Right and Jump are held keys;
// Start, Pause, Save and Continue are presses seen this frame only.
type Input struct {
	Left     bool
	Right    bool
	Jump     bool
	Start    bool
	Pause    bool
	Save     bool
	Continue bool
}

// HUD is the scoreboard shown outside the canvas.
type HUD struct {
	Score   int
	Level   int
	Coins   int
	Lives   int
	Best    int
	Message string
}

// Frame is the result of one Tick.
type Frame struct {
	Commands []render.Command
	// ShakeX and ShakeY offset the whole frame while the screen shakes.
	ShakeX float64
	ShakeY float64
	Events []ecs.Event
	HUD    HUD
}

type Game struct {
	cfg        tuning.Config
	saves      *save.Manager
	curve      *level.Curve
	rng        *rand.Rand
	startLevel int

	state State
	world *ecs.World
	sched *ecs.Scheduler

	frame        int
	notice       string
	noticeFrames int
	events       []ecs.Event
}

type Option func(*Game)

// WithSeed makes level generation and effects reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithStartLevel sets the level a new game begins on.
func WithStartLevel(lvl int) Option {
	return func(g *Game) {
		if lvl >= 1 {
			g.startLevel = lvl
		}
	}
}

// WithCurve replaces the embedded difficulty curve.
func WithCurve(c *level.Curve) Option {
	return func(g *Game) {
		if c != nil {
			g.curve = c
		}
	}
}

// New returns a game sitting on the title screen. A nil saves manager keeps
// progress in memory only.
func New(cfg tuning.Config, saves *save.Manager, opts ...Option) *Game {
	if saves == nil {
		saves = save.NewManager(nil)
	}
	now := uint64(time.Now().UnixNano())
	g := &Game{
		cfg:        cfg,
		saves:      saves,
		curve:      level.DefaultCurve(),
		rng:        rand.New(rand.NewPCG(now, now>>1)),
		startLevel: 1,
		state:      StateMenu,
	}
	for _, opt := range opts {
		opt(g)
	}
	// The title screen draws the backdrop of the first level.
	if err := g.loadLevel(component.Run{Lives: cfg.Player.Lives, Level: g.startLevel}); err != nil {
		log.Printf("game: build title level: %v", err)
	}
	return g
}

func (g *Game) State() State {
	return g.state
}

// World is the current level's world. It is replaced on every level change.
func (g *Game) World() *ecs.World {
	return g.world
}

// SetTuning swaps the gameplay constants. Systems read them through a pointer
// so the change applies from the next tick; entity sizes follow on the next
// level.
func (g *Game) SetTuning(cfg tuning.Config) {
	g.cfg = cfg
}

// SetCurve swaps the difficulty curve used for levels generated from now on.
func (g *Game) SetCurve(c *level.Curve) {
	if c != nil {
		g.curve = c
	}
}

func (g *Game) HUD() HUD {
	run := g.run()
	return HUD{
		Score:   run.Score,
		Level:   run.Level,
		Coins:   run.Coins,
		Lives:   run.Lives,
		Best:    g.saves.Best(),
		Message: run.Message,
	}
}

// Notice returns the transient message and how many frames it has left.
func (g *Game) Notice() (string, int) {
	return g.notice, g.noticeFrames
}

// Tick advances the game by one frame.
func (g *Game) Tick(in Input) Frame {
	g.frame++
	g.events = g.events[:0]
	if g.noticeFrames > 0 {
		g.noticeFrames--
	}
	shakeX, shakeY := g.shake()

	switch g.state {
	case StateMenu:
		switch {
		case in.Start:
			g.newGame()
		case in.Continue:
			g.continueGame()
		}
	case StatePlaying:
		if in.Save {
			g.save()
		}
		if in.Pause {
			g.state = StatePaused
			break
		}
		g.step(in)
	case StatePaused:
		if in.Save {
			g.save()
		}
		if in.Pause {
			g.state = StatePlaying
		}
	case StateGameOver:
		if in.Start {
			g.newGame()
		}
	case StateLevelWin:
		if in.Start {
			g.nextLevel()
		}
	}

	events := g.drainEvents()
	return Frame{
		Commands: render.Build(g.view()),
		ShakeX:   shakeX,
		ShakeY:   shakeY,
		Events:   events,
		HUD:      g.HUD(),
	}
}

// step runs one simulation frame and applies the resulting transition.
func (g *Game) step(in Input) {
	if g.world == nil || g.sched == nil {
		return
	}
	g.applyInput(in)
	g.sched.Update(g.world)

	run := g.run()
	switch {
	case run.Over:
		g.state = StateGameOver
		if err := g.saves.SaveBest(run.Score); err != nil {
			log.Printf("game: %v", err)
		}
	case run.Cleared:
		g.state = StateLevelWin
	}
}

func (g *Game) applyInput(in Input) {
	e, ok := ecs.First(g.world, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(g.world, e, component.InputComponent.Kind())
	if !ok {
		return
	}
	input.MoveX = 0
	if in.Left {
		input.MoveX = -1
	}
	if in.Right {
		input.MoveX = 1
	}
	input.Jump = in.Jump
}

// shake counts the camera shake down and returns this frame's offset.
func (g *Game) shake() (float64, float64) {
	if g.world == nil {
		return 0, 0
	}
	cam, ok := ecs.Singleton(g.world, component.CameraComponent.Kind())
	if !ok || cam.ShakeFrames <= 0 {
		return 0, 0
	}
	cam.ShakeFrames--
	mag := float64(cam.ShakeFrames)
	return (g.rng.Float64() - 0.5) * mag, (g.rng.Float64() - 0.5) * mag
}

func (g *Game) newGame() {
	run := component.Run{Lives: g.cfg.Player.Lives, Level: g.startLevel}
	if err := g.loadLevel(run); err != nil {
		log.Printf("game: new game: %v", err)
		return
	}
	g.state = StatePlaying
}

func (g *Game) continueGame() {
	if !g.saves.HasSave() {
		g.showNotice(noticeNoSave)
		return
	}
	p, err := g.saves.Load()
	if err != nil {
		log.Printf("game: continue: %v", err)
		if errors.Is(err, save.ErrNoSave) {
			g.showNotice(noticeNoSave)
		} else {
			g.showNotice(noticeLoadFailed)
		}
		return
	}
	run := component.Run{
		Score:   p.Score,
		Coins:   p.Coins,
		Lives:   p.Lives,
		Level:   p.Level,
		Message: fmt.Sprintf("Game loaded! Level %d", p.Level),
	}
	if err := g.loadLevel(run); err != nil {
		log.Printf("game: continue: %v", err)
		g.showNotice(noticeLoadFailed)
		return
	}
	g.state = StatePlaying
	g.showNotice(noticeLoaded)
	g.events = append(g.events, ecs.Event{Type: ecs.EventLoaded, Data: p})
}

// nextLevel carries the run into a freshly generated level and autosaves.
func (g *Game) nextLevel() {
	prev := g.run()
	run := component.Run{
		Score: prev.Score,
		Coins: prev.Coins,
		Lives: prev.Lives,
		Level: prev.Level + 1,
	}
	if err := g.loadLevel(run); err != nil {
		log.Printf("game: next level: %v", err)
		return
	}
	g.state = StatePlaying
	g.save()
}

// save persists the run. Failures only surface as a notice.
func (g *Game) save() {
	run := g.run()
	rec, err := g.saves.Save(save.Progress{Score: run.Score, Coins: run.Coins, Lives: run.Lives, Level: run.Level})
	if err != nil {
		log.Printf("game: %v", err)
		g.showNotice(noticeSaveFailed)
		return
	}
	g.showNotice(noticeSaved)
	g.setMessage(noticeSaved)
	g.events = append(g.events, ecs.Event{Type: ecs.EventSaved, Data: rec})
}

// loadLevel replaces the world with a new level carrying run.
func (g *Game) loadLevel(run component.Run) error {
	diff := g.curve.MustAt(run.Level)
	layout := level.Generate(g.cfg, run.Level, diff, g.rng)
	w := ecs.NewWorld()
	if err := level.Spawn(w, g.cfg, layout, run); err != nil {
		return err
	}
	g.world = w
	g.sched = system.NewGameplayScheduler(&g.cfg, g.rng)
	return nil
}

func (g *Game) run() component.Run {
	if g.world == nil {
		return component.Run{}
	}
	if r, ok := ecs.Singleton(g.world, component.RunComponent.Kind()); ok {
		return *r
	}
	return component.Run{}
}

func (g *Game) setMessage(msg string) {
	if g.world == nil {
		return
	}
	if r, ok := ecs.Singleton(g.world, component.RunComponent.Kind()); ok {
		r.Message = msg
	}
}

func (g *Game) showNotice(msg string) {
	g.notice = msg
	g.noticeFrames = g.cfg.NotificationFrames
}

func (g *Game) drainEvents() []ecs.Event {
	var out []ecs.Event
	if g.world != nil {
		out = g.world.Events().Drain()
	}
	return append(out, g.events...)
}

func (g *Game) view() render.View {
	return render.View{
		Scene:        g.state.scene(),
		World:        g.world,
		Config:       g.cfg,
		Frame:        g.frame,
		Notice:       g.notice,
		NoticeFrames: g.noticeFrames,
		Best:         g.saves.Best(),
		HasSave:      g.state == StateMenu && g.saves.HasSave(),
	}
}
