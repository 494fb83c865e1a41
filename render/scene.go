package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/milk9111/superanimalrun/common"
	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/tuning"
)

// Scene is the top-level screen being drawn.
type Scene int

const (
	SceneMenu Scene = iota
	ScenePlaying
	ScenePaused
	SceneGameOver
	SceneLevelWin
)

func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "menu"
	case ScenePlaying:
		return "playing"
	case ScenePaused:
		return "paused"
	case SceneGameOver:
		return "game_over"
	case SceneLevelWin:
		return "level_win"
	}
	return "unknown"
}

// View is everything Build needs for one frame.
type View struct {
	Scene  Scene
	World  *ecs.World
	Config tuning.Config
	// Frame is the global frame counter driving the idle animations.
	Frame int
	// Notice is the transient message box text, visible while NoticeFrames > 0.
	Notice       string
	NoticeFrames int
	Best         int
	HasSave      bool
}

const (
	platformCull = 10
	coinCull     = 20
	enemyCull    = 40
	bossCull     = 80
	goalCull     = 40
	starCull     = 10

	starParallax     = 0.2
	mountainParallax = 0.3
	cloudParallax    = 0.4

	noticeFade = 30
)

// Build returns the frame's commands in paint order.
func Build(v View) []Command {
	c := NewCanvas()
	drawSky(c, v)
	if v.World == nil {
		drawOverlay(c, v)
		return c.Commands()
	}

	camX := 0.0
	if cam, ok := ecs.Singleton(v.World, component.CameraComponent.Kind()); ok && v.Scene != SceneMenu {
		camX = cam.X
	}

	drawStars(c, v, camX)
	if v.Scene != SceneMenu {
		drawMountains(c, v, camX)
		drawClouds(c, v, camX)
		drawPlatforms(c, v, camX)
		drawCoins(c, v, camX)
		drawGoal(c, v, camX)
		drawEnemies(c, v, camX)
		drawBoss(c, v, camX)
		drawPlayer(c, v, camX)
		drawParticles(c, v, camX)
	}
	drawNotice(c, v)
	drawOverlay(c, v)
	return c.Commands()
}

// visible reports whether a span starting at screen x with width w is within
// margin of the viewport.
func visible(sx, w, margin, viewW float64) bool {
	return sx+w >= -margin && sx <= viewW+margin
}

func drawSky(c *Canvas, v View) {
	c.SetLayer(LayerSky)
	c.Gradient(0, 0, v.Config.Viewport.Width, v.Config.Viewport.Height, common.SkyTop, common.SkyMiddle, common.SkyBottom)
}

func drawStars(c *Canvas, v View, camX float64) {
	c.SetLayer(LayerStars)
	viewW := v.Config.Viewport.Width
	ecs.ForEach(v.World, component.StarComponent.Kind(), func(_ ecs.Entity, s *component.Star) {
		sx := s.X - camX*starParallax
		if sx < -starCull || sx > viewW+starCull {
			return
		}
		twinkle := (math.Sin(s.Twinkle+float64(v.Frame)*0.03) + 1) / 2
		c.RectAlpha(sx, s.Y, s.Size, s.Size, common.TextWhite, 0.3+twinkle*0.7)
	})
}

func drawMountains(c *Canvas, v View, camX float64) {
	c.SetLayer(LayerMountains)
	base := v.Config.Viewport.Height - v.Config.Tile
	ecs.ForEach(v.World, component.MountainComponent.Kind(), func(_ ecs.Entity, m *component.Mountain) {
		mx := m.X - camX*mountainParallax
		if !visible(mx, m.Width, 0, v.Config.Viewport.Width) {
			return
		}
		c.Polygon(common.Mountain, 0.6,
			Point{mx, base},
			Point{mx + m.Width/2, base - m.Height},
			Point{mx + m.Width, base},
		)
	})
}

func drawClouds(c *Canvas, v View, camX float64) {
	c.SetLayer(LayerClouds)
	viewW := v.Config.Viewport.Width
	ecs.ForEach(v.World, component.CloudComponent.Kind(), func(_ ecs.Entity, cl *component.Cloud) {
		span := viewW + cl.Width
		cx := math.Mod(cl.X+float64(v.Frame)*cl.Speed, span)
		if cx < 0 {
			cx += span
		}
		sx := cx - cl.Width - camX*cloudParallax
		if sx < -cl.Width || sx > viewW+cl.Width {
			return
		}
		c.Circle(sx, cl.Y, cl.Height, common.Cloud, 0.15)
		c.Circle(sx+cl.Width*0.3, cl.Y-cl.Height*0.3, cl.Height*0.8, common.Cloud, 0.15)
		c.Circle(sx+cl.Width*0.6, cl.Y, cl.Height*0.9, common.Cloud, 0.15)
	})
}

func drawParticles(c *Canvas, v View, camX float64) {
	c.SetLayer(LayerParticles)
	ecs.ForEach2(v.World, component.ParticleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Particle, t *component.Transform) {
		life := 0
		if ttl, ok := ecs.Get(v.World, e, component.TTLComponent.Kind()); ok {
			life = ttl.Frames
		}
		if p.MaxLife <= 0 || life <= 0 {
			return
		}
		c.RectAlpha(t.X-camX, t.Y, p.Size, p.Size, p.Color, float64(life)/float64(p.MaxLife))
	})
}

// textWidth approximates the rendered width of s at size pixels.
func textWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.6
}

func drawNotice(c *Canvas, v View) {
	if v.NoticeFrames <= 0 || v.Notice == "" {
		return
	}
	c.SetLayer(LayerNotification)
	alpha := 1.0
	if v.NoticeFrames < noticeFade {
		alpha = float64(v.NoticeFrames) / noticeFade
	}
	c.Save()
	c.SetAlpha(alpha)
	w := textWidth(v.Notice, 16) + 40
	x := (v.Config.Viewport.Width - w) / 2
	c.RectAlpha(x, 60, w, 40, common.Pupil, 0.7)
	c.StrokeRect(x, 60, w, 40, 2, common.NoticeBorder)
	c.Text(v.Notice, v.Config.Viewport.Width/2, 86, 16, common.TextWhite, AlignCenter)
	c.Restore()
}

func pulse(frame int) float64 {
	return 0.9 + math.Sin(float64(frame)*0.06)*0.1
}

func drawOverlay(c *Canvas, v View) {
	c.SetLayer(LayerOverlay)
	switch v.Scene {
	case SceneMenu:
		drawTitle(c, v)
	case ScenePaused:
		drawPause(c, v)
	case SceneGameOver:
		drawGameOver(c, v)
	case SceneLevelWin:
		drawLevelWin(c, v)
	}
}

func runOf(v View) component.Run {
	if v.World == nil {
		return component.Run{}
	}
	if r, ok := ecs.Singleton(v.World, component.RunComponent.Kind()); ok {
		return *r
	}
	return component.Run{}
}

func centerText(c *Canvas, v View, s string, y, size float64, clr color.RGBA) {
	c.Text(s, v.Config.Viewport.Width/2, y, size, clr, AlignCenter)
}

// pulsingText draws centered text scaled about its own baseline.
func pulsingText(c *Canvas, v View, s string, y, size float64, clr color.RGBA) {
	c.Save()
	c.Translate(v.Config.Viewport.Width/2, y)
	p := pulse(v.Frame)
	c.Scale(p, p)
	c.Text(s, 0, 0, size, clr, AlignCenter)
	c.Restore()
}

func dim(c *Canvas, v View) {
	c.Rect(0, 0, v.Config.Viewport.Width, v.Config.Viewport.Height, common.Overlay)
}

func drawTitle(c *Canvas, v View) {
	centerText(c, v, "SUPER", 120, 28, common.TextCyan)
	centerText(c, v, "ANIMAL RUN", 165, 28, common.TextCyan)
	centerText(c, v, "Run, jump and stomp your way home", 210, 12, common.TextYellow)

	cx := v.Config.Viewport.Width / 2
	f := float64(v.Frame)
	for i := range 4 {
		fi := float64(i)
		x := cx - 100 + fi*60 + math.Sin(f*0.03+fi)*10
		y := 260 + math.Cos(f*0.04+fi*0.8)*10
		drawTitleAnimal(c, i, x, y)
	}

	pulsingText(c, v, "Press SPACE to start", 330, 14, common.TextPink)
	if v.HasSave {
		centerText(c, v, "C = Continue", 365, 10, common.TextGreen)
	}
	if v.Best > 0 {
		centerText(c, v, fmt.Sprintf("Best: %d", v.Best), 385, 10, common.TextYellow)
	}
	centerText(c, v, "Arrows/WASD move - SPACE jump - P pause - S save", 420, 10, common.TextWhite)
}

// drawTitleAnimal draws the player, then the three regular enemies in turn.
func drawTitleAnimal(c *Canvas, i int, x, y float64) {
	c.Save()
	c.Translate(x-15, y-13)
	switch i {
	case 0:
		drawPlayerBody(c, 28, 32, 0, 0)
	case 1:
		drawSnake(c, 0)
	case 2:
		drawEagle(c, 0, false)
	default:
		drawBoar(c, 0)
	}
	c.Restore()
}

func drawPause(c *Canvas, v View) {
	dim(c, v)
	mid := v.Config.Viewport.Height / 2
	centerText(c, v, "PAUSE", mid-20, 28, common.TextCyan)
	centerText(c, v, "Press P to resume", mid+30, 12, common.TextYellow)
	centerText(c, v, "S = Save", mid+60, 10, common.TextGreen)
}

func drawGameOver(c *Canvas, v View) {
	dim(c, v)
	run := runOf(v)
	centerText(c, v, "GAME OVER", 160, 32, common.TextPink)
	centerText(c, v, fmt.Sprintf("Score: %d", run.Score), 220, 16, common.TextYellow)
	centerText(c, v, fmt.Sprintf("Level: %d", run.Level), 250, 16, common.TextYellow)
	centerText(c, v, fmt.Sprintf("Coins: %d", run.Coins), 280, 16, common.TextYellow)
	best := max(v.Best, run.Score)
	centerText(c, v, fmt.Sprintf("Best: %d", best), 306, 10, common.TextGreen)
	pulsingText(c, v, "Press SPACE to restart", 340, 12, common.TextCyan)
}

func drawLevelWin(c *Canvas, v View) {
	dim(c, v)
	run := runOf(v)
	centerText(c, v, fmt.Sprintf("LEVEL %d", run.Level), 150, 28, common.TextGreen)
	centerText(c, v, "COMPLETE!", 190, 28, common.TextGreen)
	centerText(c, v, fmt.Sprintf("Score: %d", run.Score), 240, 16, common.TextYellow)
	centerText(c, v, fmt.Sprintf("Coins: %d", run.Coins), 270, 16, common.TextYellow)
	pulsingText(c, v, fmt.Sprintf("SPACE for level %d", run.Level+1), 340, 12, common.TextCyan)
}
