package render

import (
	"image/color"
	"math"

	"github.com/milk9111/superanimalrun/common"
	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
)

func drawPlatforms(c *Canvas, v View, camX float64) {
	c.SetLayer(LayerPlatforms)
	viewW := v.Config.Viewport.Width
	ecs.ForEach2(v.World, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Platform, t *component.Transform) {
		px := t.X - camX
		if !visible(px, p.Width, platformCull, viewW) {
			return
		}
		if p.Kind == component.PlatformGround {
			c.Rect(px, t.Y, p.Width, p.Height, common.Dirt)
			c.Rect(px, t.Y+6, p.Width, p.Height-6, common.DirtDark)
			c.Rect(px, t.Y, p.Width, 8, common.Ground)
			c.Rect(px, t.Y, p.Width, 4, common.PlatformTop)
			for gx := px; gx < px+p.Width; gx += 8 {
				gh := 3 + math.Sin(gx*0.3)*2
				c.Rect(gx, t.Y-gh, 2, gh, common.PlatformTop)
			}
			return
		}
		c.Rect(px+2, t.Y+4, p.Width-4, p.Height-4, common.PlatformEdge)
		c.Rect(px, t.Y, p.Width, p.Height-4, common.Platform)
		c.Rect(px, t.Y, p.Width, 4, common.PlatformTop)
	})
}

func drawCoins(c *Canvas, v View, camX float64) {
	c.SetLayer(LayerCoins)
	f := float64(v.Frame)
	ecs.ForEach2(v.World, component.CoinComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, coin *component.Coin, t *component.Transform) {
		if coin.Collected {
			return
		}
		cx := t.X - camX
		if cx < -coinCull || cx > v.Config.Viewport.Width+coinCull {
			return
		}
		bobY := t.Y + math.Sin(f*0.06+coin.Phase)*4
		w := coin.Width * math.Abs(math.Cos(f*0.05+coin.Phase))
		x := cx + (coin.Width-w)/2

		c.Circle(cx+coin.Width/2, bobY+coin.Height/2, 12, common.CoinGlow, 0.3)
		c.Rect(x, bobY, w, coin.Height, common.Coin)
		c.Rect(x+2, bobY+2, w*0.3, coin.Height*0.4, common.CoinShine)
	})
}

func drawGoal(c *Canvas, v View, camX float64) {
	c.SetLayer(LayerGoal)
	f := float64(v.Frame)
	ecs.ForEach2(v.World, component.GoalComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, g *component.Goal, t *component.Transform) {
		fx := t.X - camX
		if fx < -goalCull || fx > v.Config.Viewport.Width+goalCull {
			return
		}
		c.Rect(fx+14, t.Y, 4, g.Height, common.FlagPole)
		c.Polygon(common.Flag, 1,
			Point{fx + 18, t.Y},
			Point{fx + 42 + math.Sin(f*0.08)*4, t.Y + 8},
			Point{fx + 38 + math.Sin(f*0.08+1)*3, t.Y + 20},
			Point{fx + 18, t.Y + 20},
		)
		drawStar(c, fx+28, t.Y+10, 4, common.TextYellow)
		c.Circle(fx+16, t.Y+32, 30+math.Sin(f*0.05)*5, common.GoalGlow, 0.2)
	})
}

// drawStar draws a five-pointed star centered on (x, y).
func drawStar(c *Canvas, x, y, r float64, clr color.RGBA) {
	pts := make([]Point, 0, 10)
	for i := range 10 {
		rad := r
		if i%2 == 1 {
			rad = r * 0.45
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		pts = append(pts, Point{x + math.Cos(a)*rad, y + math.Sin(a)*rad})
	}
	c.Polygon(clr, 1, pts...)
}

func drawPlayer(c *Canvas, v View, camX float64) {
	c.SetLayer(LayerPlayer)
	e, ok := ecs.First(v.World, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	p, okP := ecs.Get(v.World, e, component.PlayerComponent.Kind())
	t, okT := ecs.Get(v.World, e, component.TransformComponent.Kind())
	if !okP || !okT {
		return
	}
	if inv, ok := ecs.Get(v.World, e, component.InvulnerableComponent.Kind()); ok && inv.Frames > 0 && (inv.Frames/4)%2 == 0 {
		return
	}

	vx := 0.0
	if vel, ok := ecs.Get(v.World, e, component.VelocityComponent.Kind()); ok {
		vx = vel.X
	}
	legs := 0.0
	if body, ok := ecs.Get(v.World, e, component.PhysicsBodyComponent.Kind()); ok && body.OnGround && vx != 0 {
		legs = math.Sin(float64(p.WalkFrame)*math.Pi/2) * 3
	}
	facing := float64(p.Facing)
	if facing == 0 {
		facing = 1
	}
	squash := p.Squash
	if squash == 0 {
		squash = 1
	}

	c.Save()
	c.Translate(t.X-camX+p.Width/2, t.Y+p.Height)
	c.Scale(facing*(2-squash), squash)
	c.Translate(-p.Width/2, -p.Height)
	drawPlayerBody(c, p.Width, p.Height, vx, legs)
	c.Restore()
}

func drawPlayerBody(c *Canvas, w, h, vx, legs float64) {
	c.RoundRect(2, 6, w-4, h-8, 6, common.Player)
	c.RoundRect(6, 12, w-12, h-18, 4, common.PlayerBelly)

	c.Rect(8, 10, 7, 7, common.Eye)
	c.Rect(17, 10, 7, 7, common.Eye)
	pupil := 1.5
	switch {
	case vx > 0:
		pupil = 3
	case vx < 0:
		pupil = 0
	}
	c.Rect(8+pupil, 12, 3, 4, common.Pupil)
	c.Rect(17+pupil, 12, 3, 4, common.Pupil)

	c.Rect(4, 2, 6, 6, common.PlayerDark)
	c.Rect(18, 2, 6, 6, common.PlayerDark)

	c.Rect(6, h-6+legs, 6, 4, common.PlayerDark)
	c.Rect(16, h-6-legs, 6, 4, common.PlayerDark)
}

// faceAway mirrors the drawing about the entity center so the art, drawn
// facing left, looks in the direction of travel.
func faceAway(c *Canvas, sx, y, w, h, vx float64) {
	facing := 1.0
	if vx >= 0 {
		facing = -1
	}
	c.Translate(sx+w/2, y+h/2)
	c.Scale(facing, 1)
	c.Translate(-w/2, -h/2)
}

var enemyArt = [component.EnemyKindCount]func(c *Canvas, e *component.Enemy){
	component.EnemySnake: func(c *Canvas, e *component.Enemy) { drawSnake(c, e.AnimTimer) },
	component.EnemyEagle: func(c *Canvas, e *component.Enemy) { drawEagle(c, e.AnimTimer, e.Diving) },
	component.EnemyBoar:  func(c *Canvas, e *component.Enemy) { drawBoar(c, e.AnimTimer) },
	component.EnemyBat:   func(c *Canvas, e *component.Enemy) { drawBat(c, e.AnimTimer) },
}

func drawEnemies(c *Canvas, v View, camX float64) {
	c.SetLayer(LayerEnemies)
	ecs.ForEach2(v.World, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(ent ecs.Entity, e *component.Enemy, t *component.Transform) {
		if !e.Alive || e.Kind < 0 || e.Kind >= component.EnemyKindCount {
			return
		}
		ex := t.X - camX
		if ex < -enemyCull || ex > v.Config.Viewport.Width+enemyCull {
			return
		}
		vx := 0.0
		if vel, ok := ecs.Get(v.World, ent, component.VelocityComponent.Kind()); ok {
			vx = vel.X
		}
		c.Save()
		faceAway(c, ex, t.Y, e.Width, e.Height, vx)
		enemyArt[e.Kind](c, e)
		c.Restore()
	})
}

func drawSnake(c *Canvas, anim float64) {
	for i := range 5 {
		fi := float64(i)
		c.Rect(4+fi*5, 10+math.Sin(anim+fi*0.8)*4, 6, 8, common.Snake)
	}
	c.Rect(0, 8, 8, 10, common.SnakeDark)
	c.Rect(2, 10, 3, 3, common.SnakeEye)
	if math.Sin(anim*3) > 0.5 {
		c.Rect(-3, 13, 4, 2, common.Danger)
	}
}

func drawEagle(c *Canvas, anim float64, diving bool) {
	c.Rect(8, 10, 14, 10, common.Eagle)
	c.Rect(2, 8, 10, 10, common.EagleDark)
	c.Rect(-2, 12, 5, 4, common.EagleBeak)
	c.Rect(4, 10, 4, 4, common.Eye)
	c.Rect(5, 11, 2, 2, common.Black)
	wing := math.Sin(anim*4) * 6
	c.Rect(8, 4+wing, 18, 6, common.Eagle)
	c.Rect(8, 4-wing, 18, 6, common.Eagle)
	if diving {
		c.Rect(-2, 6, 4, 4, common.Danger)
	}
}

func drawBoar(c *Canvas, anim float64) {
	c.RoundRect(4, 6, 22, 16, 4, common.Boar)
	c.Rect(0, 8, 10, 12, common.BoarDark)
	c.Rect(-2, 16, 4, 6, common.BoarTusk)
	c.Rect(2, 10, 4, 4, common.Danger)
	legs := math.Sin(anim*5) * 2
	c.Rect(6, 20+legs, 4, 6, common.BoarDark)
	c.Rect(18, 20-legs, 4, 6, common.BoarDark)
}

func drawBat(c *Canvas, anim float64) {
	c.Rect(10, 8, 10, 12, common.Bat)
	c.Rect(11, 4, 8, 8, common.BatDark)
	c.Rect(11, 0, 3, 5, common.BatDark)
	c.Rect(17, 0, 3, 5, common.BatDark)
	c.Rect(12, 6, 3, 3, common.BatEye)
	c.Rect(17, 6, 3, 3, common.BatEye)
	wing := math.Sin(anim*5) * 8
	c.Rect(-2, 8+wing, 12, 4, common.Bat)
	c.Rect(20, 8-wing, 12, 4, common.Bat)
	c.Rect(0, 10+wing, 10, 2, common.BatDark)
	c.Rect(20, 10-wing, 10, 2, common.BatDark)
}

func drawBoss(c *Canvas, v View, camX float64) {
	c.SetLayer(LayerBoss)
	ecs.ForEach2(v.World, component.BossComponent.Kind(), component.TransformComponent.Kind(), func(ent ecs.Entity, b *component.Boss, t *component.Transform) {
		if !b.Alive {
			return
		}
		bx := t.X - camX
		if bx < -bossCull || bx > v.Config.Viewport.Width+bossCull {
			return
		}
		vx := 0.0
		if vel, ok := ecs.Get(v.World, ent, component.VelocityComponent.Kind()); ok {
			vx = vel.X
		}

		c.Save()
		if b.HitTimer > 0 && (b.HitTimer/3)%2 == 0 {
			c.SetAlpha(0.5)
		}
		faceAway(c, bx, t.Y, b.Width, b.Height, vx)
		s := b.Width / 30
		c.Scale(s, s)
		mouth := b.RoarTimer > 0 || b.Charging
		if b.Kind == component.BossTiger {
			drawTiger(c, b.AnimTimer, mouth)
		} else {
			drawLion(c, b.AnimTimer, mouth)
		}
		c.Restore()

		drawBossBar(c, b, bx, t.Y)
	})
}

func drawBossBar(c *Canvas, b *component.Boss, bx, y float64) {
	const barW, barH = 60, 6
	barX := bx + b.Width/2 - barW/2
	barY := y - 14

	c.Rect(barX, barY, barW, barH, common.HealthBg)
	ratio := 0.0
	if b.MaxHP > 0 {
		ratio = math.Max(0, float64(b.HP)/float64(b.MaxHP))
	}
	fill := common.HealthLow
	switch {
	case ratio > 0.5:
		fill = common.HealthHigh
	case ratio > 0.25:
		fill = common.HealthMid
	}
	if ratio > 0 {
		c.Rect(barX, barY, barW*ratio, barH, fill)
	}
	c.StrokeRect(barX, barY, barW, barH, 1, common.TextWhite)
	c.Text(b.Kind.Label(), bx+b.Width/2, barY-4, 8, common.TextPink, AlignCenter)
	if b.Charging {
		c.Text("!!", bx+b.Width/2, y-24, 10, common.Danger, AlignCenter)
	}
}

func drawLion(c *Canvas, anim float64, mouth bool) {
	c.Circle(12, 10, 14, common.LionMane, 1)
	c.RoundRect(4, 6, 22, 18, 5, common.Lion)
	c.RoundRect(8, 12, 14, 10, 3, common.LionDark)
	c.Rect(6, 8, 6, 5, common.Eye)
	c.Rect(16, 8, 6, 5, common.Eye)
	c.Rect(8, 9, 3, 3, common.Danger)
	c.Rect(18, 9, 3, 3, common.Danger)
	c.Rect(9, 14, 10, 5, common.Lion)
	c.Rect(12, 14, 4, 3, common.Pupil)
	if mouth {
		c.Rect(10, 18, 8, 5, common.Danger)
		c.Rect(11, 18, 2, 3, common.Eye)
		c.Rect(15, 18, 2, 3, common.Eye)
	}
	legs := math.Sin(anim*5) * 3
	c.Rect(6, 22+legs, 5, 6, common.LionDark)
	c.Rect(18, 22-legs, 5, 6, common.LionDark)
	c.Rect(24, 10, 6, 3, common.LionMane)
	c.Rect(28, 8, 3, 3, common.LionMane)
}

func drawTiger(c *Canvas, anim float64, mouth bool) {
	c.RoundRect(2, 4, 26, 18, 5, common.Tiger)
	for i := range 4 {
		c.Rect(6+float64(i)*5, 6, 3, 14, common.TigerDark)
	}
	c.RoundRect(6, 10, 16, 10, 3, common.TigerBelly)
	c.Rect(0, 4, 12, 14, common.Tiger)
	c.Rect(2, 4, 2, 10, common.TigerDark)
	c.Rect(8, 4, 2, 10, common.TigerDark)
	c.Rect(0, 0, 5, 5, common.TigerDark)
	c.Rect(7, 0, 5, 5, common.TigerDark)
	c.Rect(2, 8, 5, 4, common.SnakeEye)
	c.Rect(8, 8, 5, 4, common.SnakeEye)
	c.Rect(3, 9, 2, 2, common.Pupil)
	c.Rect(9, 9, 2, 2, common.Pupil)
	c.Rect(3, 13, 8, 4, common.TigerBelly)
	c.Rect(5, 13, 4, 2, common.Player)
	if mouth {
		c.Rect(3, 16, 8, 5, common.Danger)
		c.Rect(4, 16, 2, 3, common.Eye)
		c.Rect(8, 16, 2, 3, common.Eye)
	}
	legs := math.Sin(anim*5) * 3
	c.Rect(4, 20+legs, 5, 6, common.TigerDark)
	c.Rect(20, 20-legs, 5, 6, common.TigerDark)
	c.Rect(26, 8, 5, 3, common.Tiger)
	c.Rect(28, 8, 2, 3, common.TigerDark)
}
