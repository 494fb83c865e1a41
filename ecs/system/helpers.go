package system

import (
	"fmt"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/superanimalrun/common"
	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/ecs/entity"
	"github.com/milk9111/superanimalrun/tuning"
)

// rectBB converts a top-left rectangle to a bounding box. With y growing
// downward B is the top edge and T the bottom edge.
func rectBB(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}

// hitBB insets the left, right and top edges of a rectangle. The bottom edge
// stays put so a player walking into an enemy from the side is still caught.
func hitBB(x, y, w, h, inset float64) cp.BB {
	return cp.BB{L: x + inset, B: y + inset, R: x + w - inset, T: y + h}
}

type playerRefs struct {
	entity ecs.Entity
	t      *component.Transform
	v      *component.Velocity
	body   *component.PhysicsBody
	player *component.Player
}

func (p playerRefs) bb() cp.BB {
	return rectBB(p.t.X, p.t.Y, p.player.Width, p.player.Height)
}

func (p playerRefs) center() (float64, float64) {
	return p.t.Center(p.player.Width, p.player.Height)
}

func findPlayer(w *ecs.World) (playerRefs, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return playerRefs{}, false
	}
	t, okT := ecs.Get(w, e, component.TransformComponent.Kind())
	v, okV := ecs.Get(w, e, component.VelocityComponent.Kind())
	body, okB := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	player, okP := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !okT || !okV || !okB || !okP {
		return playerRefs{}, false
	}
	return playerRefs{entity: e, t: t, v: v, body: body, player: player}, true
}

// levelBounds reads the world's bounds, falling back to the tuned level size.
func levelBounds(w *ecs.World, cfg *tuning.Config) component.LevelBounds {
	if b, ok := ecs.Singleton(w, component.LevelBoundsComponent.Kind()); ok && b.Width > 0 {
		return *b
	}
	return component.LevelBounds{Width: cfg.LevelWidth, Height: cfg.Viewport.Height}
}

func addScore(w *ecs.World, points int) {
	if run, ok := ecs.Singleton(w, component.RunComponent.Kind()); ok {
		run.Score += points
	}
}

func setMessage(w *ecs.World, msg string) {
	if run, ok := ecs.Singleton(w, component.RunComponent.Kind()); ok {
		run.Message = msg
	}
}

// requestShake asks the camera for a shake of at least frames.
func requestShake(w *ecs.World, frames int) {
	cam, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	if req, ok := ecs.Get(w, cam, component.CameraShakeRequestComponent.Kind()); ok {
		req.Frames = max(req.Frames, frames)
		return
	}
	_ = ecs.Add(w, cam, component.CameraShakeRequestComponent.Kind(), &component.CameraShakeRequest{Frames: frames})
}

// hurtPlayer costs the player one life unless they are invulnerable or the run
// is already over. It reports whether a life was lost.
func hurtPlayer(w *ecs.World, cfg *tuning.Config, rng *rand.Rand, p playerRefs) bool {
	run, ok := ecs.Singleton(w, component.RunComponent.Kind())
	if !ok || run.Over {
		return false
	}
	inv, ok := ecs.Get(w, p.entity, component.InvulnerableComponent.Kind())
	if ok && inv.Active() {
		return false
	}

	run.Lives--
	w.Events().Emit(ecs.EventHurt)
	if run.Lives <= 0 {
		run.Lives = 0
		run.Over = true
		run.Message = fmt.Sprintf("Game Over! Score: %d - SPACE to restart", run.Score)
		w.Events().Emit(ecs.EventGameOver)
		return true
	}

	if ok {
		inv.Frames = cfg.Player.InvincibleFrames
	}
	p.v.Y = cfg.Player.JumpForce * 0.5
	requestShake(w, cfg.Shake.Hurt)
	cx, cy := p.center()
	entity.SpawnBurst(w, rng, cx, cy, common.TextPink, 15)
	return true
}
