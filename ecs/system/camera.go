package system

import (
	"github.com/milk9111/superanimalrun/common"
	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/tuning"
)

// CameraSystem eases the viewport toward the player and starts any requested
// screen shake.
type CameraSystem struct {
	cfg *tuning.Config
}

func NewCameraSystem(cfg *tuning.Config) *CameraSystem {
	return &CameraSystem{cfg: cfg}
}

func (s *CameraSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	if req, ok := ecs.Get(w, camEntity, component.CameraShakeRequestComponent.Kind()); ok {
		cam.ShakeFrames = max(cam.ShakeFrames, req.Frames)
		ecs.Remove(w, camEntity, component.CameraShakeRequestComponent.Kind())
	}

	if p, ok := findPlayer(w); ok {
		target := p.t.X - s.cfg.Viewport.Width*cam.Lead
		cam.X = common.Lerp(cam.X, target, cam.Smoothness)
	}
	bounds := levelBounds(w, s.cfg)
	cam.X = common.Clamp(cam.X, 0, max(0, bounds.Width-s.cfg.Viewport.Width))
}
