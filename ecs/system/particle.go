package system

import (
	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
)

const particleGravity = 0.15

// ParticleSystem moves decorative particles. Their lifetime is handled by the
// TTL system.
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.ParticleComponent.Kind(), func(e ecs.Entity, _ *component.Particle) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
		if !ok {
			return
		}
		t.X += v.X
		t.Y += v.Y
		v.Y += particleGravity
	})
}
