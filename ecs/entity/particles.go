package entity

import (
	"image/color"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
)

const (
	particleMinLife = 30
	particleMaxLife = 50
)

// SpawnBurst scatters count particles upward from (x, y).
func SpawnBurst(w *ecs.World, rng *rand.Rand, x, y float64, clr color.RGBA, count int) {
	for i := 0; i < count; i++ {
		e := ecs.CreateEntity(w)
		life := particleMinLife + rng.IntN(particleMaxLife-particleMinLife+1)
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
		_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{Vector: cp.Vector{
			X: (rng.Float64() - 0.5) * 6,
			Y: -rng.Float64()*5 - 2,
		}})
		_ = ecs.Add(w, e, component.ParticleComponent.Kind(), &component.Particle{
			MaxLife: particleMaxLife,
			Color:   clr,
			Size:    2 + rng.Float64()*4,
		})
		_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: life})
	}
}
