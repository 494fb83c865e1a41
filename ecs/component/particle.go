package component

import "image/color"

// Particle is a short-lived decorative square. Its remaining life is the
// entity's TTL.
type Particle struct {
	MaxLife int
	Color   color.RGBA
	Size    float64
}

var ParticleComponent = NewComponent[Particle]("particle")
