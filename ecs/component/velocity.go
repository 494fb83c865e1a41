package component

import "github.com/jakecoffman/cp"

// Velocity is the per-frame displacement of an entity.
type Velocity struct {
	cp.Vector
}

var VelocityComponent = NewComponent[Velocity]("velocity")
