package component

// LevelBounds is the size of the generated level. The player is clamped to
// its width; anything sinking past Height plus its fall margin has left the
// world.
type LevelBounds struct {
	Width  float64
	Height float64
}

// Beneath reports whether a body whose top is at y has dropped more than margin
// below the level.
func (b LevelBounds) Beneath(y, margin float64) bool {
	return y > b.Height+margin
}

var LevelBoundsComponent = NewComponent[LevelBounds]("level bounds")
