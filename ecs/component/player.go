package component

// Player holds the avatar's presentation and movement state.
type Player struct {
	Width     float64
	Height    float64
	Facing    int
	Jumping   bool
	WalkFrame int
	WalkTimer int
	// Squash is the vertical scale used for squash-and-stretch; 1 is rest.
	Squash float64
}

var PlayerComponent = NewComponent[Player]("player")
