package component

// PhysicsBody marks an axis-aligned rectangle that the physics system moves
// and resolves against platforms.
type PhysicsBody struct {
	Width  float64
	Height float64

	// MaxFall caps downward velocity after gravity is applied.
	MaxFall float64
	// WallBand is the horizontal tolerance for side contacts. Zero disables
	// side resolution.
	WallBand float64
	// TurnAtWalls reverses horizontal velocity on side contact and at the
	// level edges.
	TurnAtWalls bool
	// BlockCeiling enables the hit-from-below check.
	BlockCeiling bool
	// ClampToLevel keeps the body inside [0, levelWidth-Width].
	ClampToLevel bool
	// FallMargin is how far below the level the body may drop before it is
	// considered out of the world.
	FallMargin float64

	OnGround bool
	Landed   bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]("physics body")
