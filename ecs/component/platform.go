package component

// PlatformKind distinguishes the ground strip from floating ledges.
type PlatformKind int

const (
	PlatformGround PlatformKind = iota
	PlatformFloating
)

func (k PlatformKind) String() string {
	if k == PlatformFloating {
		return "floating"
	}
	return "ground"
}

// Platform is immutable solid geometry.
type Platform struct {
	Kind   PlatformKind
	Width  float64
	Height float64
}

var PlatformComponent = NewComponent[Platform]("platform")
