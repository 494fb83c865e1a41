package component

// EnemyKind tags the behavior an enemy runs.
type EnemyKind int

const (
	EnemySnake EnemyKind = iota
	EnemyEagle
	EnemyBoar
	EnemyBat

	EnemyKindCount
)

// EnemyPool is the spawn order; early levels draw from a prefix of it.
var EnemyPool = [EnemyKindCount]EnemyKind{EnemySnake, EnemyEagle, EnemyBoar, EnemyBat}

func (k EnemyKind) String() string {
	switch k {
	case EnemySnake:
		return "snake"
	case EnemyEagle:
		return "eagle"
	case EnemyBoar:
		return "boar"
	case EnemyBat:
		return "bat"
	default:
		return "unknown"
	}
}

// Aerial reports whether the kind flies instead of walking under gravity.
func (k EnemyKind) Aerial() bool {
	return k == EnemyEagle || k == EnemyBat
}

// Enemy is a regular hostile animal.
type Enemy struct {
	Kind        EnemyKind
	Width       float64
	Height      float64
	Alive       bool
	StartX      float64
	StartY      float64
	PatrolRange float64
	AnimTimer   float64

	Diving    bool
	DiveTimer int
}

var EnemyComponent = NewComponent[Enemy]("enemy")
