package component

// BossKind selects the boss art and name.
type BossKind int

const (
	BossLion BossKind = iota
	BossTiger
)

func (k BossKind) String() string {
	if k == BossTiger {
		return "tiger"
	}
	return "lion"
}

// Label is the on-screen name shown above the health bar.
func (k BossKind) Label() string {
	if k == BossTiger {
		return "TIGER"
	}
	return "LION"
}

// Boss is the end-of-level guardian.
type Boss struct {
	Kind        BossKind
	Width       float64
	Height      float64
	Alive       bool
	HP          int
	MaxHP       int
	StartX      float64
	PatrolRange float64
	PatrolSpeed float64
	ChargeSpeed float64
	AnimTimer   float64

	// ChargeTimer counts cooldown frames while patrolling and charge frames
	// while charging.
	ChargeTimer int
	Charging    bool
	HitTimer    int
	RoarTimer   int
}

var BossComponent = NewComponent[Boss]("boss")
