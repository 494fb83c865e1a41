package component

// SafeRespawn is the last spot the player stood on solid ground. A pit fall
// puts the player back here.
type SafeRespawn struct {
	X     float64
	Y     float64
	Valid bool
}

func (s *SafeRespawn) Record(x, y float64) {
	s.X, s.Y = x, y
	s.Valid = true
}

var SafeRespawnComponent = NewComponent[SafeRespawn]("safe respawn")
