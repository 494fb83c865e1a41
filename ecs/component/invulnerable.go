package component

// Invulnerable marks an entity as temporarily immune to damage. Frames counts
// down once per tick; the entity is vulnerable again at zero.
type Invulnerable struct {
	Frames int
}

func (i *Invulnerable) Active() bool {
	return i != nil && i.Frames > 0
}

var InvulnerableComponent = NewComponent[Invulnerable]("invulnerable")
