package component

// TTL counts down the frames an effect entity has left.
type TTL struct {
	Frames int
}

// Tick spends one frame and reports whether the entity should now go.
// A TTL that starts at zero expires on its first tick.
func (t *TTL) Tick() bool {
	if t.Frames > 0 {
		t.Frames--
	}
	return t.Frames <= 0
}

var TTLComponent = NewComponent[TTL]("ttl")
