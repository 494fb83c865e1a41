package component

// Transform is the top-left corner of an entity in world units.
type Transform struct {
	X float64
	Y float64
}

// Center returns the middle of a w by h box anchored at the transform.
func (t Transform) Center(w, h float64) (float64, float64) {
	return t.X + w/2, t.Y + h/2
}

// Bottom is the y of the box's lower edge.
func (t Transform) Bottom(h float64) float64 {
	return t.Y + h
}

var TransformComponent = NewComponent[Transform]("transform")
