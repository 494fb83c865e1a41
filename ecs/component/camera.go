package component

// Camera is the horizontal scroll state of the viewport.
type Camera struct {
	X          float64
	Smoothness float64
	// Lead places the followed entity this fraction of the viewport from the
	// left edge.
	Lead float64
	// ShakeFrames is the remaining screen shake; magnitude decays with it.
	ShakeFrames int
}

var CameraComponent = NewComponent[Camera]("camera")
