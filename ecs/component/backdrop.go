package component

// Star twinkles in the farthest parallax layer.
type Star struct {
	X       float64
	Y       float64
	Size    float64
	Twinkle float64
}

var StarComponent = NewComponent[Star]("star")

// Mountain is a silhouette in the middle parallax layer.
type Mountain struct {
	X      float64
	Width  float64
	Height float64
}

var MountainComponent = NewComponent[Mountain]("mountain")

// Cloud drifts in the nearest parallax layer.
type Cloud struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Speed  float64
}

var CloudComponent = NewComponent[Cloud]("cloud")
