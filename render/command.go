// Package render turns the simulation state into a back-to-front list of
// drawing commands. It never touches a GPU surface; render/painter executes
// the list on an ebiten image.
package render

import "image/color"

type Kind int

const (
	KindRect Kind = iota
	KindRoundRect
	KindStrokeRect
	KindCircle
	KindPolygon
	KindText
	KindGradient
)

// Layer tags a command with the scene layer that produced it. Layers are
// declared in paint order.
type Layer int

const (
	LayerSky Layer = iota
	LayerStars
	LayerMountains
	LayerClouds
	LayerPlatforms
	LayerCoins
	LayerGoal
	LayerEnemies
	LayerBoss
	LayerPlayer
	LayerParticles
	LayerNotification
	LayerOverlay
)

var layerNames = [...]string{
	LayerSky:          "sky",
	LayerStars:        "stars",
	LayerMountains:    "mountains",
	LayerClouds:       "clouds",
	LayerPlatforms:    "platforms",
	LayerCoins:        "coins",
	LayerGoal:         "goal",
	LayerEnemies:      "enemies",
	LayerBoss:         "boss",
	LayerPlayer:       "player",
	LayerParticles:    "particles",
	LayerNotification: "notification",
	LayerOverlay:      "overlay",
}

func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return "unknown"
	}
	return layerNames[l]
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

type Point struct {
	X, Y float64
}

// Command is one screen-space drawing primitive.
//
//   - Rect, RoundRect, StrokeRect and Gradient use X, Y, W, H.
//   - Circle uses X, Y as the center and Radius.
//   - Polygon uses Points.
//   - Text draws Text with its baseline at Y, Size pixels tall.
type Command struct {
	Kind   Kind
	Layer  Layer
	X, Y   float64
	W, H   float64
	Radius float64
	Points []Point
	Color  color.RGBA
	// Stops are the top-to-bottom colors of a gradient.
	Stops       []color.RGBA
	StrokeWidth float64
	Alpha       float64
	Text        string
	Size        float64
	Align       Align
}
