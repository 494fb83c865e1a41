package component

// Coin is a collectible. Collected coins stay in the world and are skipped.
type Coin struct {
	Width     float64
	Height    float64
	Collected bool
	// Phase offsets the bob and spin animation.
	Phase float64
}

var CoinComponent = NewComponent[Coin]("coin")
