package component

// Goal is the end-of-level flag. It only counts once the boss is down.
type Goal struct {
	Width  float64
	Height float64
}

var GoalComponent = NewComponent[Goal]("goal")
