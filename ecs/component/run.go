package component

// Run is the singleton scoreboard of the current play-through.
type Run struct {
	Score int
	Coins int
	Lives int
	Level int
	// Message is the status line shown by the HUD.
	Message string
	// Over is set once lives reach zero; damage is ignored afterwards.
	Over bool
	// Cleared is set when the player touches the goal with the boss down.
	Cleared bool
}

var RunComponent = NewComponent[Run]("run")
