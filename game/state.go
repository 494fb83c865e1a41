package game

import "github.com/milk9111/superanimalrun/render"

// State is the top-level screen of the game.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateLevelWin
)

func (s State) String() string {
	return s.scene().String()
}

func (s State) scene() render.Scene {
	switch s {
	case StatePlaying:
		return render.ScenePlaying
	case StatePaused:
		return render.ScenePaused
	case StateGameOver:
		return render.SceneGameOver
	case StateLevelWin:
		return render.SceneLevelWin
	}
	return render.SceneMenu
}
