package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/superanimalrun/game"
)

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// readInput samples the keyboard once per frame.
func readInput() game.Input {
	return game.Input{
		Left:     anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:    anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Jump:     anyPressed(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace),
		Start:    anyJustPressed(ebiten.KeySpace),
		Pause:    anyJustPressed(ebiten.KeyP),
		Save:     anyJustPressed(ebiten.KeyS),
		Continue: anyJustPressed(ebiten.KeyC),
	}
}
