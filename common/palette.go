package common

import (
	"image/color"

	"github.com/milk9111/superanimalrun/ecs/component"
)

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

var (
	SkyTop    = rgb(0x1a, 0x0a, 0x2e)
	SkyMiddle = rgb(0x2d, 0x1b, 0x69)
	SkyBottom = rgb(0x0f, 0x34, 0x60)

	Ground       = rgb(0x2d, 0x5a, 0x27)
	Dirt         = rgb(0x8b, 0x45, 0x13)
	DirtDark     = rgb(0x65, 0x43, 0x21)
	Platform     = rgb(0x4a, 0x9e, 0x3f)
	PlatformEdge = rgb(0x3a, 0x7e, 0x2f)
	PlatformTop  = rgb(0x5c, 0xb8, 0x50)

	Coin      = rgb(0xff, 0xe6, 0x6d)
	CoinShine = rgb(0xff, 0xf9, 0xc4)

	Player      = rgb(0xff, 0x6f, 0x91)
	PlayerDark  = rgb(0xcc, 0x44, 0x66)
	PlayerBelly = rgb(0xff, 0x99, 0xb1)
	Eye         = rgb(0xff, 0xff, 0xff)
	Pupil       = rgb(0x1a, 0x1a, 0x2e)

	FlagPole = rgb(0x88, 0x88, 0x88)
	Flag     = rgb(0xff, 0x6f, 0x91)

	TextWhite  = rgb(0xff, 0xff, 0xff)
	TextCyan   = rgb(0x00, 0xd4, 0xff)
	TextPink   = rgb(0xff, 0x6f, 0x91)
	TextYellow = rgb(0xff, 0xe6, 0x6d)
	TextGreen  = rgb(0x4e, 0xcd, 0xc4)
	Overlay    = color.RGBA{R: 0x1a, G: 0x0a, B: 0x2e, A: 0xd9}

	Snake      = rgb(0x4c, 0xaf, 0x50)
	SnakeDark  = rgb(0x2e, 0x7d, 0x32)
	SnakeEye   = rgb(0xff, 0xeb, 0x3b)
	Eagle      = rgb(0x79, 0x55, 0x48)
	EagleDark  = rgb(0x5d, 0x40, 0x37)
	EagleBeak  = rgb(0xff, 0x98, 0x00)
	Boar       = rgb(0x8d, 0x6e, 0x63)
	BoarDark   = rgb(0x6d, 0x4c, 0x41)
	BoarTusk   = rgb(0xec, 0xef, 0xf1)
	Bat        = rgb(0x6a, 0x1b, 0x9a)
	BatDark    = rgb(0x4a, 0x14, 0x8c)
	Danger     = rgb(0xff, 0x17, 0x44)
	Lion       = rgb(0xd4, 0xa0, 0x17)
	LionDark   = rgb(0xb8, 0x86, 0x0b)
	LionMane   = rgb(0x8b, 0x69, 0x14)
	Tiger      = rgb(0xff, 0x8c, 0x00)
	TigerDark  = rgb(0xcc, 0x55, 0x00)
	TigerBelly = rgb(0xff, 0xf3, 0xe0)
	HealthBg   = rgb(0x33, 0x33, 0x33)

	HealthHigh   = rgb(0x4c, 0xaf, 0x50)
	HealthMid    = rgb(0xff, 0xeb, 0x3b)
	HealthLow    = rgb(0xf4, 0x43, 0x36)
	Mountain     = rgb(0x1e, 0x14, 0x3c)
	Cloud        = rgb(0xc8, 0xc8, 0xff)
	CoinGlow     = rgb(0xff, 0xe6, 0x6d)
	GoalGlow     = rgb(0xff, 0x6f, 0x91)
	NoticeBorder = rgb(0x00, 0xe5, 0xff)
	BatEye       = rgb(0xff, 0x52, 0x52)
	Black        = rgb(0x00, 0x00, 0x00)
)

// EnemyColor is the body color of an enemy kind, also used for its defeat burst.
func EnemyColor(kind component.EnemyKind) color.RGBA {
	switch kind {
	case component.EnemySnake:
		return Snake
	case component.EnemyEagle:
		return Eagle
	case component.EnemyBoar:
		return Boar
	case component.EnemyBat:
		return Bat
	}
	return TextWhite
}

func BossColor(kind component.BossKind) color.RGBA {
	if kind == component.BossTiger {
		return Tiger
	}
	return Lion
}
