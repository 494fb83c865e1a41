package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/superanimalrun/common"
	"github.com/milk9111/superanimalrun/game"
	"golang.org/x/image/font/basicfont"
)

// hudUI is the scoreboard bar under the canvas.
type hudUI struct {
	ui *ebitenui.UI

	score   *widget.Text
	level   *widget.Text
	coins   *widget.Text
	lives   *widget.Text
	best    *widget.Text
	message *widget.Text

	last game.HUD
	set  bool
}

func newHUDUI(width float64, height int) *hudUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x1a, G: 0x0a, B: 0x2e, A: 0xff})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	label := func(clr color.Color) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text("", &face, clr),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		)
	}

	h := &hudUI{
		score:   label(common.TextYellow),
		level:   label(common.TextCyan),
		coins:   label(common.Coin),
		lives:   label(common.TextPink),
		best:    label(common.TextGreen),
		message: label(common.TextWhite),
	}

	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(18),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(width), height),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)
	for _, t := range []*widget.Text{h.score, h.level, h.coins, h.lives, h.best, h.message} {
		bar.AddChild(t)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(bar)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

// Update refreshes the labels when the scoreboard changed and runs the UI.
func (h *hudUI) Update(hud game.HUD) {
	if !h.set || hud != h.last {
		h.score.Label = fmt.Sprintf("Score %d", hud.Score)
		h.level.Label = fmt.Sprintf("Level %d", hud.Level)
		h.coins.Label = fmt.Sprintf("Coins %d", hud.Coins)
		h.lives.Label = fmt.Sprintf("Lives %d", max(0, hud.Lives))
		h.best.Label = fmt.Sprintf("Best %d", hud.Best)
		h.message.Label = hud.Message
		h.last = hud
		h.set = true
	}
	h.ui.Update()
}

func (h *hudUI) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
