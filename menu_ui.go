package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewMenuUI builds the title screen: game name, how-to-play line, and a
// Start button. Colored nine-slices and the built-in basic font keep it
// free of loaded assets.
func NewMenuUI(g *Game) *ebitenui.UI {
	panel, face := newPanel(g)

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panel.AddChild(centeredText("VOMO", face, white))
	panel.AddChild(centeredText("Scream (hold S) or press Space to jump", face, white))
	panel.AddChild(newButton("Start", face, func() { g.startRun() }))

	return wrap(panel)
}

// NewGameOverUI builds the game-over screen with the final and best scores.
// Rebuilt on every game-over so the labels stay current.
func NewGameOverUI(g *Game) *ebitenui.UI {
	panel, face := newPanel(g)

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panel.AddChild(centeredText("Game Over", face, white))
	panel.AddChild(centeredText(fmt.Sprintf("Score: %d", g.finalScore), face, white))
	panel.AddChild(centeredText(fmt.Sprintf("Best: %d", g.eng.HighScore()), face, white))
	panel.AddChild(newButton("Restart", face, func() { g.startRun() }))

	return wrap(panel)
}

func newPanel(g *Game) (*widget.Container, ebtext.Face) {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(g.cfg.Playfield.Width)/2, int(g.cfg.Playfield.Height)/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	return panel, face
}

func centeredText(s string, face ebtext.Face, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, &face, clr),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	)
}

func newButton(label string, face ebtext.Face, onClick func()) *widget.Button {
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(label, &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func wrap(panel *widget.Container) *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
