package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/Yashwanth-Chandrakumar/Vomo/config"
	"github.com/Yashwanth-Chandrakumar/Vomo/engine"
)

func drawPlayfield(screen *ebiten.Image, cfg config.Config, snap engine.Snapshot) {
	screen.Fill(colornames.Midnightblue)

	// ground
	vector.DrawFilledRect(screen,
		0, float32(cfg.Playfield.GroundY),
		float32(cfg.Playfield.Width), float32(cfg.Playfield.Height-cfg.Playfield.GroundY),
		colornames.Darkolivegreen, false)

	for _, o := range snap.Obstacles {
		drawObstacle(screen, o)
	}

	p := snap.Player
	vector.DrawFilledRect(screen,
		float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height),
		colornames.Skyblue, false)

	drawIntensityMeter(screen, cfg, snap.Intensity)

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Score: %d    High: %d", snap.Score, snap.HighScore), 8, 8)
}

func drawObstacle(screen *ebiten.Image, o engine.Obstacle) {
	var clr color.Color
	switch o.Kind {
	case engine.Spike:
		clr = colornames.Crimson
	case engine.MovingSpike:
		clr = colornames.Orangered
	case engine.VariableGround:
		clr = colornames.Forestgreen
	case engine.CollapsingBridge:
		clr = colornames.Saddlebrown
	default:
		clr = colornames.Gray
	}
	vector.DrawFilledRect(screen,
		float32(o.X), float32(o.Y), float32(o.Width), float32(o.Height), clr, false)

	if o.Kind == engine.CollapsingBridge {
		// integrity bar along the deck
		frac := o.Bridge.Integrity / 100
		vector.DrawFilledRect(screen,
			float32(o.X), float32(o.Y)-4,
			float32(o.Width*frac), 3, colornames.Gold, false)
	}
}

// drawIntensityMeter renders the current loudness as a vertical bar on the
// left edge, so players can see how close they are to the jump threshold.
func drawIntensityMeter(screen *ebiten.Image, cfg config.Config, intensity float64) {
	const w, h = 10, 120
	x := float32(8)
	y := float32(cfg.Playfield.GroundY) - h - 8

	vector.StrokeRect(screen, x, y, w, h, 1, colornames.Gray, false)
	filled := float32(intensity) * h
	vector.DrawFilledRect(screen, x, y+h-filled, w, filled, colornames.Gold, false)
}

func drawPausedOverlay(screen *ebiten.Image, cfg config.Config) {
	vector.DrawFilledRect(screen,
		0, 0, float32(cfg.Playfield.Width), float32(cfg.Playfield.Height),
		color.NRGBA{A: 140}, false)
	ebitenutil.DebugPrintAt(screen, "Paused - Esc to resume",
		int(cfg.Playfield.Width)/2-70, int(cfg.Playfield.Height)/2)
}
