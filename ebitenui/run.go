package ebitenui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/thicket"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// DebugDraw overlays control names and the hovered path.
	DebugDraw bool
	// Background clears the screen each frame. Nil uses a dark default.
	Background color.Color
	// Style paints each visible control. Nil uses DefaultStyle.
	Style Style
}

var defaultBackground = color.RGBA{R: 0x23, G: 0x1e, B: 0x2d, A: 0xff}

// Run opens a window and drives root until the window is closed. It blocks
// and returns the error that stopped the game loop, if any.
func Run(root *thicket.Root, cfg RunConfig) error {
	return RunGame(NewGame(root), cfg)
}

// RunGame is Run for a Game that has already been configured, typically to
// attach OnUpdate or OnDraw.
func RunGame(g *Game, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	g.DebugDraw = g.DebugDraw || cfg.DebugDraw
	if g.Background == nil {
		g.Background = cfg.Background
		if g.Background == nil {
			g.Background = defaultBackground
		}
	}
	if g.Style == nil {
		g.Style = cfg.Style
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(g)
}
