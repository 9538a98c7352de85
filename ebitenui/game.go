package ebitenui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/thicket"
)

// Style decides how a control is drawn by Game. A nil fill or outline is
// not drawn.
type Style func(c *thicket.Control) (fill, outline color.Color)

// Game is an ebiten.Game that routes input into a thicket root every tick
// and paints control frames.
type Game struct {
	Root   *thicket.Root
	Source thicket.InputSource

	// Style paints each visible control. Nil uses DefaultStyle.
	Style Style
	// DebugDraw overlays control names and the hovered path.
	DebugDraw bool
	// Background clears the screen before drawing. Nil leaves it untouched.
	Background color.Color
	// Highlight, when set, is advanced with the hovered path every tick.
	Highlight *Highlight

	// OnUpdate runs after input routing, once per tick.
	OnUpdate func() error
	// OnDraw runs after the controls have been painted.
	OnDraw func(screen *ebiten.Image)

	viewW, viewH int
}

// NewGame wraps root with an Ebitengine input source.
func NewGame(root *thicket.Root) *Game {
	return &Game{Root: root, Source: &Source{}}
}

var (
	outlineColor = color.RGBA{R: 0x9a, G: 0x9a, B: 0xb0, A: 0xff}
	hoverColor   = color.RGBA{R: 0xff, G: 0xc8, B: 0x3c, A: 0xff}
	focusColor   = color.RGBA{R: 0x4c, G: 0xc2, B: 0xff, A: 0xff}
)

// DefaultStyle outlines every control, highlighting the focused one.
func DefaultStyle(c *thicket.Control) (fill, outline color.Color) {
	if c.IsFocused() {
		return nil, focusColor
	}
	return nil, outlineColor
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.Root.Update(g.Source)
	if g.Highlight != nil {
		g.Highlight.Update(1/float32(ebiten.TPS()), g.Root.HoveredPath())
	}
	if g.OnUpdate != nil {
		return g.OnUpdate()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.Background != nil {
		screen.Fill(g.Background)
	}
	style := g.Style
	if style == nil {
		style = DefaultStyle
	}
	sx, sy := g.scale()
	hovered := g.Root.HoveredPath()
	var draw func(children []*thicket.Control)
	draw = func(children []*thicket.Control) {
		for _, c := range children {
			if !c.IsVisible() {
				continue
			}
			f := c.Frame()
			x, y := float32(f.X.Start*sx), float32(f.Y.Start*sy)
			w, h := float32(f.X.Size*sx), float32(f.Y.Size*sy)
			fill, outline := style(c)
			if fill != nil {
				vector.DrawFilledRect(screen, x, y, w, h, fill, false)
			}
			if g.DebugDraw && hovered.Contains(c) {
				outline = hoverColor
			}
			if outline != nil {
				vector.StrokeRect(screen, x, y, w, h, 1, outline, false)
			}
			if g.DebugDraw {
				ebitenutil.DebugPrintAt(screen, c.Name, int(x)+2, int(y)+2)
			}
			draw(c.Children())
		}
	}
	draw(g.Root.Children())
	if g.OnDraw != nil {
		g.OnDraw(screen)
	}
}

// Layout implements ebiten.Game. The screen matches the window and the root
// frame is mapped onto it through the viewport transform.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.viewW || outsideHeight != g.viewH {
		g.viewW, g.viewH = outsideWidth, outsideHeight
		g.Root.SetViewportSize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// scale returns the viewport pixels per frame unit on each axis.
func (g *Game) scale() (float64, float64) {
	f := g.Root.Frame()
	if g.viewW == 0 || g.viewH == 0 || f.X.Size == 0 || f.Y.Size == 0 {
		return 1, 1
	}
	return float64(g.viewW) / f.X.Size, float64(g.viewH) / f.Y.Size
}
