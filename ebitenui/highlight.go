package ebitenui

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/thicket"
)

// fade is the hover intensity of one control, eased toward target.
type fade struct {
	tween  *gween.Tween
	level  float32
	target float32
}

// Highlight eases a per-control hover level between 0 and 1 as controls join
// and leave the hovered path. Call Update once per tick with the path the
// root computed; there is no global animation manager.
type Highlight struct {
	Duration float32 // seconds for a full fade
	Ease     ease.TweenFunc

	fades map[*thicket.Control]*fade
}

// NewHighlight creates a Highlight that fades over duration seconds using fn.
func NewHighlight(duration float32, fn ease.TweenFunc) *Highlight {
	if fn == nil {
		fn = ease.Linear
	}
	return &Highlight{Duration: duration, Ease: fn, fades: make(map[*thicket.Control]*fade)}
}

// Update advances every fade by dt seconds. Controls on hovered fade in,
// every other tracked control fades out and is forgotten once it reaches 0
// or is detached.
func (h *Highlight) Update(dt float32, hovered thicket.PropagationPath) {
	for i := 0; i < hovered.Len(); i++ {
		c := hovered.At(i)
		if _, ok := h.fades[c]; !ok {
			h.fades[c] = &fade{}
		}
	}
	for c, f := range h.fades {
		if c.Root() == nil {
			delete(h.fades, c)
			continue
		}
		var target float32
		if hovered.Contains(c) {
			target = 1
		}
		if f.tween == nil || f.target != target {
			// Scale the duration so a half-finished fade reverses at the same speed.
			span := target - f.level
			if span < 0 {
				span = -span
			}
			f.target = target
			f.tween = gween.New(f.level, target, h.Duration*span, h.Ease)
		}
		if h.Duration <= 0 {
			f.level = target
		} else {
			f.level, _ = f.tween.Update(dt)
		}
		if f.level <= 0 && target == 0 {
			delete(h.fades, c)
		}
	}
}

// Level returns the current hover level of c, from 0 to 1.
func (h *Highlight) Level(c *thicket.Control) float64 {
	if f, ok := h.fades[c]; ok {
		return float64(f.level)
	}
	return 0
}

// Style returns a Style that fills each control with fill scaled by its hover
// level and outlines it like DefaultStyle.
func (h *Highlight) Style(fill color.RGBA) Style {
	return func(c *thicket.Control) (color.Color, color.Color) {
		_, outline := DefaultStyle(c)
		lvl := h.Level(c)
		if lvl <= 0 {
			return nil, outline
		}
		// Premultiplied alpha: scale every channel.
		return color.RGBA{
			R: uint8(float64(fill.R) * lvl),
			G: uint8(float64(fill.G) * lvl),
			B: uint8(float64(fill.B) * lvl),
			A: uint8(float64(fill.A) * lvl),
		}, outline
	}
}
