package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/thicket"
)

var buttonMap = [...]struct {
	eb ebiten.MouseButton
	tb thicket.MouseButton
}{
	{ebiten.MouseButtonLeft, thicket.MouseButtonLeft},
	{ebiten.MouseButtonMiddle, thicket.MouseButtonMiddle},
	{ebiten.MouseButtonRight, thicket.MouseButtonRight},
}

// Source is a thicket.InputSource backed by Ebitengine's input state. It must
// be polled from within ebiten.Game.Update. The zero value is ready to use.
type Source struct {
	keys  []ebiten.Key
	chars []rune
}

// Poll implements thicket.InputSource.
func (s *Source) Poll() thicket.InputState {
	mx, my := ebiten.CursorPosition()
	in := thicket.InputState{
		Pointer:   thicket.Vec2{X: float64(mx), Y: float64(my)},
		Modifiers: readModifiers(),
	}
	for _, m := range buttonMap {
		if ebiten.IsMouseButtonPressed(m.eb) {
			in.Buttons = in.Buttons.With(m.tb)
		}
		if inpututil.IsMouseButtonJustPressed(m.eb) {
			in.Pressed = in.Pressed.With(m.tb)
		}
		if inpututil.IsMouseButtonJustReleased(m.eb) {
			in.Released = in.Released.With(m.tb)
		}
	}
	_, wy := ebiten.Wheel()
	in.Scroll = wy

	// The buffers are reused across ticks; InputState only lives for one.
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	in.KeysPressed = appendKeys(nil, s.keys)
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	in.KeysReleased = appendKeys(nil, s.keys)
	s.chars = ebiten.AppendInputChars(s.chars[:0])
	if len(s.chars) > 0 {
		in.Chars = s.chars
	}
	return in
}

func appendKeys(dst []thicket.Key, keys []ebiten.Key) []thicket.Key {
	for _, k := range keys {
		dst = append(dst, thicket.Key(k))
	}
	return dst
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() thicket.KeyModifiers {
	var mods thicket.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= thicket.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= thicket.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= thicket.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= thicket.ModMeta
	}
	return mods
}
