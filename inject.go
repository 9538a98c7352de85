package thicket

// Injected input is queued as complete InputState values. Coordinates are in
// viewport space, identical to real pointer input, and go through
// TransformViewportPos on the tick they are consumed. Each queued state
// consumes one tick and replaces the InputSource for that tick.

func (r *Root) queueInjected(in InputState) {
	r.injectQueue = append(r.injectQueue, in)
}

// injectPointerState queues a pointer-only state and updates the tracked
// pointer and held buttons.
func (r *Root) injectPointerState(x, y float64, pressed, released MouseButtons) {
	r.injectPointer = Vec2{x, y}
	r.injectButtons = (r.injectButtons | pressed) &^ released
	r.queueInjected(InputState{
		Pointer:  r.injectPointer,
		Buttons:  r.injectButtons,
		Pressed:  pressed,
		Released: released,
	})
}

// InjectMove queues a pointer move to (x, y). Buttons pressed by earlier
// injections stay held, so a press, moves, release sequence is a drag.
func (r *Root) InjectMove(x, y float64) {
	r.injectPointerState(x, y, NoMouseButtons, NoMouseButtons)
}

// InjectPress queues a button press at (x, y).
func (r *Root) InjectPress(x, y float64, button MouseButton) {
	r.injectPointerState(x, y, NoMouseButtons.With(button), NoMouseButtons)
}

// InjectRelease queues a button release at (x, y).
func (r *Root) InjectRelease(x, y float64, button MouseButton) {
	r.injectPointerState(x, y, NoMouseButtons, NoMouseButtons.With(button))
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two ticks.
func (r *Root) InjectClick(x, y float64, button MouseButton) {
	r.InjectPress(x, y, button)
	r.InjectRelease(x, y, button)
}

// InjectDrag queues a full left-button drag: press at (fromX, fromY),
// linearly interpolated moves over ticks-2 intermediate ticks, and release at
// (toX, toY). Minimum ticks is 2 (press + release).
func (r *Root) InjectDrag(fromX, fromY, toX, toY float64, ticks int) {
	if ticks < 2 {
		ticks = 2
	}
	r.InjectPress(fromX, fromY, MouseButtonLeft)
	steps := ticks - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		r.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	r.InjectRelease(toX, toY, MouseButtonLeft)
}

// InjectScroll queues a scroll of delta at the current injected pointer.
func (r *Root) InjectScroll(delta float64) {
	r.queueInjected(InputState{
		Pointer: r.injectPointer,
		Buttons: r.injectButtons,
		Scroll:  delta,
	})
}

// InjectKey queues a key press and release, one tick each, with mods held.
func (r *Root) InjectKey(key Key, mods KeyModifiers) {
	r.queueInjected(InputState{
		Pointer:     r.injectPointer,
		Buttons:     r.injectButtons,
		Modifiers:   mods,
		KeysPressed: []Key{key},
	})
	r.queueInjected(InputState{
		Pointer:      r.injectPointer,
		Buttons:      r.injectButtons,
		Modifiers:    mods,
		KeysReleased: []Key{key},
	})
}

// InjectText queues the characters of s as typed input in a single tick.
func (r *Root) InjectText(s string) {
	if s == "" {
		return
	}
	r.queueInjected(InputState{
		Pointer: r.injectPointer,
		Buttons: r.injectButtons,
		Chars:   []rune(s),
	})
}

// PendingInjections returns the number of queued injected ticks.
func (r *Root) PendingInjections() int {
	return len(r.injectQueue)
}

// popInjected removes and returns the oldest queued state.
func (r *Root) popInjected() (InputState, bool) {
	if len(r.injectQueue) == 0 {
		return InputState{}, false
	}
	in := r.injectQueue[0]
	copy(r.injectQueue, r.injectQueue[1:])
	r.injectQueue[len(r.injectQueue)-1] = InputState{}
	r.injectQueue = r.injectQueue[:len(r.injectQueue)-1]
	return in, true
}
