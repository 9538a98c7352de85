package thicket

import (
	"fmt"
	"os"
	"time"
)

// InputState is one tick's worth of raw input. Positions are in viewport
// space; the root converts them to frame space.
type InputState struct {
	Pointer   Vec2
	Buttons   MouseButtons // buttons held down this tick
	Pressed   MouseButtons // buttons whose press edge fired this tick
	Released  MouseButtons // buttons whose release edge fired this tick
	Scroll    float64      // scroll wheel delta this tick
	Modifiers KeyModifiers

	KeysPressed  []Key
	KeysReleased []Key
	Chars        []rune
}

// InputSource supplies raw input once per tick. The ebitenui package provides
// an implementation backed by Ebitengine.
type InputSource interface {
	Poll() InputState
}

// mouseState is the orchestrator memory carried between ticks.
type mouseState struct {
	path    PropagationPath
	pointer Vec2
}

// HoveredPath returns the pointer path computed on the most recent tick.
func (r *Root) HoveredPath() PropagationPath {
	return r.mouse.path
}

// Update runs one tick of input routing. If a TestRunner is attached it is
// stepped first. Injected input takes precedence over src; a nil src is
// treated as a tick with no input.
func (r *Root) Update(src InputSource) {
	if r.testRunner != nil {
		r.testRunner.step(r)
	}
	var in InputState
	if injected, ok := r.popInjected(); ok {
		in = injected
	} else if src != nil {
		in = src.Poll()
	} else {
		in = InputState{Pointer: r.mouse.pointer}
	}
	r.processInput(in)
}

// processInput routes mouse events along the hit path, then keyboard events
// along the path to the focused control.
func (r *Root) processInput(in InputState) {
	var t0 time.Time
	if r.debug {
		t0 = time.Now()
	}

	p := r.TransformViewportPos(in.Pointer)
	path := FindPropagationPath(r, pointerTest(p))
	r.processMouse(path, p, in)
	r.mouse.path = path
	r.mouse.pointer = in.Pointer

	r.processKeyboard(in)

	if r.debug {
		leaf := "<none>"
		if c := path.Leaf(); c != nil {
			leaf = c.Name
		}
		_, _ = fmt.Fprintf(os.Stderr, "[thicket] tick: %v | path depth: %d | leaf: %s\n",
			time.Since(t0), path.Len(), leaf)
	}
}

func (r *Root) processMouse(path PropagationPath, p Vec2, in InputState) {
	removed, added := Deviation(r.mouse.path, path)
	base := MouseEvent{Position: p, Buttons: in.Buttons, Modifiers: in.Modifiers}

	// Exit
	exit := base
	PropagateEvent(removed, &exit,
		func(c *Control, e *MouseEvent) { callMouse(c.OnPreviewMouseExit, e) },
		func(c *Control, e *MouseEvent) { callMouse(c.OnMouseExit, e) })
	r.reportMouse(EventMouseExit, removed, &exit)

	// Enter
	enter := base
	PropagateEvent(added, &enter,
		func(c *Control, e *MouseEvent) { callMouse(c.OnPreviewMouseEnter, e) },
		func(c *Control, e *MouseEvent) { callMouse(c.OnMouseEnter, e) })
	r.reportMouse(EventMouseEnter, added, &enter)

	// Move
	move := base
	PropagateEvent(path, &move,
		func(c *Control, e *MouseEvent) { callMouse(c.OnPreviewMouseMove, e) },
		func(c *Control, e *MouseEvent) { callMouse(c.OnMouseMove, e) })
	r.reportMouse(EventMouseMove, path, &move)

	// Buttons
	for _, btn := range trackedButtons {
		if in.Pressed.Has(btn) {
			down := MouseButtonEvent{MouseEvent: base, Button: btn}
			PropagateEvent(path, &down,
				func(c *Control, e *MouseButtonEvent) { callButton(c.OnPreviewMouseButtonDown, e) },
				func(c *Control, e *MouseButtonEvent) { callButton(c.OnMouseButtonDown, e) })
			r.reportButton(EventMouseButtonDown, path, &down)
		}
		if in.Released.Has(btn) {
			up := MouseButtonEvent{MouseEvent: base, Button: btn}
			PropagateEvent(path, &up,
				func(c *Control, e *MouseButtonEvent) { callButton(c.OnPreviewMouseButtonUp, e) },
				func(c *Control, e *MouseButtonEvent) { callButton(c.OnMouseButtonUp, e) })
			r.reportButton(EventMouseButtonUp, path, &up)
		}
	}

	// Scroll
	if in.Scroll != 0 {
		scroll := MouseScrollEvent{MouseEvent: base, Delta: int(in.Scroll), DeltaF: in.Scroll}
		PropagateEvent(path, &scroll,
			func(c *Control, e *MouseScrollEvent) { callScroll(c.OnPreviewMouseScroll, e) },
			func(c *Control, e *MouseScrollEvent) { callScroll(c.OnMouseScroll, e) })
		if !path.IsEmpty() {
			r.report(InteractionEvent{
				Type: EventMouseScroll, Control: path.Leaf(),
				Position: p, Buttons: in.Buttons, Modifiers: in.Modifiers,
				Handled: scroll.Handled, ScrollDelta: in.Scroll,
			})
		}
	}
}

// processKeyboard routes key and character input to the focused control.
// Nothing is routed while no control holds focus.
func (r *Root) processKeyboard(in InputState) {
	for _, k := range in.KeysPressed {
		r.routeKey(EventKeyDown, k, in.Modifiers)
	}
	for _, k := range in.KeysReleased {
		r.routeKey(EventKeyUp, k, in.Modifiers)
	}
	for _, ch := range in.Chars {
		path := r.focusPath()
		if path.IsEmpty() {
			return
		}
		e := CharEvent{Char: ch}
		PropagateEvent(path, &e,
			func(c *Control, e *CharEvent) {
				if c.OnPreviewCharTyped != nil {
					c.OnPreviewCharTyped(e)
				}
			},
			func(c *Control, e *CharEvent) {
				if c.OnCharTyped != nil {
					c.OnCharTyped(e)
				}
			})
		r.report(InteractionEvent{
			Type: EventCharTyped, Control: path.Leaf(),
			Modifiers: in.Modifiers, Handled: e.Handled, Char: ch,
		})
	}
}

func (r *Root) routeKey(t EventType, k Key, mods KeyModifiers) {
	// Recomputed per key: a handler may have moved focus.
	path := r.focusPath()
	if path.IsEmpty() {
		return
	}
	e := KeyEvent{Key: k, Modifiers: mods}
	if t == EventKeyDown {
		PropagateEvent(path, &e,
			func(c *Control, e *KeyEvent) { callKey(c.OnPreviewKeyDown, e) },
			func(c *Control, e *KeyEvent) { callKey(c.OnKeyDown, e) })
	} else {
		PropagateEvent(path, &e,
			func(c *Control, e *KeyEvent) { callKey(c.OnPreviewKeyUp, e) },
			func(c *Control, e *KeyEvent) { callKey(c.OnKeyUp, e) })
	}
	r.report(InteractionEvent{
		Type: t, Control: path.Leaf(),
		Modifiers: mods, Handled: e.Handled, Key: k,
	})
}

func (r *Root) focusPath() PropagationPath {
	return FindPropagationPathTo(r, r.focus.FocusedControl())
}

func (r *Root) reportMouse(t EventType, path PropagationPath, e *MouseEvent) {
	if path.IsEmpty() {
		return
	}
	r.report(InteractionEvent{
		Type: t, Control: path.Leaf(),
		Position: e.Position, Buttons: e.Buttons, Modifiers: e.Modifiers,
		Handled: e.Handled,
	})
}

func (r *Root) reportButton(t EventType, path PropagationPath, e *MouseButtonEvent) {
	if path.IsEmpty() {
		return
	}
	r.report(InteractionEvent{
		Type: t, Control: path.Leaf(),
		Position: e.Position, Buttons: e.Buttons, Modifiers: e.Modifiers,
		Handled: e.Handled, Button: e.Button,
	})
}

func callMouse(fn func(*MouseEvent), e *MouseEvent) {
	if fn != nil {
		fn(e)
	}
}

func callButton(fn func(*MouseButtonEvent), e *MouseButtonEvent) {
	if fn != nil {
		fn(e)
	}
}

func callScroll(fn func(*MouseScrollEvent), e *MouseScrollEvent) {
	if fn != nil {
		fn(e)
	}
}

func callKey(fn func(*KeyEvent), e *KeyEvent) {
	if fn != nil {
		fn(e)
	}
}
