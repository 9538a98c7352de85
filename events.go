package thicket

// RoutedEvent is implemented by every event payload delivered along a
// PropagationPath.
type RoutedEvent interface {
	IsHandled() bool
}

// Routed carries the handled flag shared by all routed event payloads.
// Setting Handled during the bubbling phase stops delivery to the remaining
// ancestors; it has no effect on the preview phase.
type Routed struct {
	Handled bool
}

// IsHandled reports whether a control has claimed the event.
func (r *Routed) IsHandled() bool {
	return r.Handled
}

// MouseEvent carries pointer state for enter, move and exit.
type MouseEvent struct {
	Routed
	Position  Vec2 // pointer position in root frame space
	Buttons   MouseButtons
	Modifiers KeyModifiers
}

// MouseButtonEvent carries the button whose edge fired this tick.
type MouseButtonEvent struct {
	MouseEvent
	Button MouseButton
}

// MouseScrollEvent carries the scroll wheel movement of this tick.
type MouseScrollEvent struct {
	MouseEvent
	Delta  int     // whole notches
	DeltaF float64 // precise delta, positive away from the user
}

// KeyEvent carries a key edge, delivered to the focused control's path.
type KeyEvent struct {
	Routed
	Key       Key
	Modifiers KeyModifiers
}

// CharEvent carries one typed character, delivered to the focused control's path.
type CharEvent struct {
	Routed
	Char rune
}

// InteractionEvent is the flattened record of one routed event, reported to
// root-level observers and to the EntityStore after delivery.
type InteractionEvent struct {
	Type      EventType
	Control   *Control // path leaf the event was routed to
	EntityID  uint32
	Position  Vec2
	Buttons   MouseButtons
	Modifiers KeyModifiers
	Handled   bool
	// Button is valid for EventMouseButtonDown and EventMouseButtonUp.
	Button MouseButton
	// ScrollDelta is valid for EventMouseScroll.
	ScrollDelta float64
	// Key is valid for EventKeyDown and EventKeyUp.
	Key Key
	// Char is valid for EventCharTyped.
	Char rune
}

// --- Observer registry ---

type eventHandler struct {
	id uint32
	fn func(InteractionEvent)
}

type handlerRegistry struct {
	byType [numEventTypes][]eventHandler
	nextID uint32
}

// CallbackHandle allows removing a registered root-level observer.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this observer so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= numEventTypes {
		return
	}
	s := h.reg.byType[h.event]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			h.reg.byType[h.event] = s[:len(s)-1]
			return
		}
	}
}

// On registers a root-level observer for events of type t. Observers run
// once per routed event, after the path has been dispatched, whether or not
// a control handled it.
func (r *Root) On(t EventType, fn func(InteractionEvent)) CallbackHandle {
	if t >= numEventTypes {
		panic("thicket: unknown event type")
	}
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.byType[t] = append(r.handlers.byType[t], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: t}
}

// report forwards a delivered event to observers and the ECS bridge.
func (r *Root) report(ev InteractionEvent) {
	if ev.Control != nil {
		ev.EntityID = ev.Control.EntityID
	}
	for _, h := range r.handlers.byType[ev.Type] {
		h.fn(ev)
	}
	if r.store != nil && ev.EntityID != 0 {
		r.store.EmitEvent(ev)
	}
}
