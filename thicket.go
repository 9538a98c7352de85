package thicket

// Vec2 is a 2D vector used for pointer positions and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Interval is a one-dimensional span starting at Start and extending Size
// units in the positive direction.
type Interval struct {
	Start, Size float64
}

// End returns Start + Size.
func (iv Interval) End() float64 {
	return iv.Start + iv.Size
}

// Contains reports whether v lies inside the interval. Both ends are inclusive.
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Start && v <= iv.Start+iv.Size
}

// Frame is the axis-aligned rectangle a control occupies, expressed in the
// root's frame space. The origin is at the top-left with Y increasing downward.
type Frame struct {
	X, Y Interval
}

// NewFrame returns the frame with top-left corner (x, y) and the given size.
func NewFrame(x, y, width, height float64) Frame {
	return Frame{X: Interval{x, width}, Y: Interval{y, height}}
}

// Contains reports whether p lies inside the frame.
// Points on the edge are considered inside.
func (f Frame) Contains(p Vec2) bool {
	return f.X.Contains(p.X) && f.Y.Contains(p.Y)
}

// TopLeft returns the frame's origin.
func (f Frame) TopLeft() Vec2 {
	return Vec2{f.X.Start, f.Y.Start}
}

// Size returns the frame's width and height.
func (f Frame) Size() Vec2 {
	return Vec2{f.X.Size, f.Y.Size}
}

// ControlType distinguishes leaf controls from composites that own children.
type ControlType uint8

const (
	ControlTypeLeaf      ControlType = iota // a control with no children
	ControlTypeComposite                    // a control that may own children
)

// FocusState is the per-control position in the focus state machine.
type FocusState uint8

const (
	FocusNone       FocusState = iota // neither this control nor a descendant is focused
	FocusFocused                      // this control holds focus
	FocusDescendant                   // a descendant of this control holds focus
)

func (s FocusState) String() string {
	switch s {
	case FocusNone:
		return "none"
	case FocusFocused:
		return "focused"
	case FocusDescendant:
		return "descendant-focused"
	default:
		return "invalid"
	}
}

// PropagationOutcome is the result of testing a single control during a
// propagation path search.
type PropagationOutcome uint8

const (
	OutcomeMiss        PropagationOutcome = iota // skip the control and its subtree
	OutcomePassThrough                           // search the subtree, but never stop here
	OutcomeHit                                   // claim the event, blocking siblings behind
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// trackedButtons is the order in which button edges are dispatched each tick.
var trackedButtons = [...]MouseButton{MouseButtonLeft, MouseButtonMiddle, MouseButtonRight}

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// MouseButtons is a set of mouse buttons, typically the buttons held down.
type MouseButtons uint8

// NoMouseButtons is the empty set.
const NoMouseButtons MouseButtons = 0

// Has reports whether b is in the set.
func (m MouseButtons) Has(b MouseButton) bool {
	return m&(1<<b) != 0
}

// With returns the set with b added.
func (m MouseButtons) With(b MouseButton) MouseButtons {
	return m | 1<<b
}

// Without returns the set with b removed.
func (m MouseButtons) Without(b MouseButton) MouseButtons {
	return m &^ (1 << b)
}

// IsSupersetOf reports whether every button in other is also in m.
func (m MouseButtons) IsSupersetOf(other MouseButtons) bool {
	return m&other == other
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Key is a backend-defined key code. The ebitenui adapter passes ebiten.Key
// values through unchanged.
type Key int

// EventType identifies a kind of routed event.
type EventType uint8

const (
	EventMouseEnter      EventType = iota // pointer entered a control's frame
	EventMouseExit                        // pointer left a control's frame
	EventMouseMove                        // pointer is over a control this tick
	EventMouseButtonDown                  // a tracked button was pressed this tick
	EventMouseButtonUp                    // a tracked button was released this tick
	EventMouseScroll                      // the scroll wheel moved this tick
	EventKeyDown                          // a key was pressed with a control focused
	EventKeyUp                            // a key was released with a control focused
	EventCharTyped                        // a character was typed with a control focused
	numEventTypes
)

func (t EventType) String() string {
	switch t {
	case EventMouseEnter:
		return "mouse-enter"
	case EventMouseExit:
		return "mouse-exit"
	case EventMouseMove:
		return "mouse-move"
	case EventMouseButtonDown:
		return "mouse-button-down"
	case EventMouseButtonUp:
		return "mouse-button-up"
	case EventMouseScroll:
		return "mouse-scroll"
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventCharTyped:
		return "char-typed"
	default:
		return "unknown"
	}
}
