package thicket

// EntityStore is the interface for optional ECS integration.
// When set on a Root, routed events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// Root is the top of a control tree. It owns the top-level controls, the
// root frame, the FocusManager and the per-tick input state.
type Root struct {
	children []*Control
	frame    Frame
	viewport Vec2 // pixel size of the viewport; zero means identity mapping

	focus        FocusManager
	focusedChild *Control

	store EntityStore
	debug bool

	// Input state
	handlers      handlerRegistry
	mouse         mouseState
	injectQueue   []InputState
	injectPointer Vec2
	injectButtons MouseButtons
	testRunner    *TestRunner
}

// NewRoot creates a root whose frame spans (0, 0) to (width, height).
func NewRoot(width, height float64) *Root {
	return &Root{frame: NewFrame(0, 0, width, height)}
}

// Frame returns the root frame.
func (r *Root) Frame() Frame {
	return r.frame
}

// Resize changes the root frame size and invalidates every descendant frame.
func (r *Root) Resize(width, height float64) {
	f := NewFrame(0, 0, width, height)
	if f == r.frame {
		return
	}
	r.frame = f
	for _, child := range r.children {
		child.setFrameNeedsUpdateIfNeeded()
	}
}

// SetViewportSize sets the pixel size of the surface the root is displayed on.
// Pointer positions reported in viewport pixels are scaled into frame space.
// A zero size restores the identity mapping.
func (r *Root) SetViewportSize(width, height float64) {
	r.viewport = Vec2{width, height}
}

// TransformViewportPos converts a viewport position into root frame space.
func (r *Root) TransformViewportPos(p Vec2) Vec2 {
	if r.viewport.X == 0 || r.viewport.Y == 0 {
		return p
	}
	return Vec2{
		X: r.frame.X.Start + p.X*r.frame.X.Size/r.viewport.X,
		Y: r.frame.Y.Start + p.Y*r.frame.Y.Size/r.viewport.Y,
	}
}

// FocusManager returns the root's focus manager.
func (r *Root) FocusManager() *FocusManager {
	return &r.focus
}

// HasFocusedDescendant reports whether any control in the tree is focused.
func (r *Root) HasFocusedDescendant() bool {
	return r.focusedChild != nil
}

// FocusedChild returns the top-level control whose subtree holds focus, or nil.
func (r *Root) FocusedChild() *Control {
	return r.focusedChild
}

// Children returns the top-level controls. The returned slice MUST NOT be mutated.
func (r *Root) Children() []*Control {
	return r.children
}

// NumChildren returns the number of top-level controls.
func (r *Root) NumChildren() int {
	return len(r.children)
}

// ChildAt returns the top-level control at the given index.
func (r *Root) ChildAt(index int) *Control {
	return r.children[index]
}

// Add appends child on top of the existing top-level controls.
func (r *Root) Add(child *Control) {
	attachChild(r, &r.children, child, len(r.children))
}

// AddOnTopOf inserts child directly above reference in z-order.
// Panics if reference is not a top-level control.
func (r *Root) AddOnTopOf(reference, child *Control) {
	i := indexOfChild(r.children, reference)
	if i < 0 {
		panic("thicket: reference control is not a child of this parent")
	}
	attachChild(r, &r.children, child, i+1)
}

// Remove detaches a top-level control. Panics if child is not owned by r.
func (r *Root) Remove(child *Control) {
	detachChild(r, &r.children, child)
}

// RemoveAllChildren detaches every top-level control, topmost first.
func (r *Root) RemoveAllChildren() {
	removeAllChildren(r, &r.children)
}

// FindByName returns the first control named name in the tree, or nil.
func (r *Root) FindByName(name string) *Control {
	return findByName(r.children, name)
}

// SetEntityStore sets the optional ECS bridge.
func (r *Root) SetEntityStore(store EntityStore) {
	r.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, focus invariants
// are verified after every focus change, tree depth and child count warnings
// are printed, and per-tick routing stats are logged to stderr.
func (r *Root) SetDebugMode(enabled bool) {
	r.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Root debug flag so that control
// operations (which may run on detached controls) can check it cheaply. Only
// valid with a single Root; multiple Roots with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

func (r *Root) propagateFocus(child, _ *Control) *FocusManager {
	r.focus.BlurFocused()
	r.focusedChild = child
	return &r.focus
}

func (r *Root) propagateBlur() {
	r.focusedChild = nil
	r.focus.current = nil
}
