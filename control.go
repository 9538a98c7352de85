package thicket

// Parent is implemented by the two kinds of nodes that can own controls: a
// composite *Control and the tree's *Root. Parent references held by controls
// are lookups only; lifetime is owned top-down by the tree.
type Parent interface {
	Frame() Frame
	Children() []*Control
	HasFocusedDescendant() bool
	Add(child *Control)
	AddOnTopOf(reference, child *Control)
	Remove(child *Control)

	propagateFocus(child, target *Control) *FocusManager
	propagateBlur()
}

// controlIDCounter is a plain counter; thicket is single-threaded.
var controlIDCounter uint32

func nextControlID() uint32 {
	controlIDCounter++
	return controlIDCounter
}

// Control is a node in the UI tree: the unit of layout and event routing.
// A single flat struct is used for leaves and composites; widgets compose a
// *Control and attach behaviour through the hook fields.
type Control struct {
	// Identity
	ID   uint32
	Name string
	Type ControlType

	// Hierarchy
	parent   Parent
	root     *Root
	children []*Control

	// Layout
	hAnchors   Anchors
	vAnchors   Anchors
	frame      Frame
	frameDirty bool

	// Interaction
	visible      bool
	clickThrough bool
	canBeFocused bool

	// Focus
	focusState   FocusState
	focusedChild *Control

	// Metadata
	UserData any
	EntityID uint32

	// Routed mouse hooks. The Preview variant runs during the capturing phase
	// and cannot stop propagation; the plain variant runs while bubbling.
	OnPreviewMouseEnter      func(*MouseEvent)
	OnMouseEnter             func(*MouseEvent)
	OnPreviewMouseMove       func(*MouseEvent)
	OnMouseMove              func(*MouseEvent)
	OnPreviewMouseExit       func(*MouseEvent)
	OnMouseExit              func(*MouseEvent)
	OnPreviewMouseButtonDown func(*MouseButtonEvent)
	OnMouseButtonDown        func(*MouseButtonEvent)
	OnPreviewMouseButtonUp   func(*MouseButtonEvent)
	OnMouseButtonUp          func(*MouseButtonEvent)
	OnPreviewMouseScroll     func(*MouseScrollEvent)
	OnMouseScroll            func(*MouseScrollEvent)

	// Routed keyboard hooks, delivered along the path to the focused control.
	OnPreviewKeyDown   func(*KeyEvent)
	OnKeyDown          func(*KeyEvent)
	OnPreviewKeyUp     func(*KeyEvent)
	OnKeyUp            func(*KeyEvent)
	OnPreviewCharTyped func(*CharEvent)
	OnCharTyped        func(*CharEvent)

	// Lifecycle hooks
	OnFocused       func()
	OnLostFocus     func()
	OnFrameChanged  func()
	OnMadeVisible   func() // not called at construction
	OnMadeInvisible func()
	OnAdded         func(Parent)
	OnRemoved       func(Parent)
}

// controlDefaults sets the common default field values shared by all constructors.
func controlDefaults(c *Control) {
	c.ID = nextControlID()
	c.hAnchors = DefaultAnchors
	c.vAnchors = DefaultAnchors
	c.frameDirty = true
	c.visible = true
}

// NewControl creates a leaf control. Leaves cannot own children.
func NewControl(name string) *Control {
	c := &Control{Name: name, Type: ControlTypeLeaf}
	controlDefaults(c)
	return c
}

// NewComposite creates a control that may own children.
func NewComposite(name string) *Control {
	c := &Control{Name: name, Type: ControlTypeComposite}
	controlDefaults(c)
	return c
}

// --- Capabilities ---

// IsVisible reports whether the control is visible. Invisible controls and
// their subtrees are never hit.
func (c *Control) IsVisible() bool {
	return c.visible
}

// SetVisible shows or hides the control. Hiding a control that holds focus,
// or whose descendant holds focus, blurs the focused control immediately.
func (c *Control) SetVisible(visible bool) {
	if c.visible == visible {
		return
	}
	c.visible = visible
	if visible {
		if c.OnMadeVisible != nil {
			c.OnMadeVisible()
		}
		return
	}
	if c.OnMadeInvisible != nil {
		c.OnMadeInvisible()
	}
	if c.focusState != FocusNone {
		c.Blur()
	}
}

// IsClickThrough reports whether the control lets pointer input pass to
// whatever lies behind it while its children stay interactive.
func (c *Control) IsClickThrough() bool {
	return c.clickThrough
}

// SetClickThrough sets the click-through flag.
func (c *Control) SetClickThrough(clickThrough bool) {
	c.clickThrough = clickThrough
}

// CanBeFocused reports whether the control accepts focus.
func (c *Control) CanBeFocused() bool {
	return c.canBeFocused
}

// SetCanBeFocused allows or forbids focus. Revoking it on the focused control
// blurs that control before returning.
func (c *Control) SetCanBeFocused(canBeFocused bool) {
	if !canBeFocused && c.focusState == FocusFocused {
		c.Blur()
	}
	c.canBeFocused = canBeFocused
}

// IsComposite reports whether the control may own children.
func (c *Control) IsComposite() bool {
	return c.Type == ControlTypeComposite
}

// --- Hierarchy accessors ---

// Parent returns the owning parent, or nil when detached.
func (c *Control) Parent() Parent {
	return c.parent
}

// Root returns the root this control is attached under, or nil when the
// control is not connected to a root.
func (c *Control) Root() *Root {
	return c.root
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (c *Control) Children() []*Control {
	return c.children
}

// NumChildren returns the number of children.
func (c *Control) NumChildren() int {
	return len(c.children)
}

// ChildAt returns the child at the given index.
func (c *Control) ChildAt(index int) *Control {
	return c.children[index]
}

// --- Tree manipulation ---

// Add appends child on top of this control's existing children.
// Panics if c is a leaf, child is nil, child already has a parent, or child is
// an ancestor of c.
func (c *Control) Add(child *Control) {
	c.requireComposite("Add")
	attachChild(c, &c.children, child, len(c.children))
}

// AddOnTopOf inserts child directly above reference in z-order.
// Panics if reference is not a child of c.
func (c *Control) AddOnTopOf(reference, child *Control) {
	c.requireComposite("AddOnTopOf")
	i := indexOfChild(c.children, reference)
	if i < 0 {
		panic("thicket: reference control is not a child of this parent")
	}
	attachChild(c, &c.children, child, i+1)
}

// Remove detaches child from c. If the focused control lives in child's
// subtree it is blurred first. Panics if child is not owned by c.
func (c *Control) Remove(child *Control) {
	detachChild(c, &c.children, child)
}

// RemoveAllChildren detaches every child, topmost first.
func (c *Control) RemoveAllChildren() {
	removeAllChildren(c, &c.children)
}

// RemoveFromParent detaches this control from its parent.
// Panics if the control has no parent.
func (c *Control) RemoveFromParent() {
	if c.parent == nil {
		panic("thicket: control does not have a parent")
	}
	c.parent.Remove(c)
}

// FindByName returns the first control named name in c's subtree, searched
// depth-first in insertion order, or nil.
func (c *Control) FindByName(name string) *Control {
	return findByName(c.children, name)
}

func (c *Control) requireComposite(op string) {
	if c.Type != ControlTypeComposite {
		panic("thicket: " + op + " on leaf control " + quoteName(c))
	}
}

// --- Shared child-list plumbing for composites and the root ---

func attachChild(p Parent, list *[]*Control, child *Control, index int) {
	if child == nil {
		panic("thicket: cannot add nil child")
	}
	if child.parent != nil {
		panic("thicket: control " + quoteName(child) + " already has a parent")
	}
	if pc, ok := p.(*Control); ok && isAncestor(child, pc) {
		panic("thicket: adding child would create a cycle")
	}
	children := append(*list, nil)
	copy(children[index+1:], children[index:])
	children[index] = child
	*list = children

	child.parent = p
	child.setRoot(rootOf(p))
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(p, len(children))
	}
	if child.OnAdded != nil {
		child.OnAdded(p)
	}
}

func detachChild(p Parent, list *[]*Control, child *Control) {
	if child == nil || child.parent != p {
		panic("thicket: control has a different parent")
	}
	if child.focusState != FocusNone {
		child.Blur()
	}
	if child.OnRemoved != nil {
		child.OnRemoved(p)
	}
	removeChildByPtr(list, child)
	child.parent = nil
	child.setRoot(nil)
	markSubtreeDirty(child)
}

func removeAllChildren(p Parent, list *[]*Control) {
	for len(*list) > 0 {
		detachChild(p, list, (*list)[len(*list)-1])
	}
}

// removeChildByPtr removes child from the list without touching child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func removeChildByPtr(list *[]*Control, child *Control) {
	children := *list
	for i, c := range children {
		if c == child {
			copy(children[i:], children[i+1:])
			children[len(children)-1] = nil
			*list = children[:len(children)-1]
			return
		}
	}
}

func indexOfChild(children []*Control, child *Control) int {
	for i, c := range children {
		if c == child {
			return i
		}
	}
	return -1
}

func findByName(children []*Control, name string) *Control {
	for _, child := range children {
		if child.Name == name {
			return child
		}
		if found := findByName(child.children, name); found != nil {
			return found
		}
	}
	return nil
}

// isAncestor reports whether candidate is c or one of its ancestors.
func isAncestor(candidate, c *Control) bool {
	var p Parent = c
	for p != nil {
		pc, ok := p.(*Control)
		if !ok {
			return false
		}
		if pc == candidate {
			return true
		}
		p = pc.parent
	}
	return false
}

func rootOf(p Parent) *Root {
	switch v := p.(type) {
	case *Root:
		return v
	case *Control:
		return v.root
	}
	return nil
}

// setRoot records the attached root on c and all its descendants.
func (c *Control) setRoot(r *Root) {
	c.root = r
	for _, child := range c.children {
		child.setRoot(r)
	}
}

func quoteName(c *Control) string {
	return "\"" + c.Name + "\""
}
