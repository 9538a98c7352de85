package thicket

import "fmt"

// FocusManager tracks the single focused control of one Root. Its reference
// is a lookup, never an owner: the control it names always lives in the tree.
type FocusManager struct {
	current *Control
}

// FocusedControl returns the focused control, or nil if nothing is focused.
// Panics if the held control does not consider itself focused; that is an
// internal consistency violation and never a recoverable condition.
func (fm *FocusManager) FocusedControl() *Control {
	if fm.current == nil {
		return nil
	}
	if fm.current.focusState != FocusFocused {
		panic(fmt.Sprintf("thicket: focus manager holds control %q in state %s", fm.current.Name, fm.current.focusState))
	}
	return fm.current
}

// BlurFocused blurs the focused control, if any.
func (fm *FocusManager) BlurFocused() {
	if fm.current == nil {
		return
	}
	c := fm.current
	if c.focusState == FocusFocused {
		c.Blur()
	}
	fm.current = nil
}

func (fm *FocusManager) register(c *Control) {
	if fm.current != nil && fm.current != c {
		panic(fmt.Sprintf("thicket: focus manager already holds %q while focusing %q", fm.current.Name, c.Name))
	}
	fm.current = c
}

// --- Per-control state machine ---

// FocusState returns the control's position in the focus state machine.
func (c *Control) FocusState() FocusState {
	return c.focusState
}

// IsFocused reports whether this control holds focus.
func (c *Control) IsFocused() bool {
	return c.focusState == FocusFocused
}

// HasFocusedDescendant reports whether a control below this one holds focus.
func (c *Control) HasFocusedDescendant() bool {
	return c.focusState == FocusDescendant
}

// FocusedChild returns the child branch that contains the focused control, or
// nil unless the control is in the FocusDescendant state.
func (c *Control) FocusedChild() *Control {
	return c.focusedChild
}

// TryFocus attempts to give this control focus and reports whether it holds
// focus afterwards. It fails without side effects if the control cannot be
// focused, is invisible, or is not connected to a Root. Any previously
// focused control in the tree is blurred first.
// Panics if the control has no parent.
func (c *Control) TryFocus() bool {
	if !c.canBeFocused || !c.visible {
		return false
	}
	if c.focusState == FocusFocused {
		return true
	}
	if c.parent == nil {
		panic("thicket: cannot focus a control without a parent")
	}
	fm := c.parent.propagateFocus(c, c)
	if fm == nil {
		return false
	}
	// Blurring the previous focus cleared this control if it used to be an
	// ancestor of the focused one.
	c.focusState = FocusFocused
	c.focusedChild = nil
	fm.register(c)
	if globalDebug {
		debugCheckFocus(c.root)
	}
	if c.OnFocused != nil {
		c.OnFocused()
	}
	return true
}

// Focus gives this control focus. Panics if focus could not be acquired; use
// TryFocus to probe instead.
func (c *Control) Focus() {
	if !c.TryFocus() {
		panic("thicket: could not focus control " + quoteName(c))
	}
}

// Blur removes focus. On the focused control it fires OnLostFocus and resets
// every ancestor. On an ancestor of the focused control it blurs that
// descendant instead. On any other control it does nothing.
func (c *Control) Blur() {
	switch c.focusState {
	case FocusNone:
		return
	case FocusDescendant:
		if c.focusedChild == nil {
			panic("thicket: control " + quoteName(c) + " lost track of its focused descendant")
		}
		c.focusedChild.Blur()
	case FocusFocused:
		if c.OnLostFocus != nil {
			c.OnLostFocus()
		}
		c.focusState = FocusNone
		r := c.root
		if c.parent != nil {
			c.parent.propagateBlur()
		}
		if globalDebug && r != nil {
			debugCheckFocus(r)
		}
	}
}

// propagateFocus runs bottom-up from the control being focused. The root
// clears the old focus before any ancestor records the new branch, so shared
// ancestors end up DescendantFocused.
func (c *Control) propagateFocus(child, target *Control) *FocusManager {
	if c.parent == nil {
		return nil
	}
	fm := c.parent.propagateFocus(c, target)
	if fm == nil {
		return nil
	}
	c.focusState = FocusDescendant
	c.focusedChild = child
	return fm
}

func (c *Control) propagateBlur() {
	c.focusState = FocusNone
	c.focusedChild = nil
	if c.parent != nil {
		c.parent.propagateBlur()
	}
}
