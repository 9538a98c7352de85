package thicket

import (
	"math/rand"
	"testing"
)

// focusProbe records focus hook calls on a control.
type focusProbe struct {
	focused, lost int
}

func probe(c *Control) *focusProbe {
	p := &focusProbe{}
	c.OnFocused = func() { p.focused++ }
	c.OnLostFocus = func() { p.lost++ }
	return p
}

func focusable(name string) *Control {
	c := NewControl(name)
	c.SetCanBeFocused(true)
	return c
}

func focusableComposite(name string) *Control {
	c := NewComposite(name)
	c.SetCanBeFocused(true)
	return c
}

// root - intermediate - child
func nestedTree() (*Root, *Control, *Control) {
	root := NewRoot(100, 100)
	mid := NewComposite("mid")
	child := focusable("child")
	root.Add(mid)
	mid.Add(child)
	return root, mid, child
}

func assertFocused(t *testing.T, root *Root, want *Control) {
	t.Helper()
	if got := root.FocusManager().FocusedControl(); got != want {
		t.Errorf("FocusedControl = %v, want %v", nameOf(got), nameOf(want))
	}
	debugCheckFocus(root)
}

func nameOf(c *Control) string {
	if c == nil {
		return "<nil>"
	}
	return c.Name
}

// --- Initial state ---

func TestFocusInitialState(t *testing.T) {
	root := NewRoot(10, 10)
	c := focusable("c")
	root.Add(c)
	if c.IsFocused() {
		t.Error("new control should not be focused")
	}
	if root.HasFocusedDescendant() {
		t.Error("root should not have a focused descendant")
	}
	assertFocused(t, root, nil)
}

// --- Focus ---

func TestFocusUnfocusedControl(t *testing.T) {
	root, mid, child := nestedTree()
	p := probe(child)

	child.Focus()

	if !child.IsFocused() {
		t.Error("child should be focused")
	}
	if p.focused != 1 {
		t.Errorf("OnFocused ran %d times, want 1", p.focused)
	}
	if !mid.HasFocusedDescendant() || mid.FocusedChild() != child {
		t.Error("parent should track the focused child")
	}
	if !root.HasFocusedDescendant() || root.FocusedChild() != mid {
		t.Error("root should track the focused branch")
	}
	assertFocused(t, root, child)
}

func TestFocusPanicsWhenNotFocusable(t *testing.T) {
	root := NewRoot(10, 10)
	c := NewControl("c")
	root.Add(c)
	assertPanics(t, "could not focus", c.Focus)
}

func TestTryFocusRefusals(t *testing.T) {
	t.Run("not focusable", func(t *testing.T) {
		root := NewRoot(10, 10)
		c := NewControl("c")
		root.Add(c)
		if c.TryFocus() {
			t.Error("TryFocus should fail")
		}
		assertFocused(t, root, nil)
	})
	t.Run("invisible", func(t *testing.T) {
		root := NewRoot(10, 10)
		c := focusable("c")
		c.SetVisible(false)
		root.Add(c)
		if c.TryFocus() {
			t.Error("TryFocus should fail")
		}
		assertFocused(t, root, nil)
	})
	t.Run("composite chain without root", func(t *testing.T) {
		box := NewComposite("box")
		c := focusable("c")
		box.Add(c)
		if c.TryFocus() {
			t.Error("TryFocus should fail")
		}
		if box.FocusState() != FocusNone || c.FocusState() != FocusNone {
			t.Error("failed focus should leave no trace")
		}
	})
	t.Run("no parent", func(t *testing.T) {
		assertPanics(t, "without a parent", func() { focusable("c").TryFocus() })
	})
}

func TestFocusReplacesExisting(t *testing.T) {
	root := NewRoot(10, 10)
	a, b := focusable("a"), focusable("b")
	root.Add(a)
	root.Add(b)
	pa := probe(a)
	a.Focus()

	b.Focus()

	if a.IsFocused() || !b.IsFocused() {
		t.Error("focus did not move from a to b")
	}
	if pa.lost != 1 {
		t.Errorf("OnLostFocus ran %d times on a, want 1", pa.lost)
	}
	assertFocused(t, root, b)
}

func TestFocusAcrossBranches(t *testing.T) {
	// root - mid1 - child1
	//      \ mid2 - child2
	root := NewRoot(10, 10)
	mid1, mid2 := NewComposite("mid1"), NewComposite("mid2")
	child1, child2 := focusable("child1"), focusable("child2")
	root.Add(mid1)
	root.Add(mid2)
	mid1.Add(child1)
	mid2.Add(child2)
	child1.Focus()

	child2.Focus()

	if !mid2.HasFocusedDescendant() {
		t.Error("mid2 should have a focused descendant")
	}
	if mid1.HasFocusedDescendant() || mid1.FocusedChild() != nil {
		t.Error("mid1 should have been reset")
	}
	if root.FocusedChild() != mid2 {
		t.Errorf("root focused branch = %s, want mid2", nameOf(root.FocusedChild()))
	}
	assertFocused(t, root, child2)
}

func TestFocusWithinSharedParent(t *testing.T) {
	root := NewRoot(10, 10)
	mid := NewComposite("mid")
	a, b := focusable("a"), focusable("b")
	root.Add(mid)
	mid.Add(a)
	mid.Add(b)
	a.Focus()

	b.Focus()

	if !mid.HasFocusedDescendant() || mid.FocusedChild() != b {
		t.Error("shared parent should track b")
	}
	if !root.HasFocusedDescendant() {
		t.Error("root should retain a focused descendant")
	}
	assertFocused(t, root, b)
}

func TestFocusAlreadyFocused(t *testing.T) {
	root, _, child := nestedTree()
	p := probe(child)
	child.Focus()

	if !child.TryFocus() {
		t.Error("TryFocus on the focused control should succeed")
	}
	if p.focused != 1 {
		t.Errorf("OnFocused ran %d times, want 1", p.focused)
	}
	assertFocused(t, root, child)
}

func TestFocusIntermediate(t *testing.T) {
	t.Run("with nothing focused", func(t *testing.T) {
		root := NewRoot(10, 10)
		mid := focusableComposite("mid")
		child := focusable("child")
		root.Add(mid)
		mid.Add(child)
		p := probe(mid)

		mid.Focus()

		if !mid.IsFocused() || mid.HasFocusedDescendant() || child.IsFocused() {
			t.Errorf("mid = %s, child = %s", mid.FocusState(), child.FocusState())
		}
		if p.focused != 1 {
			t.Errorf("OnFocused ran %d times, want 1", p.focused)
		}
		assertFocused(t, root, mid)
	})
	t.Run("with focused child", func(t *testing.T) {
		root := NewRoot(10, 10)
		mid := focusableComposite("mid")
		child := focusable("child")
		root.Add(mid)
		mid.Add(child)
		pc := probe(child)
		child.Focus()

		mid.Focus()

		if !mid.IsFocused() || mid.HasFocusedDescendant() || mid.FocusedChild() != nil {
			t.Errorf("mid = %s", mid.FocusState())
		}
		if child.IsFocused() || pc.lost != 1 {
			t.Errorf("child = %s, lost = %d", child.FocusState(), pc.lost)
		}
		if !root.HasFocusedDescendant() {
			t.Error("root should retain a focused descendant")
		}
		assertFocused(t, root, mid)
	})
}

func TestFocusChildOfFocusedParent(t *testing.T) {
	root := NewRoot(10, 10)
	mid := focusableComposite("mid")
	child := focusable("child")
	root.Add(mid)
	mid.Add(child)
	pm := probe(mid)
	mid.Focus()

	child.Focus()

	if !child.IsFocused() {
		t.Error("child should be focused")
	}
	if mid.IsFocused() || !mid.HasFocusedDescendant() {
		t.Errorf("mid = %s, want descendant-focused", mid.FocusState())
	}
	if pm.lost != 1 {
		t.Errorf("OnLostFocus ran %d times on mid, want 1", pm.lost)
	}
	assertFocused(t, root, child)
}

func TestFocusedControlHookOrder(t *testing.T) {
	root := NewRoot(10, 10)
	a, b := focusable("a"), focusable("b")
	root.Add(a)
	root.Add(b)
	var order []string
	a.OnLostFocus = func() { order = append(order, "a lost") }
	b.OnFocused = func() {
		// The manager already names b when its hook runs.
		if root.FocusManager().FocusedControl() != b {
			t.Error("FocusedControl should be b inside OnFocused")
		}
		order = append(order, "b focused")
	}
	a.Focus()
	b.Focus()
	if len(order) != 2 || order[0] != "a lost" || order[1] != "b focused" {
		t.Errorf("hook order = %v", order)
	}
}

// --- Blur ---

func TestBlurFocusedControl(t *testing.T) {
	root, mid, child := nestedTree()
	p := probe(child)
	child.Focus()

	child.Blur()

	if child.IsFocused() || p.lost != 1 {
		t.Errorf("child = %s, lost = %d", child.FocusState(), p.lost)
	}
	if mid.HasFocusedDescendant() || root.HasFocusedDescendant() {
		t.Error("ancestors should be reset")
	}
	assertFocused(t, root, nil)
}

func TestBlurUnfocusedControl(t *testing.T) {
	root, _, child := nestedTree()
	p := probe(child)
	child.Blur()
	if p.lost != 0 {
		t.Errorf("OnLostFocus ran %d times, want 0", p.lost)
	}
	assertFocused(t, root, nil)
}

func TestBlurAncestorDelegates(t *testing.T) {
	root, mid, child := nestedTree()
	p := probe(child)
	pm := probe(mid)
	child.Focus()

	mid.Blur()

	if child.IsFocused() || p.lost != 1 {
		t.Errorf("child = %s, lost = %d", child.FocusState(), p.lost)
	}
	if mid.FocusState() != FocusNone || pm.lost != 0 {
		t.Errorf("mid = %s, lost = %d", mid.FocusState(), pm.lost)
	}
	if root.HasFocusedDescendant() {
		t.Error("root should be reset")
	}
	assertFocused(t, root, nil)
}

func TestBlurFocused(t *testing.T) {
	root, _, child := nestedTree()
	child.Focus()
	root.FocusManager().BlurFocused()
	assertFocused(t, root, nil)
	root.FocusManager().BlurFocused() // no-op
}

// --- Forced blurs ---

func TestDisableFocusBlurs(t *testing.T) {
	root, _, child := nestedTree()
	p := probe(child)
	child.Focus()

	child.SetCanBeFocused(false)

	if child.IsFocused() || p.lost != 1 {
		t.Errorf("child = %s, lost = %d", child.FocusState(), p.lost)
	}
	assertFocused(t, root, nil)
}

func TestHideBlurs(t *testing.T) {
	root, mid, child := nestedTree()
	child.Focus()
	mid.SetVisible(false)
	if child.IsFocused() {
		t.Error("hiding an ancestor should blur the focused control")
	}
	assertFocused(t, root, nil)
}

func TestRemoveBlurs(t *testing.T) {
	t.Run("focused control", func(t *testing.T) {
		root, mid, child := nestedTree()
		child.Focus()
		mid.Remove(child)
		assertFocused(t, root, nil)
		if mid.HasFocusedDescendant() {
			t.Error("mid should be reset")
		}
	})
	t.Run("ancestor", func(t *testing.T) {
		root, mid, child := nestedTree()
		child.Focus()
		root.Remove(mid)
		assertFocused(t, root, nil)
		if child.FocusState() != FocusNone || mid.FocusState() != FocusNone {
			t.Error("detached branch should be unfocused")
		}
	})
	t.Run("remove all", func(t *testing.T) {
		root, _, child := nestedTree()
		child.Focus()
		root.RemoveAllChildren()
		assertFocused(t, root, nil)
	})
}

func TestFocusManagerConsistencyPanics(t *testing.T) {
	root, _, child := nestedTree()
	child.Focus()
	child.focusState = FocusNone // corrupt on purpose
	assertPanics(t, "focus manager holds", func() { root.FocusManager().FocusedControl() })
}

// --- Randomized invariant check ---

func TestFocusInvariantRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	root := NewRoot(100, 100)
	var all []*Control
	var composites []*Control

	// A three-level tree of focusable composites and leaves.
	for i := 0; i < 3; i++ {
		top := focusableComposite("top")
		root.Add(top)
		all = append(all, top)
		composites = append(composites, top)
		for j := 0; j < 3; j++ {
			mid := focusableComposite("mid")
			top.Add(mid)
			all = append(all, mid)
			composites = append(composites, mid)
			for k := 0; k < 2; k++ {
				leaf := focusable("leaf")
				mid.Add(leaf)
				all = append(all, leaf)
			}
		}
	}

	for step := 0; step < 2000; step++ {
		c := all[rng.Intn(len(all))]
		switch rng.Intn(6) {
		case 0, 1:
			if c.Parent() != nil {
				c.TryFocus()
			}
		case 2:
			c.Blur()
		case 3:
			c.SetCanBeFocused(!c.CanBeFocused())
		case 4:
			c.SetVisible(!c.IsVisible())
		case 5:
			// Detach and reattach somewhere else.
			if c.Parent() == nil {
				continue
			}
			c.RemoveFromParent()
			dst := composites[rng.Intn(len(composites))]
			if dst == c || isAncestor(c, dst) || dst.Root() == nil {
				root.Add(c)
			} else {
				dst.Add(c)
			}
		}
		checkFocusInvariant(t, root, all)
		if t.Failed() {
			t.Fatalf("invariant broken at step %d", step)
		}
	}
}

func checkFocusInvariant(t *testing.T, root *Root, all []*Control) {
	t.Helper()
	var focused []*Control
	for _, c := range all {
		if c.IsFocused() {
			focused = append(focused, c)
		}
	}
	if len(focused) > 1 {
		t.Errorf("%d controls focused", len(focused))
		return
	}
	fc := root.FocusManager().FocusedControl()
	if len(focused) == 0 {
		if fc != nil {
			t.Errorf("FocusedControl = %s with nothing focused", fc.Name)
		}
		return
	}
	if fc != focused[0] {
		t.Errorf("FocusedControl = %s, want %s", nameOf(fc), focused[0].Name)
	}
	// Every ancestor is descendant-focused.
	for p := focused[0].Parent(); p != nil; {
		pc, ok := p.(*Control)
		if !ok {
			break
		}
		if !pc.HasFocusedDescendant() {
			t.Errorf("ancestor %s is %s", pc.Name, pc.FocusState())
		}
		p = pc.Parent()
	}
	debugCheckFocus(root)
}
