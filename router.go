package thicket

// PropagationTest classifies a single control during a path search.
type PropagationTest func(*Control) PropagationOutcome

// searchFrame is one level of the explicit DFS stack: the children being
// scanned, the next index to try (scanning downward), and how the owner of
// this level was classified.
type searchFrame struct {
	children []*Control
	next     int
	ownerHit bool
}

// FindPropagationPath searches the tree front-to-back: children are visited
// in reverse insertion order so the topmost sibling is tried first. Miss
// skips a subtree. Hit claims the control, stops the sibling scan and keeps
// descending to extend the path. PassThrough descends tentatively and is
// dropped again if nothing below it hits. The root is never on the path.
func FindPropagationPath(root *Root, test PropagationTest) PropagationPath {
	var path []*Control
	stack := []searchFrame{{children: root.children, next: len(root.children) - 1}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < 0 {
			// Every child of this level missed.
			exhausted := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				break
			}
			if exhausted.ownerHit {
				// The owner hit on its own; nothing deeper extends it.
				return newPropagationPath(path)
			}
			// Backtrack over the pass-through owner.
			path = path[:len(path)-1]
			continue
		}

		child := top.children[top.next]
		top.next--

		switch test(child) {
		case OutcomeMiss:
			continue
		case OutcomePassThrough:
			if len(child.children) == 0 {
				continue
			}
			path = append(path, child)
			stack = append(stack, searchFrame{children: child.children, next: len(child.children) - 1})
		case OutcomeHit:
			path = append(path, child)
			if len(child.children) == 0 {
				return newPropagationPath(path)
			}
			stack = append(stack, searchFrame{children: child.children, next: len(child.children) - 1, ownerHit: true})
		}
	}
	return newPropagationPath(path)
}

// FindPropagationPathTo reconstructs the path from root down to leaf by
// walking parent references. It returns the empty path if leaf is nil or is
// not connected to root; a leaf may have been detached moments earlier, so
// this is not treated as an error.
func FindPropagationPathTo(root *Root, leaf *Control) PropagationPath {
	if leaf == nil {
		return EmptyPath
	}
	path := []*Control{leaf}
	p := leaf.parent
	for p != Parent(root) {
		pc, ok := p.(*Control)
		if !ok {
			// Detached, or attached under a different root.
			return EmptyPath
		}
		path = append(path, pc)
		p = pc.parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return newPropagationPath(path)
}

// pointerTest builds the per-tick hit test for a pointer at p in frame space.
func pointerTest(p Vec2) PropagationTest {
	return func(c *Control) PropagationOutcome {
		if !c.visible || !c.Frame().Contains(p) {
			return OutcomeMiss
		}
		if c.clickThrough {
			return OutcomePassThrough
		}
		return OutcomeHit
	}
}
