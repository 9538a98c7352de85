package thicket

// PropagationPath is an immutable root-to-leaf chain of controls, excluding
// the root itself. Consecutive entries were parent and child in the live tree
// when the path was computed.
type PropagationPath struct {
	controls []*Control
}

// EmptyPath is the path with no controls.
var EmptyPath = PropagationPath{}

// newPropagationPath takes ownership of controls.
func newPropagationPath(controls []*Control) PropagationPath {
	if len(controls) == 0 {
		return EmptyPath
	}
	return PropagationPath{controls: controls}
}

// Len returns the number of controls on the path.
func (p PropagationPath) Len() int {
	return len(p.controls)
}

// IsEmpty reports whether the path has no controls.
func (p PropagationPath) IsEmpty() bool {
	return len(p.controls) == 0
}

// At returns the control at depth i, where 0 is the child of the root.
func (p PropagationPath) At(i int) *Control {
	return p.controls[i]
}

// Leaf returns the deepest control, or nil for the empty path.
func (p PropagationPath) Leaf() *Control {
	if len(p.controls) == 0 {
		return nil
	}
	return p.controls[len(p.controls)-1]
}

// Contains reports whether c is on the path.
func (p PropagationPath) Contains(c *Control) bool {
	return indexOfChild(p.controls, c) >= 0
}

// Controls returns a copy of the path, root-to-leaf.
func (p PropagationPath) Controls() []*Control {
	out := make([]*Control, len(p.controls))
	copy(out, p.controls)
	return out
}

// PropagateEvent delivers e along path in two phases. preview runs on every
// control root-to-leaf, regardless of e's handled state. dispatch then runs
// leaf-to-root and stops as soon as a control marks e handled. Controls that
// were detached by an earlier handler are skipped.
func PropagateEvent[E RoutedEvent](path PropagationPath, e E, preview, dispatch func(*Control, E)) {
	for _, c := range path.controls {
		if c.root == nil {
			continue
		}
		preview(c, e)
	}
	for i := len(path.controls) - 1; i >= 0; i-- {
		c := path.controls[i]
		if c.root == nil {
			continue
		}
		dispatch(c, e)
		if e.IsHandled() {
			return
		}
	}
}

// Deviation compares two paths and drops their shared prefix. removed holds
// the rest of old and added the rest of updated, both root-to-leaf, so that
// propagating removed bubbles exit from the old leaf upward and propagating
// added previews enter from the top down.
func Deviation(old, updated PropagationPath) (removed, added PropagationPath) {
	n := min(len(old.controls), len(updated.controls))
	shared := 0
	for shared < n && old.controls[shared] == updated.controls[shared] {
		shared++
	}
	return subPath(old, shared), subPath(updated, shared)
}

func subPath(p PropagationPath, from int) PropagationPath {
	if from >= len(p.controls) {
		return EmptyPath
	}
	return PropagationPath{controls: p.controls[from:]}
}
