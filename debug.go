package thicket

import (
	"fmt"
	"os"
)

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(c *Control) {
	depth := 0
	var p Parent = c
	for p != nil {
		depth++
		pc, ok := p.(*Control)
		if !ok {
			break
		}
		p = pc.parent
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[thicket] warning: tree depth %d exceeds %d (control %q)\n",
			depth, debugMaxTreeDepth, c.Name)
	}
}

// debugCheckChildCount warns on stderr if a parent has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(p Parent, n int) {
	if n > debugMaxChildCount {
		name := "<root>"
		if pc, ok := p.(*Control); ok {
			name = pc.Name
		}
		_, _ = fmt.Fprintf(os.Stderr, "[thicket] warning: control %q has %d children (threshold %d)\n",
			name, n, debugMaxChildCount)
	}
}

// debugCheckFocus walks the whole tree and panics if the focus bookkeeping is
// inconsistent: more than one focused control, an ancestor of the focused
// control not marked FocusDescendant, a FocusDescendant control whose
// focusedChild is not on the path, or a FocusManager that disagrees with the
// tree. Only called in debug mode.
func debugCheckFocus(r *Root) {
	if r == nil {
		return
	}
	var focused []*Control
	var walk func(children []*Control)
	walk = func(children []*Control) {
		for _, c := range children {
			switch c.focusState {
			case FocusFocused:
				focused = append(focused, c)
			case FocusDescendant:
				if c.focusedChild == nil || c.focusedChild.parent != Parent(c) {
					panic(fmt.Sprintf("thicket debug: control %q is descendant-focused without a focused child", c.Name))
				}
			}
			walk(c.children)
		}
	}
	walk(r.children)

	if len(focused) > 1 {
		panic(fmt.Sprintf("thicket debug: %d controls are focused at once", len(focused)))
	}
	if len(focused) == 0 {
		if r.focus.current != nil || r.focusedChild != nil {
			panic("thicket debug: focus manager holds a control but none is focused")
		}
		return
	}
	f := focused[0]
	if r.focus.current != f {
		panic(fmt.Sprintf("thicket debug: focus manager does not hold focused control %q", f.Name))
	}
	child := f
	for p := f.parent; p != nil; {
		switch v := p.(type) {
		case *Root:
			if v.focusedChild != child {
				panic(fmt.Sprintf("thicket debug: root does not track the branch of focused control %q", f.Name))
			}
			return
		case *Control:
			if v.focusState != FocusDescendant || v.focusedChild != child {
				panic(fmt.Sprintf("thicket debug: ancestor %q of focused control %q is %s", v.Name, f.Name, v.focusState))
			}
			child = v
			p = v.parent
		}
	}
}
