package thicket

import "testing"

func TestFindPropagationPath(t *testing.T) {
	tests := []struct {
		name  string
		build func(root *Root)
		at    Vec2
		want  []string
	}{
		{
			name: "empty tree",
			build: func(root *Root) {},
			at:    Vec2{10, 10},
			want:  nil,
		},
		{
			name: "nothing under pointer",
			build: func(root *Root) {
				root.Add(leafAt("a", 0, 0, 10, 10))
			},
			at:   Vec2{50, 50},
			want: nil,
		},
		{
			name: "topmost sibling wins",
			build: func(root *Root) {
				root.Add(leafAt("back", 0, 0, 50, 50))
				root.Add(leafAt("front", 0, 0, 50, 50))
			},
			at:   Vec2{10, 10},
			want: []string{"front"},
		},
		{
			name: "hit composite extends into hit child",
			build: func(root *Root) {
				box := compositeAt("box", 0, 0, 50, 50)
				box.Add(leafAt("leaf", 10, 10, 10, 10))
				root.Add(box)
			},
			at:   Vec2{15, 15},
			want: []string{"box", "leaf"},
		},
		{
			name: "hit composite stands alone when no child is hit",
			build: func(root *Root) {
				box := compositeAt("box", 0, 0, 50, 50)
				box.Add(leafAt("leaf", 10, 10, 10, 10))
				root.Add(leafAt("behind", 0, 0, 50, 50))
				root.AddOnTopOf(root.ChildAt(0), box)
			},
			at:   Vec2{40, 40},
			want: []string{"box"},
		},
		{
			name: "pass-through without hits contributes nothing",
			build: func(root *Root) {
				overlay := compositeAt("overlay", 0, 0, 100, 100)
				overlay.SetClickThrough(true)
				overlay.Add(leafAt("button", 0, 0, 10, 10))
				root.Add(overlay)
			},
			at:   Vec2{50, 50},
			want: nil,
		},
		{
			name: "pass-through falls back to the sibling behind",
			build: func(root *Root) {
				root.Add(leafAt("backdrop", 0, 0, 100, 100))
				overlay := compositeAt("overlay", 0, 0, 100, 100)
				overlay.SetClickThrough(true)
				overlay.Add(leafAt("button", 0, 0, 10, 10))
				root.Add(overlay)
			},
			at:   Vec2{50, 50},
			want: []string{"backdrop"},
		},
		{
			name: "pass-through keeps a hit child",
			build: func(root *Root) {
				root.Add(leafAt("backdrop", 0, 0, 100, 100))
				overlay := compositeAt("overlay", 0, 0, 100, 100)
				overlay.SetClickThrough(true)
				overlay.Add(leafAt("button", 0, 0, 10, 10))
				root.Add(overlay)
			},
			at:   Vec2{5, 5},
			want: []string{"overlay", "button"},
		},
		{
			name: "nested pass-through backtracks two levels",
			build: func(root *Root) {
				root.Add(leafAt("backdrop", 0, 0, 100, 100))
				outer := compositeAt("outer", 0, 0, 100, 100)
				outer.SetClickThrough(true)
				inner := compositeAt("inner", 0, 0, 100, 100)
				inner.SetClickThrough(true)
				inner.Add(leafAt("far", 90, 90, 10, 10))
				outer.Add(inner)
				root.Add(outer)
			},
			at:   Vec2{50, 50},
			want: []string{"backdrop"},
		},
		{
			name: "pass-through leaf is never on the path",
			build: func(root *Root) {
				root.Add(leafAt("backdrop", 0, 0, 100, 100))
				glass := leafAt("glass", 0, 0, 100, 100)
				glass.SetClickThrough(true)
				root.Add(glass)
			},
			at:   Vec2{50, 50},
			want: []string{"backdrop"},
		},
		{
			name: "invisible subtree is skipped",
			build: func(root *Root) {
				root.Add(leafAt("back", 0, 0, 100, 100))
				box := compositeAt("box", 0, 0, 100, 100)
				box.Add(leafAt("inside", 0, 0, 100, 100))
				box.SetVisible(false)
				root.Add(box)
			},
			at:   Vec2{50, 50},
			want: []string{"back"},
		},
		{
			// Frames are not clipped to their parent: a child outside its
			// parent is unreachable because the parent misses first.
			name: "child outside a missed parent is unreachable",
			build: func(root *Root) {
				box := compositeAt("box", 0, 0, 10, 10)
				box.Add(leafAt("stray", 50, 50, 10, 10))
				root.Add(box)
			},
			at:   Vec2{55, 55},
			want: nil,
		},
		{
			name: "frame edges are inclusive",
			build: func(root *Root) {
				root.Add(leafAt("a", 0, 0, 10, 10))
			},
			at:   Vec2{10, 10},
			want: []string{"a"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewRoot(100, 100)
			tt.build(root)
			assertPath(t, FindPropagationPath(root, pointerTest(tt.at)), tt.want...)
		})
	}
}

// root → containerA (click-through) → leaf1 covering R; root → leaf2 added
// after containerA, overlapping R. The front-most opaque leaf wins.
func TestFindPropagationPathFrontMostOpaqueWins(t *testing.T) {
	root := NewRoot(100, 100)
	containerA := compositeAt("containerA", 0, 0, 100, 100)
	containerA.SetClickThrough(true)
	containerA.Add(leafAt("leaf1", 10, 10, 40, 40))
	root.Add(containerA)
	root.Add(leafAt("leaf2", 20, 20, 40, 40))

	assertPath(t, FindPropagationPath(root, pointerTest(Vec2{30, 30})), "leaf2")
	// Outside leaf2 but inside leaf1.
	assertPath(t, FindPropagationPath(root, pointerTest(Vec2{15, 15})), "containerA", "leaf1")
}

func TestFindPropagationPathCustomTest(t *testing.T) {
	root := NewRoot(100, 100)
	a := NewComposite("a")
	b := NewControl("b")
	a.Add(b)
	root.Add(a)
	root.Add(NewControl("c"))

	calls := 0
	path := FindPropagationPath(root, func(c *Control) PropagationOutcome {
		calls++
		if c.Name == "c" {
			return OutcomeMiss
		}
		return OutcomeHit
	})
	assertPath(t, path, "a", "b")
	if calls != 3 {
		t.Errorf("test called %d times, want 3", calls)
	}
}

func TestFindPropagationPathDeepTree(t *testing.T) {
	root := NewRoot(100, 100)
	var parent Parent = root
	want := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		c := NewComposite("n")
		c.SetClickThrough(i%2 == 0)
		parent.Add(c)
		parent = c
		want = append(want, "n")
	}
	leaf := NewControl("leaf")
	parent.Add(leaf)
	want = append(want, "leaf")

	path := FindPropagationPath(root, pointerTest(Vec2{50, 50}))
	assertPath(t, path, want...)
	if path.Leaf() != leaf {
		t.Error("leaf should be the deepest control")
	}
}

func TestFindPropagationPathTo(t *testing.T) {
	root := NewRoot(100, 100)
	a := NewComposite("a")
	b := NewComposite("b")
	c := NewControl("c")
	root.Add(a)
	a.Add(b)
	b.Add(c)

	assertPath(t, FindPropagationPathTo(root, c), "a", "b", "c")
	assertPath(t, FindPropagationPathTo(root, a), "a")

	if p := FindPropagationPathTo(root, nil); !p.IsEmpty() {
		t.Error("nil leaf should yield the empty path")
	}

	other := NewRoot(10, 10)
	stranger := NewControl("stranger")
	other.Add(stranger)
	if p := FindPropagationPathTo(root, stranger); !p.IsEmpty() {
		t.Error("a control under another root should yield the empty path")
	}

	root.Remove(a)
	if p := FindPropagationPathTo(root, c); !p.IsEmpty() {
		t.Error("a detached control should yield the empty path")
	}
}
