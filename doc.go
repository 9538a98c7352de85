// Package thicket routes mouse and keyboard input through a retained-mode
// control tree and tracks which control holds keyboard focus.
//
// The tree is made of [Control] nodes under a [Root]. Leaves are created with
// [NewControl], containers with [NewComposite]. Each control's [Frame] is
// derived from its parent's frame and its [Anchors], and is recomputed lazily
// when either changes.
//
//	root := thicket.NewRoot(640, 480)
//	panel := thicket.NewComposite("panel")
//	panel.SetClickThrough(true)
//	root.Add(panel)
//
//	ok := thicket.NewButton("ok")
//	ok.SetAnchors(thicket.FixedAnchors(20, 80), thicket.FixedAnchors(20, 24))
//	ok.OnClick = func(thicket.ClickEvent) { fmt.Println("clicked") }
//	panel.Add(ok.Control)
//
// # Routing
//
// Once per tick [Root.Update] finds the [PropagationPath] under the pointer
// with [FindPropagationPath]. Siblings are searched topmost first. A control
// the pointer misses is skipped with its subtree, an opaque control claims
// the pointer, and a click-through control lets the search fall through to
// whatever lies behind it unless one of its own children is hit.
//
// Every event is delivered in two phases by [PropagateEvent]: the Preview
// hooks run root to leaf, then the plain hooks run leaf to root until a
// control sets Handled. Enter and exit events go only to the controls that
// [Deviation] reports as newly added to or removed from the path.
//
// Key and character events follow the path from the root down to the focused
// control, computed with [FindPropagationPathTo].
//
// # Focus
//
// At most one control per root is focused. Its ancestors are in the
// [FocusDescendant] state and remember which child leads to it. Focus moves
// with [Control.TryFocus] and [Control.Blur]; hiding or detaching a focused
// branch blurs it. The [FocusManager] returned by [Root.FocusManager] names
// the focused control.
//
// # Integration
//
// The ebitenui subpackage polls Ebitengine for input and draws control frames.
// The ecs subpackage forwards routed events into a [Donburi] world. Injected
// input ([Root.InjectClick] and friends) and JSON test scripts
// ([LoadTestScript]) drive the same routing without a window.
//
// [Donburi]: https://github.com/yohamta/donburi
package thicket
