// Package ebitenui connects a [thicket.Root] to [Ebitengine].
//
// [Source] polls the mouse, wheel, modifiers, keys and typed characters once
// per tick and hands them to [thicket.Root.Update]. [Game] is a ready-made
// [ebiten.Game] that drives a root and, optionally, outlines every control
// frame for debugging. [Run] opens a window around it:
//
//	root := thicket.NewRoot(640, 480)
//	// ... add controls ...
//	if err := ebitenui.Run(root, ebitenui.RunConfig{
//		Title: "Overlay", Width: 640, Height: 480, DebugDraw: true,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// [Ebitengine]: https://ebitengine.org
package ebitenui
