// Package graphic is a declarative 2D scene-graph library.
//
// Callers build immutable trees of graphic primitives — text, polygons,
// rectangles, ellipses, and piecewise-affine paths — combine and transform
// them algebraically, and freeze the result into a renderable snapshot.
//
// # Building trees
//
// Leaf constructors create primitives; combinators compose them:
//
//	box, _ := graphic.FilledRectangle(graphic.Red, 40, 40)
//	dot, _ := graphic.FilledEllipse(graphic.Blue, 10, 10)
//	scene := graphic.Onto(
//		graphic.Translate(15, 15, dot),
//		box,
//	)
//	row := graphic.AlignH(scene, graphic.Center, scene)
//
// Every value is immutable and persistent: combinators return new trees and
// subtrees may be shared freely across branches.
//
// # Pictures and export
//
// [Make] freezes a tree into a [Picture]; [Explain] does the same but adds
// bounding-box outlines for every node, which is handy for debugging layout.
// Pictures go to a file via [RenderToFile] (PNG) or [AnimateToFile]
// (animated GIF) using a [Rasterizer] such as the one in the raster
// subpackage, or to a live window via the interaction runtime.
//
// # Interaction
//
// [Interact] turns a pure draw function and a pure react function into an
// event-driven application loop over a [Window] such as the one in the
// ebitenwin subpackage:
//
//	ebitenwin.Interact(winCfg, graphic.LoopConfig{}, initialState,
//		func(s State) *graphic.Picture { ... },
//		func(s State, ev graphic.Event) (State, bool) { ... },
//	)
//
// # Fonts
//
// Text measurement is delegated to a registered [FontBackend]. Import the
// typeface subpackage for the default backend built on the embedded Go
// fonts:
//
//	import _ "github.com/phanxgames/graphic/typeface"
package graphic
