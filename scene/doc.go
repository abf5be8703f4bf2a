// Package scene provides a small hierarchical scene graph for 2D drawings
// and the animated cart-and-windmill world built with it.
//
// A scene is a tree of [Node] values. Leaves are unit shapes (a line, a
// square, a circle or a filled polygon); [Transformed] nodes place a single
// child with a translation, rotation and scale; [Group] nodes draw their
// children in order. Any node can override the color inherited from its
// parent.
//
// [Draw] walks the tree with one recursive function, passing the
// accumulated transform down as a [paintkit.Matrix] value, so no transform
// state is saved or restored.
//
// Example:
//
//	wheel := scene.Transformed(scene.Group(
//		scene.FilledCircle(),
//		scene.Transformed(scene.Line()).SetRotation(45),
//	))
//	wheel.SetRotation(-3.1 * float64(frame))
//
//	view, pixelSize := scene.Limits(700, 500, 0, 7, 4, -1, false)
//	scene.Draw(canvas, wheel, view, scene.Style{Color: paintkit.Black, LineWidth: pixelSize})
//
// The same world is also available as [DrawProcedural], which draws it with
// plain nested functions instead of a graph.
package scene
