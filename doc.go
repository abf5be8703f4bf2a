// Package paintkit provides the pixel-level core of a small paint program
// and a hierarchical 2D scene renderer.
//
// # Overview
//
// The root package holds the shared primitives: [Raster], an opaque RGB
// pixel buffer; [RGB] colors and the drawing palette; [Matrix], an affine
// transform value; and the package logger.
//
// Sub-packages build on them:
//   - filter: 3x3 convolution filters (blur, sharpen, emboss, edge detect)
//   - tool: drawing tools, the drag-path line walker, smudge and erase
//   - session: the paint session driven by pointer events and menu commands
//   - script: YAML scripts that replay a session
//   - scene: scene-graph and procedural rendering of an animated 2D world
//
// # Coordinate System
//
// Rasters use image coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Scenes are modeled in world coordinates and mapped to pixels with a
// viewport Matrix (see scene.Limits), which may flip the y-axis.
//
// # Quick Start
//
//	s := session.New(640, 480)
//	_ = s.Do("Smudge")
//	s.Press(100, 100)
//	s.Drag(160, 120)
//	s.Release()
//	_ = s.Do("Blur 5 Times")
//	_ = s.Canvas().SavePNG("out.png")
package paintkit
