// Package shape provides retained 2D shape primitives painted through gg.
//
// # Overview
//
// A shape is a small adapter between a styled entity and a canvas-like
// drawing [Context]: it builds the entity's path, fills and strokes it, draws
// an optional text label and reports its bounding box for repaint and
// hit-testing. Shapes are stateless; every [Shape.Brush] call is a single
// synchronous pass over the context.
//
// # Quick Start
//
//	dc := gg.NewContext(400, 400)
//	cv := shape.NewCanvas(dc)
//
//	e := &shape.Entity{
//	    Type: "ring",
//	    Style: shape.Style{
//	        X: 200, Y: 200, R0: 60, R: 120,
//	        Color: "rgba(255, 0, 0, 0.8)",
//	        Text:  "ring",
//	    },
//	}
//	if err := shape.Draw(cv, e, false); err != nil {
//	    log.Fatal(err)
//	}
//	dc.SavePNG("ring.png")
//
// # Shapes
//
// The default registry contains:
//   - "sector": pie slice or annular sector, angles in degrees
//   - "ring": annulus, a sector spanning the full 360 degrees
//   - "circle": disk
//
// Custom shapes embed [Base] for the shared behaviour (style merge, context
// setup, transform, label drawing) and are added with [Register]. A shape
// painted as one filled or stroked path implements [Outline] and delegates
// Brush to [Base.PaintOutline]; shapes with their own pass build it from
// [Base.Prepare], [Base.SetContext], [Base.ApplyTransform],
// [Base.LabelColor] and [Base.DrawText].
//
// # Coordinate System
//
// Same as gg: origin top-left, y grows downwards. Sector angles are in
// degrees and grow anticlockwise on screen. Entity rotation is in radians,
// positive values rotate anticlockwise on screen.
//
// # Contexts
//
// [Canvas] paints into a *gg.Context. [Recorder] records every call and is
// handy in tests.
package shape
