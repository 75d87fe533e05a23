// Package swr is an aliased 2D software rasterizer.
//
// # Overview
//
// swr fills vector geometry (rectangles, convex polygons, paths with
// quadratic and cubic curves, triangle meshes and tessellated quads) into
// an in-memory buffer of premultiplied ARGB pixels. A [Paint] selects the
// source color or [Shader] and one of twelve Porter-Duff blend modes.
// There is no anti-aliasing: a pixel is painted exactly when its center
// lies inside the shape.
//
// # Quick Start
//
//	import "github.com/gogpu/swr"
//
//	bm := swr.NewBitmap(256, 256)
//	c, err := swr.NewCanvas(bm)
//	if err != nil {
//	    return err
//	}
//	c.Clear(swr.White)
//
//	path := swr.NewPath().AddCircle(swr.Pt(128, 128), 100, swr.Clockwise)
//	c.DrawPath(path, swr.NewPaint(swr.Red))
//
//	// Bitmap implements image.Image.
//	png.Encode(w, bm)
//
// # Shaders
//
// Shaders produce the source pixels of a draw: [NewSolidShader],
// [NewLinearGradient], [NewRadialGradient], [NewBitmapShader],
// [NewTricolorShader], [NewProxyShader] and [NewComposeShader]. A shader is
// bound to the canvas transform once per draw; when that transform cannot
// be inverted the draw is skipped.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Canvas, Bitmap, Path, Paint, Shader, Matrix, Color
//   - Internal: raster (edges, clipping, scanline fill), blend (compositing)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel (x, y) has its center at (x+0.5, y+0.5)
//
// # Logging
//
// swr is silent by default. Use [SetLogger] or [WithLogger] to see skipped
// draws and tolerated misuse.
package swr
