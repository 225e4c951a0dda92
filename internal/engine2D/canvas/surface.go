// Package canvas defines the drawing surface the particle drivers paint on and
// ships the surfaces that do not need a window: a gogpu/gg software raster and
// a command recorder.
//
// The model follows the HTML canvas 2D context: a current affine transform,
// a current fill color, immediate rectangle fills, and a path that collects
// rectangles until Fill or Stroke paints them all at once. Path points are
// transformed when they are added, not when the path is painted.
package canvas

import "image/color"

// Surface is a 2D rasterizer owned by exactly one driver.
type Surface interface {
	Width() int
	Height() int
	Resize(width, height int) error

	// SetTransform replaces the current transform.
	SetTransform(m Matrix)
	// Rotate post-multiplies the current transform by a rotation in radians.
	Rotate(angle float64)
	SetFillColor(c color.Color)

	// FillRect paints a rectangle in user space with the current fill color.
	FillRect(x, y, w, h float64)
	// Clear resets every pixel to transparent.
	Clear()

	// BeginPath discards the current path.
	BeginPath()
	// Rect appends a rectangle in user space to the current path.
	Rect(x, y, w, h float64)
	// Fill paints the current path with the current fill color.
	Fill() error
	// Stroke outlines the current path with the current fill color.
	Stroke() error
}

// Framer is implemented by surfaces that must bracket a frame's drawing, such
// as GPU render targets.
type Framer interface {
	BeginFrame()
	EndFrame()
}
