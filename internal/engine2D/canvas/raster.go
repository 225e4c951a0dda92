package canvas

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// Raster is a software Surface backed by a gogpu/gg context.
type Raster struct {
	dc        *gg.Context
	transform Matrix
	fill      color.Color
	path      Path
}

var _ Surface = (*Raster)(nil)

// NewRaster allocates a transparent width x height raster.
func NewRaster(width, height int) *Raster {
	r := &Raster{
		dc:        gg.NewContext(width, height),
		transform: Identity(),
		fill:      color.Black,
	}
	r.dc.SetColor(r.fill)
	return r
}

func (r *Raster) Width() int  { return r.dc.Width() }
func (r *Raster) Height() int { return r.dc.Height() }

func (r *Raster) Resize(width, height int) error {
	return r.dc.Resize(width, height)
}

// Image returns the current pixels.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// Context exposes the underlying gg context.
func (r *Raster) Context() *gg.Context { return r.dc }

// Close releases the gg context.
func (r *Raster) Close() error { return r.dc.Close() }

func toGG(m Matrix) gg.Matrix {
	return gg.Matrix{
		A: m.A, B: m.C, C: m.E,
		D: m.B, E: m.D, F: m.F,
	}
}

func (r *Raster) SetTransform(m Matrix) {
	r.transform = m
	r.dc.SetTransform(toGG(m))
}

func (r *Raster) Rotate(angle float64) {
	r.SetTransform(r.transform.Rotate(angle))
}

func (r *Raster) SetFillColor(c color.Color) {
	r.fill = c
	r.dc.SetColor(c)
}

func (r *Raster) FillRect(x, y, w, h float64) {
	// The gg path is only used for immediate fills; batched rects live in
	// r.path, so clearing here never drops them.
	r.dc.ClearPath()
	r.dc.DrawRectangle(x, y, w, h)
	if err := r.dc.Fill(); err != nil {
		gg.Logger().Warn("fillRect failed", "err", err)
	}
}

func (r *Raster) Clear() {
	r.dc.Clear()
}

func (r *Raster) BeginPath() {
	r.path.Reset()
}

func (r *Raster) Rect(x, y, w, h float64) {
	r.path.Add(RectQuad(r.transform, x, y, w, h))
}

// tracePath replays the batched quads in device space.
func (r *Raster) tracePath() {
	r.dc.ClearPath()
	r.dc.SetTransform(gg.Identity())
	for _, q := range r.path.Quads() {
		r.dc.MoveTo(q[0].X, q[0].Y)
		for _, p := range q[1:] {
			r.dc.LineTo(p.X, p.Y)
		}
		r.dc.ClosePath()
	}
	r.dc.SetTransform(toGG(r.transform))
}

func (r *Raster) Fill() error {
	if r.path.IsEmpty() {
		return nil
	}
	r.tracePath()
	return r.dc.Fill()
}

func (r *Raster) Stroke() error {
	if r.path.IsEmpty() {
		return nil
	}
	r.tracePath()
	r.dc.SetLineWidth(1)
	return r.dc.Stroke()
}
