// Package rlsurface draws canvas surfaces into raylib render textures so the
// window host can composite layers every frame.
package rlsurface

import (
	"fmt"
	"image/color"

	"linux-confetti/internal/engine2D/canvas"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RenderTarget is a canvas.Surface backed by a raylib RenderTexture2D.
// Create it after rl.InitWindow and use it from the window goroutine only.
type RenderTarget struct {
	rt            rl.RenderTexture2D
	width, height int

	transform canvas.Matrix
	fill      color.RGBA
	path      canvas.Path
	inFrame   bool
}

var (
	_ canvas.Surface = (*RenderTarget)(nil)
	_ canvas.Framer  = (*RenderTarget)(nil)
)

func New(width, height int) (*RenderTarget, error) {
	t := &RenderTarget{
		transform: canvas.Identity(),
		fill:      rl.Black,
	}
	if err := t.Resize(width, height); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *RenderTarget) Width() int  { return t.width }
func (t *RenderTarget) Height() int { return t.height }

// Resize reallocates the texture. The previous contents are lost.
func (t *RenderTarget) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions: width=%d, height=%d", width, height)
	}
	rt := rl.LoadRenderTexture(int32(width), int32(height))
	if !rl.IsRenderTextureValid(rt) {
		return fmt.Errorf("failed to create %dx%d render texture", width, height)
	}
	if t.width > 0 {
		rl.UnloadRenderTexture(t.rt)
	}
	t.rt = rt
	t.width, t.height = width, height

	t.BeginFrame()
	rl.ClearBackground(rl.Blank)
	t.EndFrame()
	return nil
}

func (t *RenderTarget) BeginFrame() {
	if t.inFrame {
		return
	}
	rl.BeginTextureMode(t.rt)
	t.inFrame = true
}

func (t *RenderTarget) EndFrame() {
	if !t.inFrame {
		return
	}
	rl.EndTextureMode()
	t.inFrame = false
}

// paint runs fn inside texture mode, opening it if the driver did not.
func (t *RenderTarget) paint(fn func()) {
	if t.inFrame {
		fn()
		return
	}
	t.BeginFrame()
	fn()
	t.EndFrame()
}

func (t *RenderTarget) SetTransform(m canvas.Matrix) { t.transform = m }

func (t *RenderTarget) Rotate(angle float64) {
	t.transform = t.transform.Rotate(angle)
}

// SetFillColor stores c with straight alpha, which is what raylib expects.
func (t *RenderTarget) SetFillColor(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	t.fill = color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

func (t *RenderTarget) FillRect(x, y, w, h float64) {
	q := canvas.RectQuad(t.transform, x, y, w, h)
	t.paint(func() { fillQuad(q, t.fill) })
}

func (t *RenderTarget) Clear() {
	t.paint(func() { rl.ClearBackground(rl.Blank) })
}

func (t *RenderTarget) BeginPath() { t.path.Reset() }

func (t *RenderTarget) Rect(x, y, w, h float64) {
	t.path.Add(canvas.RectQuad(t.transform, x, y, w, h))
}

func (t *RenderTarget) Fill() error {
	t.paint(func() {
		for _, q := range t.path.Quads() {
			fillQuad(q, t.fill)
		}
	})
	return nil
}

func (t *RenderTarget) Stroke() error {
	t.paint(func() {
		for _, q := range t.path.Quads() {
			for i := range q {
				rl.DrawLineV(vec(q[i]), vec(q[(i+1)%len(q)]), t.fill)
			}
		}
	})
	return nil
}

// Draw composites the texture into dst on the current render target.
func (t *RenderTarget) Draw(dst rl.Rectangle, tint color.RGBA) {
	// Render textures are stored upside down.
	src := rl.NewRectangle(0, 0, float32(t.width), -float32(t.height))
	rl.DrawTexturePro(t.rt.Texture, src, dst, rl.NewVector2(0, 0), 0, tint)
}

// Close releases the texture.
func (t *RenderTarget) Close() error {
	t.EndFrame()
	if t.width > 0 {
		rl.UnloadRenderTexture(t.rt)
		t.width, t.height = 0, 0
	}
	return nil
}

func vec(p canvas.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

// fillQuad splits q into two triangles. raylib culls clockwise triangles, so
// the winding is flipped when the transform mirrors the quad.
func fillQuad(q canvas.Quad, c color.RGBA) {
	a, b, cc, d := vec(q[0]), vec(q[1]), vec(q[2]), vec(q[3])
	if q.SignedArea() > 0 {
		b, d = d, b
	}
	rl.DrawTriangle(a, b, cc, c)
	rl.DrawTriangle(a, cc, d, c)
}
