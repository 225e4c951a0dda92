package canvas

import (
	"image/color"
	"testing"
)

func alphaAt(r *Raster, x, y int) uint32 {
	_, _, _, a := r.Image().At(x, y).RGBA()
	return a
}

func TestRasterFillRect(t *testing.T) {
	r := NewRaster(20, 20)
	t.Cleanup(func() { _ = r.Close() })

	r.SetFillColor(color.RGBA{R: 255, A: 255})
	r.FillRect(5, 5, 10, 10)

	red, g, b, a := r.Image().At(10, 10).RGBA()
	if red != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("pixel (10,10) = (%#x, %#x, %#x, %#x), want opaque red", red, g, b, a)
	}
	if a := alphaAt(r, 1, 1); a != 0 {
		t.Errorf("pixel (1,1) alpha = %#x, want 0", a)
	}
}

func TestRasterTransformedFill(t *testing.T) {
	r := NewRaster(40, 40)
	t.Cleanup(func() { _ = r.Close() })

	r.SetFillColor(color.White)
	r.SetTransform(Matrix{A: 1, D: 1, E: 30, F: 30})
	r.FillRect(-3, -3, 6, 6)

	if a := alphaAt(r, 30, 30); a != 0xffff {
		t.Errorf("pixel (30,30) alpha = %#x, want opaque", a)
	}
	if a := alphaAt(r, 3, 3); a != 0 {
		t.Errorf("pixel (3,3) alpha = %#x, want 0 (rect must be translated)", a)
	}
}

func TestRasterBatchFillAndClear(t *testing.T) {
	r := NewRaster(40, 40)
	t.Cleanup(func() { _ = r.Close() })

	r.SetFillColor(color.White)
	r.BeginPath()
	r.SetTransform(Matrix{A: 1, D: 1, E: 10, F: 10})
	r.Rect(-2, -2, 4, 4)
	r.SetTransform(Matrix{A: 1, D: 1, E: 30, F: 30})
	r.Rect(-2, -2, 4, 4)

	if a := alphaAt(r, 10, 10); a != 0 {
		t.Fatalf("Rect painted before Fill: alpha %#x", a)
	}
	if err := r.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}
	for _, p := range [][2]int{{10, 10}, {30, 30}} {
		if a := alphaAt(r, p[0], p[1]); a != 0xffff {
			t.Errorf("pixel %v alpha = %#x, want opaque", p, a)
		}
	}

	r.Clear()
	if a := alphaAt(r, 10, 10); a != 0 {
		t.Errorf("pixel (10,10) alpha after Clear = %#x, want 0", a)
	}
}

func TestRasterResize(t *testing.T) {
	r := NewRaster(10, 10)
	t.Cleanup(func() { _ = r.Close() })

	if err := r.Resize(32, 16); err != nil {
		t.Fatalf("Resize() = %v", err)
	}
	if r.Width() != 32 || r.Height() != 16 {
		t.Errorf("size = %dx%d, want 32x16", r.Width(), r.Height())
	}
	if err := r.Resize(0, 16); err == nil {
		t.Error("Resize(0, 16) succeeded, want error")
	}
}
