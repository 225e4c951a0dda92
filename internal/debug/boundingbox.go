package debug

import (
	"image/color"

	"linux-confetti/internal/wallpaper"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	backgroundBoxColor = rl.NewColor(0, 255, 255, 100)
	foregroundBoxColor = rl.NewColor(0, 255, 0, 160)
	exitingBoxColor    = rl.NewColor(255, 60, 60, 220)
)

func (d *DebugOverlay) drawBoundingBoxes() {
	for _, l := range d.scene.Layers() {
		col := backgroundBoxColor
		if l == d.scene.Foreground {
			col = foregroundBoxColor
		}
		drawLayerBoxes(l, col)
	}
}

// drawLayerBoxes outlines each particle's unrotated extent around its
// position, in layer pixels.
func drawLayerBoxes(l *wallpaper.Layer, col color.RGBA) {
	w, h := float64(l.Canvas.Width()), float64(l.Canvas.Height())
	for _, p := range l.Particles {
		c := col
		if p.IsExiting(w, h) {
			c = exitingBoxColor
		}
		rl.DrawRectangleLines(int32(p.X-p.W/2), int32(p.Y-p.H/2), int32(p.W+1), int32(p.H+1), c)
	}
}
