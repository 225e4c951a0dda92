package convert

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Compose paints backdrop and then every layer over dst, in order. Layers
// whose size differs from dst are scaled to fit.
func Compose(dst draw.Image, backdrop color.Color, layers ...image.Image) {
	r := dst.Bounds()
	draw.Draw(dst, r, image.NewUniform(backdrop), image.Point{}, draw.Src)

	for _, layer := range layers {
		if layer == nil {
			continue
		}
		lb := layer.Bounds()
		if lb.Dx() == r.Dx() && lb.Dy() == r.Dy() {
			draw.Draw(dst, r, layer, lb.Min, draw.Over)
			continue
		}
		draw.ApproxBiLinear.Scale(dst, r, layer, lb, draw.Over, nil)
	}
}
