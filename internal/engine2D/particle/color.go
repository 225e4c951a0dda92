package particle

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Default channel ranges used when RandomColor is given fewer ranges.
var (
	FullHue        = Range{0, 360}
	FullSaturation = Range{0, 100}
	FullLightness  = Range{0, 100}
	FullOpacity    = Range{0, 1}
)

// HSLA is a CSS-style color: hue in degrees, saturation and lightness in
// percent, alpha in [0,1]. It implements color.Color.
type HSLA struct {
	H, S, L, A float64
}

var _ color.Color = HSLA{}

// RandomColor samples each channel uniformly from its range. Ranges are given
// in hue, saturation, lightness, opacity order; missing ones default to the
// full channel range.
func RandomColor(ranges ...Range) HSLA {
	channels := [4]Range{FullHue, FullSaturation, FullLightness, FullOpacity}
	copy(channels[:], ranges)

	return HSLA{
		H: channels[0].Sample(),
		S: channels[1].Sample(),
		L: channels[2].Sample(),
		A: channels[3].Sample(),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// String renders the color as hsla(h, s%, l%, a).
func (c HSLA) String() string {
	var b strings.Builder
	b.WriteString("hsla(")
	b.WriteString(formatFloat(c.H))
	b.WriteString(", ")
	b.WriteString(formatFloat(c.S))
	b.WriteString("%, ")
	b.WriteString(formatFloat(c.L))
	b.WriteString("%, ")
	b.WriteString(formatFloat(c.A))
	b.WriteString(")")
	return b.String()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// wrapHue folds any hue angle into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// NRGBA converts to straight-alpha 8-bit RGBA.
func (c HSLA) NRGBA() color.NRGBA {
	rgb := colorful.Hsl(wrapHue(c.H), clamp01(c.S/100), clamp01(c.L/100)).Clamped()
	r, g, b := rgb.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(c.A) * 255))}
}

// RGBA implements color.Color with alpha-premultiplied channels.
func (c HSLA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}
