package particle

import (
	"linux-confetti/internal/engine2D/canvas"
)

// Confetti is the falling-confetti Behavior.
type Confetti struct{}

var (
	_ Behavior     = Confetti{}
	_ StateUpdater = Confetti{}
)

const confettiScaleY = 0.75

// Draw paints the particle as a sheared, rotated rectangle. It leaves the
// surface transform and fill color changed.
func (Confetti) Draw(p *Particle, s canvas.Surface, cfg *Config) {
	s.SetTransform(canvas.Matrix{
		A: 1,
		B: p.SkewXScale * p.AngleCos,
		C: p.SkewYScale * p.AngleSin,
		D: confettiScaleY,
		E: p.X + p.Drift*p.DriftScale*p.W,
		F: p.Y,
	})
	s.Rotate(p.Angle + p.RotationAngleOffset)
	s.SetFillColor(p.Color)

	if cfg.Batch {
		s.Rect(-0.5*p.W, -0.5*p.H, p.W, p.H)
		return
	}
	s.FillRect(-0.5*p.W, -0.5*p.H, p.W, p.H)
}
