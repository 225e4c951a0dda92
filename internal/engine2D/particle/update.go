package particle

import (
	"math"

	"linux-confetti/internal/engine2D/canvas"
)

// DefaultHueStep is how far the shared hue rotates per frame.
const DefaultHueStep = 0.05

// FallSpeed is the per-frame vertical step. Near particles (small
// DistanceSq) fall much faster than far ones.
func (p *Particle) FallSpeed() float64 {
	return 1 + math.Abs(p.Mass/100+math.Abs(p.AngleIncrement)*20)/p.DistanceSq
}

// Update advances one frame and respawns the particle above the surface once
// its top edge passes the bottom.
func (Confetti) Update(p *Particle, s canvas.Surface, cfg *Config) {
	p.Y += p.FallSpeed()

	// AngleCos/AngleSin lag one frame behind the angle used for drift.
	p.Drift = math.Cos(p.Angle + p.DriftAngleOffset)
	p.AngleCos = math.Cos(p.Angle)
	p.AngleSin = math.Sin(p.Angle)
	p.Angle += p.AngleIncrement

	height := float64(s.Height())
	if p.Y-p.H >= height {
		distance := p.Distance
		next := SpawnState(&distance, float64(s.Width()), height, cfg)

		p.X = next.X
		p.Y = -p.H * 2
		p.Color = next.Color
	}
}

// UpdateState rotates the shared hue. A zero HueStep freezes it.
func (Confetti) UpdateState(cfg *Config) {
	cfg.Shared.StartingHue += cfg.Shared.HueStep
}
