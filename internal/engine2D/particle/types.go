package particle

import (
	"linux-confetti/internal/engine2D/canvas"
)

// Particle is one confetti piece. Distance is fixed for the particle's
// lifetime; respawns only move it back above the surface and recolor it.
type Particle struct {
	X, Y float64
	W, H float64

	Mass       float64
	Distance   float64
	DistanceSq float64
	Color      HSLA

	Angle          float64
	AngleIncrement float64
	// Trig of the angle from the previous update.
	AngleCos float64
	AngleSin float64

	Drift            float64
	DriftScale       float64
	DriftAngleOffset float64

	SkewXScale          float64
	SkewYScale          float64
	RotationAngleOffset float64
}

// SharedState is shared by every layer of a scene. The distance band only
// normalizes respawn opacity and drift; StartingHue rotates every frame.
type SharedState struct {
	MinDistance float64
	MaxDistance float64
	StartingHue float64
	HueStep     float64
}

// DistanceScale normalizes distance against the shared band.
func (s *SharedState) DistanceScale(distance float64) float64 {
	return (distance - s.MinDistance) / (s.MaxDistance - s.MinDistance)
}

// Behavior draws and advances particles of one effect variant.
type Behavior interface {
	Draw(p *Particle, s canvas.Surface, cfg *Config)
	Update(p *Particle, s canvas.Surface, cfg *Config)
}

// StateUpdater is implemented by behaviors with per-frame global state.
type StateUpdater interface {
	UpdateState(cfg *Config)
}

// Config describes one depth layer.
type Config struct {
	Name string

	MinDistance float64
	MaxDistance float64
	// DistanceWeight is the exponent applied to the uniform depth sample;
	// values below 1 push samples toward MaxDistance, above 1 toward MinDistance.
	DistanceWeight float64

	Shared   *SharedState
	Behavior Behavior

	// Batch collects every particle into one path painted after the loop.
	Batch bool
	// Fill paints batched paths; otherwise they are stroked.
	Fill bool
}
