package particle

import (
	"math"
)

const (
	baseWidthMin  = 15
	baseWidthMax  = 25
	baseHeightMin = 15
	baseHeightMax = 20

	hueWindow = 20
)

var (
	saturationRange     = Range{90, 100}
	lightnessRange      = Range{40, 80}
	angleRange          = Range{0, math.Pi * 2}
	angleIncrementRange = Range{0.01, 0.075}
	skewRange           = Range{0.5, 1}
)

// opacityRange keeps nearer particles (scale toward 0) more opaque.
func opacityRange(distanceScale float64) Range {
	center := 1 - distanceScale + 0.5
	return Range{math.Max(center, 0.2), math.Min(center, 1)}
}

// SpawnState computes a full initial state for a particle on a width x height
// surface. A nil existing distance samples a new depth from the layer band;
// otherwise the distance is kept and the opacity/drift scale is taken from the
// shared band.
func SpawnState(existing *float64, width, height float64, cfg *Config) Particle {
	baseWidth := RandomBetween(baseWidthMin, baseWidthMax)
	baseHeight := RandomBetween(baseHeightMin, baseHeightMax)

	var distance, distanceScale float64
	if existing == nil {
		distanceScale = math.Pow(RandomBetween(0, 1), cfg.DistanceWeight)
		distance = cfg.MinDistance + (cfg.MaxDistance-cfg.MinDistance)*distanceScale
	} else {
		distance = *existing
		distanceScale = cfg.Shared.DistanceScale(distance)
	}

	hue := cfg.Shared.StartingHue

	return Particle{
		X:          RandomBetween(0, width),
		Y:          -RandomBetween(0, height),
		W:          baseWidth / distance,
		H:          baseHeight / distance,
		Mass:       baseWidth * baseHeight,
		Distance:   distance,
		DistanceSq: distance * distance,
		Color: RandomColor(
			Range{hue, hue + hueWindow},
			saturationRange,
			lightnessRange,
			opacityRange(distanceScale),
		),
		Angle:               angleRange.Sample(),
		AngleIncrement:      randomSign() * angleIncrementRange.Sample(),
		SkewXScale:          skewRange.Sample(),
		SkewYScale:          skewRange.Sample(),
		DriftScale:          1 - distanceScale,
		DriftAngleOffset:    angleRange.Sample(),
		RotationAngleOffset: angleRange.Sample(),
	}
}

// NewParticle spawns a fresh particle for a layer.
func NewParticle(width, height float64, cfg *Config) *Particle {
	p := SpawnState(nil, width, height, cfg)
	return &p
}

// IsExiting reports whether the particle has left a width x height surface
// sideways (with a 5px margin) or through the bottom.
func (p *Particle) IsExiting(width, height float64) bool {
	return p.X > width+5 || p.X < -5 || p.Y > height
}
