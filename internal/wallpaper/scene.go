package wallpaper

import (
	"cmp"
	"slices"

	"linux-confetti/internal/engine2D"
	"linux-confetti/internal/engine2D/particle"
	"linux-confetti/internal/utils"
)

// Layer is one depth plane: its particles, their config and the canvas that
// animates them.
type Layer struct {
	Name      string
	Config    *particle.Config
	Particles []*particle.Particle
	Canvas    *engine2D.ParticleCanvas
}

// Exiting counts particles currently outside the canvas.
func (l *Layer) Exiting() int {
	w, h := float64(l.Canvas.Width()), float64(l.Canvas.Height())
	n := 0
	for _, p := range l.Particles {
		if p.IsExiting(w, h) {
			n++
		}
	}
	return n
}

// Scene is a background and a foreground layer sharing one hue and
// normalization band.
type Scene struct {
	Shared     *particle.SharedState
	Background *Layer
	Foreground *Layer
}

// NewScene builds both layers on the given canvases. Particles are spawned
// against each canvas's current size and sorted by ascending distance.
func NewScene(cfg SceneConfig, background, foreground *engine2D.ParticleCanvas) *Scene {
	hue := particle.RandomBetween(0, 360)
	if cfg.StartingHue != nil {
		hue = *cfg.StartingHue
	}

	shared := &particle.SharedState{
		MinDistance: cfg.SharedDistance.Min,
		MaxDistance: cfg.SharedDistance.Max,
		StartingHue: hue,
		HueStep:     cfg.HueStep,
	}

	bgCount, fgCount := cfg.LayerCounts()
	s := &Scene{
		Shared:     shared,
		Background: newLayer("background", cfg.Background, bgCount, shared, background),
		Foreground: newLayer("foreground", cfg.Foreground, fgCount, shared, foreground),
	}

	utils.Info("Scene built: %d background, %d foreground particles (hue %.1f)", bgCount, fgCount, hue)
	return s
}

func newLayer(name string, lc LayerConfig, count int, shared *particle.SharedState, c *engine2D.ParticleCanvas) *Layer {
	cfg := &particle.Config{
		Name:           name,
		MinDistance:    lc.Distance.Min,
		MaxDistance:    lc.Distance.Max,
		DistanceWeight: lc.DistanceWeight,
		Shared:         shared,
		Behavior:       particle.Confetti{},
		Batch:          lc.Batch,
		Fill:           !lc.Stroke,
	}

	width, height := float64(c.Width()), float64(c.Height())
	particles := make([]*particle.Particle, count)
	for i := range particles {
		particles[i] = particle.NewParticle(width, height, cfg)
	}
	slices.SortFunc(particles, func(a, b *particle.Particle) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	return &Layer{
		Name:      name,
		Config:    cfg,
		Particles: particles,
		Canvas:    c,
	}
}

// Layers returns the layers in paint order.
func (s *Scene) Layers() []*Layer {
	return []*Layer{s.Background, s.Foreground}
}

// Start runs one loop per layer, background first.
func (s *Scene) Start() {
	for _, l := range s.Layers() {
		l.Canvas.Start(l.Particles, l.Config)
	}
}

// Stop halts both loops. Particle state is kept for a later Start.
func (s *Scene) Stop() {
	for _, l := range s.Layers() {
		l.Canvas.Stop()
	}
}

// Running reports whether any layer is animating.
func (s *Scene) Running() bool {
	for _, l := range s.Layers() {
		if !l.Canvas.Halted() && l.Canvas.Frames() > 0 {
			return true
		}
	}
	return false
}

// Destroy stops both loops and releases their surfaces.
func (s *Scene) Destroy() {
	for _, l := range s.Layers() {
		l.Canvas.Destroy()
	}
}
