package engine2D

import (
	"io"
	"sync"
	"sync/atomic"

	"linux-confetti/internal/engine2D/canvas"
	"linux-confetti/internal/engine2D/particle"
	"linux-confetti/internal/utils"
)

// ParticleCanvas drives one particle collection on one surface: every frame
// it clears the surface, lets the behavior draw and advance each particle, and
// schedules the next frame until stopped.
//
// Start and frame callbacks must run on the goroutine that pumps the
// scheduler. Stop may be called from anywhere.
type ParticleCanvas struct {
	surface   canvas.Surface
	container Container
	scheduler FrameScheduler

	mu  sync.Mutex
	sub *Subscription

	particles []*particle.Particle
	config    *particle.Config

	halted     atomic.Bool
	generation atomic.Uint64
	frames     atomic.Uint64
}

// NewParticleCanvas wraps surface. A non-nil container sizes the surface
// immediately; if it is a ResizeSource the canvas follows its size until Stop.
func NewParticleCanvas(surface canvas.Surface, container Container, scheduler FrameScheduler) *ParticleCanvas {
	c := &ParticleCanvas{
		surface:   surface,
		container: container,
		scheduler: scheduler,
	}
	if container != nil {
		c.ResizeToContainer()
		c.subscribe()
	}
	return c
}

func (c *ParticleCanvas) subscribe() {
	src, ok := c.container.(ResizeSource)
	if !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sub != nil {
		return
	}
	c.sub = src.Subscribe(func(width, height int) {
		c.SetSize(width, height)
	})
}

func (c *ParticleCanvas) subscribed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sub != nil
}

func (c *ParticleCanvas) unsubscribe() {
	c.mu.Lock()
	sub := c.sub
	c.sub = nil
	c.mu.Unlock()
	sub.Close()
}

// Surface returns the wrapped surface.
func (c *ParticleCanvas) Surface() canvas.Surface { return c.surface }

// Particles returns the collection bound by the last Start.
func (c *ParticleCanvas) Particles() []*particle.Particle { return c.particles }

// Config returns the layer config bound by the last Start.
func (c *ParticleCanvas) Config() *particle.Config { return c.config }

func (c *ParticleCanvas) Width() int  { return c.surface.Width() }
func (c *ParticleCanvas) Height() int { return c.surface.Height() }

func (c *ParticleCanvas) Size() (int, int) {
	return c.surface.Width(), c.surface.Height()
}

// SetSize resizes the surface. Non-positive dimensions are logged and ignored.
func (c *ParticleCanvas) SetSize(width, height int) *ParticleCanvas {
	if width <= 0 || height <= 0 {
		utils.Error("Invalid canvas size %dx%d, keeping %dx%d", width, height, c.Width(), c.Height())
		return c
	}
	if width == c.Width() && height == c.Height() {
		return c
	}
	if err := c.surface.Resize(width, height); err != nil {
		utils.Error("Failed to resize canvas to %dx%d: %v", width, height, err)
		return c
	}
	utils.Debug("Canvas resized to %dx%d", width, height)
	return c
}

// ResizeToContainer matches the container size, if there is a container.
func (c *ParticleCanvas) ResizeToContainer() *ParticleCanvas {
	if c.container == nil {
		return c
	}
	return c.SetSize(c.container.Size())
}

// Frames returns the number of frames rendered so far.
func (c *ParticleCanvas) Frames() uint64 { return c.frames.Load() }

// Halted reports whether Stop was called after the last Start.
func (c *ParticleCanvas) Halted() bool { return c.halted.Load() }

// Start binds particles and cfg and renders the first frame synchronously.
// Calling Start again replaces the running loop instead of adding a second
// one.
func (c *ParticleCanvas) Start(particles []*particle.Particle, cfg *particle.Config) {
	c.particles = particles
	c.config = cfg
	c.halted.Store(false)
	gen := c.generation.Add(1)

	if c.container != nil && !c.subscribed() {
		// Resizes made while stopped were not delivered.
		c.ResizeToContainer()
		c.subscribe()
	}
	c.frame(gen)
}

// Stop halts the loop before its next frame and drops the container
// subscription. Particle state is kept.
func (c *ParticleCanvas) Stop() {
	c.halted.Store(true)
	c.unsubscribe()
}

// Destroy stops the loop and releases the surface when it holds resources.
func (c *ParticleCanvas) Destroy() {
	c.Stop()
	if closer, ok := c.surface.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			utils.Warn("Failed to release canvas surface: %v", err)
		}
	}
}

func (c *ParticleCanvas) frame(gen uint64) {
	if c.halted.Load() || c.generation.Load() != gen {
		return
	}

	s := c.surface
	cfg := c.config

	framer, isFramer := s.(canvas.Framer)
	if isFramer {
		framer.BeginFrame()
	}

	s.SetTransform(canvas.Identity())
	s.Clear()

	if u, ok := cfg.Behavior.(particle.StateUpdater); ok {
		u.UpdateState(cfg)
	}

	if cfg.Batch {
		s.BeginPath()
	}
	for _, p := range c.particles {
		cfg.Behavior.Draw(p, s, cfg)
		cfg.Behavior.Update(p, s, cfg)
	}
	if cfg.Batch {
		c.paintPath(cfg)
	}

	if isFramer {
		framer.EndFrame()
	}
	c.frames.Add(1)

	c.scheduler.ScheduleFrame(func() { c.frame(gen) })
}

func (c *ParticleCanvas) paintPath(cfg *particle.Config) {
	var err error
	if cfg.Fill {
		err = c.surface.Fill()
	} else {
		err = c.surface.Stroke()
	}
	if err != nil {
		utils.Warn("Failed to paint %s particle path: %v", cfg.Name, err)
	}
}
