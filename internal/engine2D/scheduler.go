package engine2D

import (
	"context"
	"sync"
	"time"
)

// DefaultFrameInterval is the fallback frame period when no display drives
// the loop.
const DefaultFrameInterval = time.Second / 60

// FrameScheduler runs a callback once, before the next frame is presented.
type FrameScheduler interface {
	ScheduleFrame(fn func())
}

// FrameQueue collects scheduled frame callbacks until the host pumps them.
// The raylib loop calls Tick once per rendered frame; headless hosts use Run.
type FrameQueue struct {
	mu      sync.Mutex
	pending []func()
}

var _ FrameScheduler = (*FrameQueue)(nil)

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) ScheduleFrame(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Pending returns the number of callbacks waiting for the next tick.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Tick runs every callback queued before the call and returns how many ran.
// Callbacks scheduled while ticking wait for the next tick.
func (q *FrameQueue) Tick() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Run ticks the queue every interval until ctx is done or onFrame returns
// false. onFrame runs after each tick and may be nil.
func (q *FrameQueue) Run(ctx context.Context, interval time.Duration, onFrame func() bool) error {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			q.Tick()
			if onFrame != nil && !onFrame() {
				return nil
			}
		}
	}
}
