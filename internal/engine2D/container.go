package engine2D

import (
	"sync"
)

// Container supplies the size a canvas should match.
type Container interface {
	Size() (width, height int)
}

// ResizeSource is a Container that reports later size changes.
type ResizeSource interface {
	Container
	Subscribe(fn func(width, height int)) *Subscription
}

// FixedSize is a Container that never changes.
type FixedSize struct {
	Width, Height int
}

func (f FixedSize) Size() (int, int) { return f.Width, f.Height }

// Subscription cancels a resize listener. Close is idempotent and safe on a
// nil receiver.
type Subscription struct {
	once   sync.Once
	cancel func()
}

func NewSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

func (s *Subscription) Close() {
	if s == nil || s.cancel == nil {
		return
	}
	s.once.Do(s.cancel)
}

// ResizeBroadcaster is a ResizeSource fed by the host, e.g. from
// rl.IsWindowResized.
type ResizeBroadcaster struct {
	mu            sync.Mutex
	width, height int
	nextID        int
	listeners     map[int]func(width, height int)
}

var _ ResizeSource = (*ResizeBroadcaster)(nil)

func NewResizeBroadcaster(width, height int) *ResizeBroadcaster {
	return &ResizeBroadcaster{
		width:     width,
		height:    height,
		listeners: make(map[int]func(int, int)),
	}
}

func (b *ResizeBroadcaster) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *ResizeBroadcaster) Subscribe(fn func(width, height int)) *Subscription {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	return NewSubscription(func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	})
}

// Listeners returns the number of live subscriptions.
func (b *ResizeBroadcaster) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

// Notify records the new size and calls every listener. Unchanged sizes are
// ignored.
func (b *ResizeBroadcaster) Notify(width, height int) {
	b.mu.Lock()
	if width == b.width && height == b.height {
		b.mu.Unlock()
		return
	}
	b.width, b.height = width, height
	fns := make([]func(int, int), 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(width, height)
	}
}
