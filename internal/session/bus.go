package session

import "sync"

// Bus broadcasts session writes to every subscriber. It generalizes
// the browser's cross-tab storage event: any observer's write becomes
// visible to all others without polling. There is no locking across
// observers; the credential store stays the single source of truth
// and the last write wins.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]func(*AuthUser)
}

// NewBus creates an empty broadcast bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(*AuthUser))}
}

// Subscribe registers a handler for session writes and returns an
// unsubscribe function. Handlers run synchronously on the publishing
// goroutine and must not publish from within themselves.
func (b *Bus) Subscribe(fn func(*AuthUser)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	b.subs[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish delivers a write to every subscriber. A nil user signals
// that the session was cleared.
func (b *Bus) Publish(user *AuthUser) {
	b.mu.Lock()
	fns := make([]func(*AuthUser), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(user)
	}
}
