// Package app holds the application services and business logic.
package app

import "sync"

// ChangeBus is an observer registry for collection-changed events. It is an
// explicit object rather than package state so independent stores can carry
// independent listener sets.
type ChangeBus struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

// NewChangeBus creates an empty bus.
func NewChangeBus() *ChangeBus {
	return &ChangeBus{subs: make(map[int]func())}
}

// Subscribe registers fn and returns its deregistration handle. The handle is
// safe to call more than once.
func (b *ChangeBus) Subscribe(fn func()) (unsubscribe func()) {
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

// Notify invokes every subscribed callback. Callbacks run outside the bus
// lock so they may subscribe or unsubscribe.
func (b *ChangeBus) Notify() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
