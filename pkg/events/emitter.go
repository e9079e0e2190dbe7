package events

import (
	"sync"

	"github.com/google/uuid"
)

type registration[T any] struct {
	sub     *Subscription
	handler func(T)
}

// Emitter is an in-memory Source that delivers every emitted occurrence to all
// active subscribers, synchronously and in emission order from the publishing
// goroutine. All methods are safe for concurrent use.
type Emitter[T any] struct {
	mu       sync.RWMutex
	handlers map[string]*registration[T]
	closed   bool
}

// NewEmitter creates an empty in-memory event source.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{
		handlers: make(map[string]*registration[T]),
	}
}

// Subscribe registers a handler for every subsequent Emit. If the emitter is
// already closed, it returns an already-released subscription.
func (e *Emitter[T]) Subscribe(handler func(T)) *Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := uuid.NewString()
	if e.closed {
		return newReleasedSubscription(id)
	}

	sub := newSubscription(id, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.handlers, id)
	})
	e.handlers[id] = &registration[T]{sub: sub, handler: handler}
	return sub
}

// Emit delivers the occurrence to all active subscribers from the caller's
// goroutine. Handlers released between the snapshot and delivery are skipped
// via the released flag, so no new invocation starts after Release returns.
// Handlers may call Release or Subscribe on this emitter; no lock is held
// while they run.
func (e *Emitter[T]) Emit(value T) {
	e.mu.RLock()
	regs := make([]*registration[T], 0, len(e.handlers))
	for _, reg := range e.handlers {
		regs = append(regs, reg)
	}
	e.mu.RUnlock()

	for _, reg := range regs {
		if reg.sub.Released() {
			continue
		}
		reg.handler(value)
	}
}

// SubscriberCount returns the number of active subscriptions.
func (e *Emitter[T]) SubscriberCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.handlers)
}

// Close releases every subscription and makes the emitter reject new ones.
// It is safe to call multiple times.
func (e *Emitter[T]) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	regs := make([]*registration[T], 0, len(e.handlers))
	for _, reg := range e.handlers {
		regs = append(regs, reg)
	}
	clear(e.handlers)
	e.mu.Unlock()

	for _, reg := range regs {
		reg.sub.Release()
	}
}
