package events

import (
	"sync"
	"sync/atomic"
)

// Source delivers zero or more typed occurrences to registered handlers.
// Implementations must be safe for concurrent use. A handler may be invoked
// from any goroutine until its subscription is released.
type Source[T any] interface {
	// Subscribe registers a handler and returns the subscription handle that
	// detaches it. Handlers must not block for long: emitters may deliver
	// occurrences synchronously from the publishing goroutine.
	Subscribe(handler func(T)) *Subscription
}

// Subscription links a registered handler to its source. Releasing it
// guarantees no new handler invocation begins afterwards; an invocation
// already in flight is allowed to complete.
type Subscription struct {
	id       string
	released atomic.Bool
	once     sync.Once
	detach   func()
}

func newSubscription(id string, detach func()) *Subscription {
	return &Subscription{id: id, detach: detach}
}

// newReleasedSubscription returns a handle that is already released, used by
// closed sources so Subscribe never returns nil.
func newReleasedSubscription(id string) *Subscription {
	s := &Subscription{id: id}
	s.Release()
	return s
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Released reports whether Release has been called.
func (s *Subscription) Released() bool {
	return s.released.Load()
}

// Release detaches the handler from its source. It is idempotent: calling it
// multiple times, or concurrently, performs the teardown once and never
// returns an error state. After Release returns, the released flag is visible
// to publishers and no new handler invocation starts.
func (s *Subscription) Release() {
	s.once.Do(func() {
		s.released.Store(true)
		if s.detach != nil {
			s.detach()
		}
	})
}
