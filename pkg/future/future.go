package future

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const (
	statePending uint32 = iota
	stateResolved
	stateCanceled
	stateFailed
)

// Future is a single-assignment asynchronous result. It starts pending and
// reaches exactly one terminal state: resolved with a value, canceled, or
// failed with an error. Settlement attempts are first-writer-wins; losing
// attempts are silent no-ops. All methods are safe for concurrent use.
type Future[T any] struct {
	state atomic.Uint32
	value T
	err   error
	done  chan struct{}

	mu        sync.Mutex
	callbacks []func(T, error)
}

// New creates a pending Future.
func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolve attempts to settle the future with a value.
// Returns true iff this call performed the pending-to-terminal transition.
func (f *Future[T]) Resolve(value T) bool {
	return f.settle(stateResolved, value, nil)
}

// Cancel attempts to settle the future as canceled. Waiters observe
// ErrCanceled. Returns true iff this call performed the transition.
func (f *Future[T]) Cancel() bool {
	var zero T
	return f.settle(stateCanceled, zero, ErrCanceled)
}

// Fail attempts to settle the future with an error. A nil err is recorded as
// ErrNilFailure so a failed future never reports success.
// Returns true iff this call performed the transition.
func (f *Future[T]) Fail(err error) bool {
	if err == nil {
		err = ErrNilFailure
	}
	var zero T
	return f.settle(stateFailed, zero, err)
}

func (f *Future[T]) settle(next uint32, value T, err error) bool {
	if !f.state.CompareAndSwap(statePending, next) {
		return false
	}

	// The CAS above is the only gate to these fields; waiters read them only
	// after the done channel is closed.
	f.value = value
	f.err = err
	close(f.done)

	f.mu.Lock()
	callbacks := f.callbacks
	f.callbacks = nil
	f.mu.Unlock()

	for _, fn := range callbacks {
		fn(value, err)
	}
	return true
}

// Done returns a channel that is closed once the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx is done. A ctx error abandons
// the wait without settling the future; other waiters are unaffected.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout blocks until the future settles or the timeout elapses.
// On timeout it returns ErrTimeout; the future itself stays pending.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.value, f.err
	case <-timer.C:
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the future has settled, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Peek returns the settlement without blocking. The third return value is
// false while the future is still pending.
func (f *Future[T]) Peek() (T, error, bool) {
	select {
	case <-f.done:
		return f.value, f.err, true
	default:
		var zero T
		return zero, nil, false
	}
}

// OnSettle registers a continuation invoked exactly once with the settlement.
// If the future has already settled, fn runs synchronously in the caller's
// goroutine; otherwise it runs in the goroutine that settles the future.
func (f *Future[T]) OnSettle(fn func(value T, err error)) {
	f.mu.Lock()
	if !f.IsComplete() {
		f.callbacks = append(f.callbacks, fn)
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()
	fn(f.value, f.err)
}
