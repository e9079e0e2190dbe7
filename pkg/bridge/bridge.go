package bridge

import (
	"context"
	"sync"

	"github.com/dmitrymomot/eventbridge/pkg/events"
	"github.com/dmitrymomot/eventbridge/pkg/future"
)

// releaser defers subscription teardown until the handle exists. The handler
// closure is constructed before Subscribe returns the handle, so it releases
// through this slot; a release requested before bind lands as soon as the
// handle is bound.
type releaser struct {
	mu      sync.Mutex
	sub     *events.Subscription
	pending bool
}

func (r *releaser) bind(sub *events.Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sub = sub
	if r.pending {
		sub.Release()
	}
}

func (r *releaser) release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sub == nil {
		r.pending = true
		return
	}
	r.sub.Release()
}

// First subscribes to src and returns a future that resolves with the first
// occurrence the predicate accepts. The predicate runs synchronously in the
// delivering goroutine; on accept the subscription is released before the
// future resolves, and on predicate error it is released before the future
// fails. A rejecting occurrence leaves the subscription active.
//
// ctx is the cancellation token: if it is already canceled the future settles
// canceled without subscribing or evaluating the predicate; if it is canceled
// later, the subscription is released and the future settles canceled unless
// an acceptance won the race first. With context.Background() the future may
// stay pending forever; bounding the wait is the caller's concern.
func First[T any](ctx context.Context, src events.Source[T], match func(T) (bool, error)) *future.Future[T] {
	fut := future.New[T]()
	if ctx.Err() != nil {
		fut.Cancel()
		return fut
	}

	rel := &releaser{}
	sub := src.Subscribe(func(v T) {
		ok, err := match(v)
		switch {
		case err != nil:
			rel.release()
			fut.Fail(err)
		case ok:
			rel.release()
			fut.Resolve(v)
		}
	})
	rel.bind(sub)

	stop := context.AfterFunc(ctx, func() {
		rel.release()
		fut.Cancel()
	})
	fut.OnSettle(func(_ T, _ error) { stop() })

	return fut
}

// FirstAsync is First with an asynchronous predicate: each occurrence starts
// its evaluation in its own goroutine, and the subscription keeps delivering
// while evaluations are in flight. The first evaluation to complete with an
// accept (or an error) settles the future; evaluations completing later are
// no-ops against the already-settled future, regardless of emission order.
//
// The predicate receives a context derived from ctx that is canceled once the
// future settles, so in-flight evaluations can abort early. Cancellation of
// ctx takes effect immediately even while evaluations are pending.
func FirstAsync[T any](ctx context.Context, src events.Source[T], match func(context.Context, T) (bool, error)) *future.Future[T] {
	fut := future.New[T]()
	if ctx.Err() != nil {
		fut.Cancel()
		return fut
	}

	evalCtx, cancelEval := context.WithCancel(ctx)
	rel := &releaser{}
	sub := src.Subscribe(func(v T) {
		go func() {
			ok, err := match(evalCtx, v)
			switch {
			case err != nil:
				rel.release()
				fut.Fail(err)
			case ok:
				rel.release()
				fut.Resolve(v)
			}
		}()
	})
	rel.bind(sub)

	stop := context.AfterFunc(ctx, func() {
		rel.release()
		fut.Cancel()
	})
	fut.OnSettle(func(_ T, _ error) {
		stop()
		cancelEval()
	})

	return fut
}

// FirstValue resolves with the first occurrence equal to want.
func FirstValue[T comparable](ctx context.Context, src events.Source[T], want T) *future.Future[T] {
	return First(ctx, src, func(v T) (bool, error) {
		return v == want, nil
	})
}
