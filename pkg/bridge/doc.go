// Package bridge turns a multi-fire event source into a single-settlement future: the next
// occurrence accepted by a predicate.
//
// First evaluates the predicate synchronously in the delivering goroutine; FirstAsync starts an
// evaluation goroutine per occurrence and keeps the subscription live while evaluations are in
// flight, so the occurrence whose evaluation finishes first wins, not necessarily the one
// emitted first. In both variants the winning path releases the subscription before settling
// the future, so no further handler activity is observable after settlement.
//
// Cancellation is cooperative and context-based. The context passed to First or FirstAsync is
// the cancellation token: cancel it and the subscription is released and the future settles
// canceled (future.ErrCanceled). Acceptance and cancellation may fire concurrently from
// different goroutines; the future's first-writer-wins settlement decides which one the caller
// observes, and the subscription release on both paths is idempotent, so the race is safe by
// construction. Compose timeouts with context.WithTimeout — the bridge imposes none of its own,
// and with a background context a never-accepting predicate leaves the future pending forever.
//
// A predicate error (returned by the synchronous predicate, or by an asynchronous evaluation)
// releases the subscription and fails the future with that error; the subscription is never
// left dangling.
//
// # Usage
//
//	emitter := events.NewEmitter[int]()
//	defer emitter.Close()
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
//	defer cancel()
//
//	fut := bridge.First(ctx, emitter, func(v int) (bool, error) {
//	    return v > 1, nil
//	})
//
//	go func() {
//	    for _, v := range []int{1, 2, 3} {
//	        emitter.Emit(v)
//	    }
//	}()
//
//	v, err := fut.Await(ctx) // v == 2
//
// The package performs no logging and no retries; every outcome, including predicate failure,
// reaches the caller through the returned future.
package bridge
