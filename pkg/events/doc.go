// Package events provides typed event sources with idempotently releasable subscriptions.
//
// The central contract is the Source interface: anything that accepts a handler and invokes it
// zero or more times with an occurrence value until the returned Subscription is released.
// Release is idempotent and safe to race with deliveries — an invocation already in flight is
// allowed to complete, but no new invocation begins after Release returns.
//
// Two implementations ship with the package:
//
//   - Emitter, an in-memory source that delivers occurrences synchronously, in emission order,
//     from the publishing goroutine.
//   - RedisSource, which adapts a Redis pub/sub channel into a Source, decoding payloads
//     (JSON by default) in a per-subscription receive goroutine.
//
// Filter and OfType compose on top of any Source to narrow the stream by predicate or by
// concrete type before handlers see it.
//
// Basic usage:
//
//	emitter := events.NewEmitter[int]()
//	defer emitter.Close()
//
//	sub := emitter.Subscribe(func(v int) {
//		fmt.Println("got", v)
//	})
//	defer sub.Release()
//
//	emitter.Emit(42)
//
// Handlers run on whichever goroutine delivers the occurrence, so they must be fast and must
// synchronize any shared state themselves. For the "resolve a future with the next matching
// occurrence" pattern, see the bridge package, which builds on these contracts.
package events
