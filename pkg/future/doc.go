// Package future provides a generic, single-assignment asynchronous result.
//
// The package is centred around the generic type Future that represents a value which will be
// settled exactly once.  A Future is created pending via New and reaches one of three terminal
// states: resolved with a value (Resolve), canceled (Cancel), or failed with an error (Fail).
// The transition is first-writer-wins: the three settlement methods may be raced from any number
// of goroutines, exactly one of them performs the transition and returns true, and every later
// attempt is a silent no-op returning false.  Racing settlements are expected under normal
// operation and are never surfaced as errors.
//
// Callers observe settlement in several ways: Await blocks until settlement or context
// cancellation, AwaitWithTimeout bounds the wait with a duration, Done exposes a channel for use
// in select statements, Peek and IsComplete inspect the state without blocking, and OnSettle
// registers a continuation that runs exactly once when the future settles.
//
// # Usage
//
//	import (
//	    "context"
//	    "github.com/dmitrymomot/eventbridge/pkg/future"
//	)
//
//	func main() {
//	    fut := future.New[int]()
//
//	    go func() {
//	        fut.Resolve(42)
//	    }()
//
//	    v, err := fut.Await(context.Background())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(v)
//	}
//
// # Error Handling
//
// Cancellation is a distinct terminal state, not a failure: a canceled future reports the
// sentinel ErrCanceled, which callers distinguish with errors.Is.  A failed future carries the
// error passed to Fail.  Abandoning an Await through its context does not settle the future and
// does not affect other waiters.
//
// The package performs no logging and never calls back into the code that settles it beyond the
// continuations registered with OnSettle.
package future
