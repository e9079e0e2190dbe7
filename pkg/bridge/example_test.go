package bridge_test

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrymomot/eventbridge/pkg/bridge"
	"github.com/dmitrymomot/eventbridge/pkg/events"
)

func ExampleFirst() {
	emitter := events.NewEmitter[int]()
	defer emitter.Close()

	fut := bridge.First[int](context.Background(), emitter, func(v int) (bool, error) {
		return v > 1, nil
	})

	emitter.Emit(1)
	emitter.Emit(2)
	emitter.Emit(3)

	v, err := fut.Await(context.Background())
	fmt.Println(v, err)
	// Output: 2 <nil>
}

func ExampleFirst_cancellation() {
	emitter := events.NewEmitter[string]()
	defer emitter.Close()

	ctx, cancel := context.WithCancel(context.Background())
	fut := bridge.First[string](ctx, emitter, func(string) (bool, error) {
		return false, nil
	})

	cancel()

	_, err := fut.Await(context.Background())
	fmt.Println(err)
	// Output: future: future was canceled
}

func ExampleFirstAsync() {
	emitter := events.NewEmitter[int]()
	defer emitter.Close()

	fut := bridge.FirstAsync[int](context.Background(), emitter, func(_ context.Context, v int) (bool, error) {
		if v == 5 {
			time.Sleep(50 * time.Millisecond) // slow evaluation, rejects anyway
		}
		return v >= 10, nil
	})

	emitter.Emit(5)
	emitter.Emit(10)

	v, err := fut.Await(context.Background())
	fmt.Println(v, err)
	// Output: 10 <nil>
}
