package events

// Filter returns a Source that forwards only occurrences for which keep
// returns true. The filter runs in the delivering goroutine, upstream of any
// handler; releasing a subscription obtained through the filtered source
// releases the underlying one.
func Filter[T any](src Source[T], keep func(T) bool) Source[T] {
	return &filteredSource[T]{src: src, keep: keep}
}

type filteredSource[T any] struct {
	src  Source[T]
	keep func(T) bool
}

func (f *filteredSource[T]) Subscribe(handler func(T)) *Subscription {
	return f.src.Subscribe(func(v T) {
		if f.keep(v) {
			handler(v)
		}
	})
}

// OfType narrows a broad source to occurrences of a concrete type, dropping
// everything else. It is a convenience for sources that publish heterogeneous
// values as any.
func OfType[T any](src Source[any]) Source[T] {
	return &typedSource[T]{src: src}
}

type typedSource[T any] struct {
	src Source[any]
}

func (t *typedSource[T]) Subscribe(handler func(T)) *Subscription {
	return t.src.Subscribe(func(v any) {
		if typed, ok := v.(T); ok {
			handler(typed)
		}
	})
}
