package dialog

import (
	"context"
	"sync"
)

// Future is the read-only side of a dialog result. It is settled exactly
// once, by the Controller that created it.
type Future[T any] struct {
	mu       sync.Mutex
	done     chan struct{}
	value    T
	settled  bool
	handlers []func(T)
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func resolvedFuture[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.resolve(v)
	return f
}

// resolve settles the future. Later calls are ignored and report false.
func (f *Future[T]) resolve(v T) bool {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()
		return false
	}
	f.value = v
	f.settled = true
	handlers := f.handlers
	f.handlers = nil
	close(f.done)
	f.mu.Unlock()

	for _, h := range handlers {
		h(v)
	}
	return true
}

// onResolve runs fn with the value once the future settles, immediately if
// it already has.
func (f *Future[T]) onResolve(fn func(T)) {
	f.mu.Lock()
	if f.settled {
		v := f.value
		f.mu.Unlock()
		fn(v)
		return
	}
	f.handlers = append(f.handlers, fn)
	f.mu.Unlock()
}

// Done is closed when the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Result returns the value and true if the future has settled.
func (f *Future[T]) Result() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.settled
}

// Wait blocks until the future settles or ctx is done.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		v, _ := f.Result()
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// mapFuture derives a future whose value is fn applied to f's value.
func mapFuture[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	out := newFuture[U]()
	f.onResolve(func(v T) {
		out.resolve(fn(v))
	})
	return out
}
