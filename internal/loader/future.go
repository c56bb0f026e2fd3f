// Package loader runs startup work in the background and lets callers wait
// for it with a deadline.
package loader

import (
	"context"
	"errors"
	"time"
)

// ErrDeadline is returned when a wait outlives its deadline.
var ErrDeadline = errors.New("loader deadline exceeded")

// Future is the eventual result of a background load.
type Future[T any] struct {
	done   chan struct{}
	cancel context.CancelFunc
	val    T
	err    error
}

// Start runs fn in its own goroutine with a cancellable child of ctx.
func Start[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	ctx, cancel := context.WithCancel(ctx)
	f := &Future[T]{done: make(chan struct{}), cancel: cancel}
	go func() {
		defer close(f.done)
		defer cancel()
		f.val, f.err = fn(ctx)
	}()
	return f
}

// Done is closed once the load has finished.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Cancel cancels the load's context. fn decides how quickly it stops.
func (f *Future[T]) Cancel() {
	f.cancel()
}

// Await blocks until the load finishes or ctx ends.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitDeadline blocks for at most d. On timeout it cancels the load and
// returns ErrDeadline.
func (f *Future[T]) AwaitDeadline(d time.Duration) (T, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-f.done:
		return f.val, f.err
	case <-timer.C:
		f.cancel()
		var zero T
		return zero, ErrDeadline
	}
}
