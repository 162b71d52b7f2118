// Package content adapts one-shot content fetches into render state.
package content

import (
	"context"
	"fmt"
	"sync"

	"github.com/sourcegraph/conc/panics"
)

// Fetcher loads a full content list.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// State is the complete surface a page reads: Data, Loading and Error.
type State[T any] struct {
	Data    []T
	Loading bool
	Error   string
}

// Failed reports whether the fetch ended in error.
func (s State[T]) Failed() bool {
	return s.Error != ""
}

// Resource runs its fetch exactly once, on Start. Close cancels an in-flight
// fetch and freezes the state; a result arriving after Close is dropped.
type Resource[T any] struct {
	fetch Fetcher[T]

	mu      sync.Mutex
	state   State[T]
	err     error
	started bool
	closed  bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewResource[T any](fetch Fetcher[T]) *Resource[T] {
	return &Resource[T]{
		fetch: fetch,
		state: State[T]{Data: []T{}},
		done:  make(chan struct{}),
	}
}

// Start moves the resource to loading and fetches in the background. The
// fetch is bound to ctx and to the resource's own lifetime.
func (r *Resource[T]) Start(ctx context.Context) {
	r.mu.Lock()
	if r.started || r.closed {
		r.mu.Unlock()
		return
	}
	r.started = true
	fetchCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.state = State[T]{Data: []T{}, Loading: true}
	r.mu.Unlock()

	go r.run(fetchCtx)
}

func (r *Resource[T]) run(ctx context.Context) {
	defer close(r.done)

	var (
		data []T
		err  error
		pc   panics.Catcher
	)
	pc.Try(func() {
		data, err = r.fetch(ctx)
	})
	if rec := pc.Recovered(); rec != nil {
		err = fmt.Errorf("fetch panicked: %v", rec.Value)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if err != nil {
		r.err = err
		r.state = State[T]{Data: []T{}, Error: err.Error()}
		return
	}
	if data == nil {
		data = []T{}
	}
	r.state = State[T]{Data: data}
}

func (r *Resource[T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Err returns the error behind a failed state, keeping its type.
func (r *Resource[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Wait blocks until the fetch settles or ctx is done, then returns the state.
// A resource that was never started returns immediately.
func (r *Resource[T]) Wait(ctx context.Context) (State[T], error) {
	r.mu.Lock()
	started := r.started
	r.mu.Unlock()
	if !started {
		return r.State(), nil
	}

	select {
	case <-r.done:
		return r.State(), nil
	case <-ctx.Done():
		return r.State(), ctx.Err()
	}
}

// Close disposes of the resource. It is safe to call more than once.
func (r *Resource[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	if r.cancel != nil {
		r.cancel()
	}
}
