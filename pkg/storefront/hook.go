package storefront

import (
	"context"
	"sync"
)

// Fetch produces a hook result. It must honour ctx: a superseded load is cancelled.
type Fetch[T any] func(ctx context.Context) (T, error)

// Hook holds the loading/result/error triple of one data source. Each Load starts a new
// generation and cancels the one before it; only the latest generation may commit.
type Hook[T any] struct {
	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	done    chan struct{}
	fetch   Fetch[T]
	loading bool
	result  *T
	err     string
}

func NewHook[T any]() *Hook[T] {
	done := make(chan struct{})
	close(done)
	return &Hook[T]{done: done}
}

// Use creates a hook and starts loading it right away.
func Use[T any](ctx context.Context, fetch Fetch[T]) *Hook[T] {
	h := NewHook[T]()
	h.Load(ctx, fetch)
	return h
}

// State returns a snapshot. The result is nil while loading and after any failure.
func (h *Hook[T]) State() (loading bool, result *T, errMsg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loading, h.result, h.err
}

// Load replaces the data source and fetches it in the background.
func (h *Hook[T]) Load(ctx context.Context, fetch Fetch[T]) {
	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
	}
	h.gen++
	gen := h.gen
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	h.cancel = cancel
	h.done = done
	h.fetch = fetch
	h.loading = true
	h.result = nil
	h.err = ""
	h.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		res, err := fetch(runCtx)

		h.mu.Lock()
		defer h.mu.Unlock()
		if gen != h.gen {
			return
		}
		h.loading = false
		if err != nil {
			h.result = nil
			h.err = err.Error()
			return
		}
		h.result = &res
		h.err = ""
	}()
}

// Refetch runs the last data source again.
func (h *Hook[T]) Refetch(ctx context.Context) {
	h.mu.Lock()
	fetch := h.fetch
	h.mu.Unlock()
	if fetch != nil {
		h.Load(ctx, fetch)
	}
}

// Wait blocks until the latest generation settles or ctx is done.
func (h *Hook[T]) Wait(ctx context.Context) error {
	for {
		h.mu.Lock()
		gen, done := h.gen, h.done
		h.mu.Unlock()

		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}

		h.mu.Lock()
		current := h.gen == gen
		h.mu.Unlock()
		if current {
			return nil
		}
	}
}

// Close cancels any load in flight and drops its outcome.
func (h *Hook[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.gen++
	if h.cancel != nil {
		h.cancel()
	}
}
