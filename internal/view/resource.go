// Package view holds the per-resource view-state controllers behind the
// dashboard. Each controller owns one slice of server data together with
// its loading/error state and a Refetch operation; nothing here is a
// process-wide store — every controller lives inside an explicit Session.
package view

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/jdvalencia/fondos-dashboard-go/internal/infra/observability"
)

// Snapshot is a point-in-time copy of a resource's state.
type Snapshot[T any] struct {
	Data    T
	Loading bool
	Err     string
}

// Resource is a view-state container for one fetched resource.
//
// State machine: it starts loading, and every Refetch re-enters loading
// and ends in success (data replaced, error cleared) or error (display
// message set, previous data kept unless a fallback is configured).
//
// Overlapping refetches are fenced by a monotonic sequence number: a fetch
// that is no longer the latest one started has its completion discarded,
// so a slow stale response can never overwrite fresher state.
type Resource[T any] struct {
	mu      sync.Mutex
	name    string
	fetch   func(ctx context.Context) (T, error)
	errMsg  string // display fallback when the error carries no message
	onError func() (T, bool)

	data    T
	loading bool
	err     string
	seq     uint64

	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewResource creates a resource in its initial loading state.
// errMsg is the display message used when a failure carries no
// server-provided message.
func NewResource[T any](name, errMsg string, fetch func(ctx context.Context) (T, error), metrics *observability.Metrics, logger *zap.Logger) *Resource[T] {
	return &Resource[T]{
		name:    name,
		fetch:   fetch,
		errMsg:  errMsg,
		loading: true,
		metrics: metrics,
		logger:  logger,
	}
}

// WithFallback configures a degraded-mode snapshot: on fetch failure the
// data is replaced by the fallback instead of keeping its previous value.
func (r *Resource[T]) WithFallback(fn func() (T, bool)) *Resource[T] {
	r.onError = fn
	return r
}

// Refetch runs the fetch cycle: enter loading, call the fetch function,
// then apply the result unless a newer refetch has started since.
func (r *Resource[T]) Refetch(ctx context.Context) {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	r.loading = true
	r.mu.Unlock()

	r.metrics.IncrRefetch(r.name)

	data, err := r.fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if seq != r.seq {
		// A newer refetch started while this one was in flight; its
		// completion owns the state.
		r.logger.Debug("stale fetch discarded", zap.String("view", r.name))
		return
	}

	r.loading = false
	if err != nil {
		r.logger.Error("fetch failed",
			zap.String("view", r.name),
			zap.Error(err),
		)
		r.err = Message(err, r.errMsg)
		if r.onError != nil {
			if fallback, ok := r.onError(); ok {
				r.data = fallback
			}
		}
		return
	}

	r.data = data
	r.err = ""
}

// Replace installs a server-confirmed value directly, bypassing a fetch.
// Used after mutations whose response already carries the fresh entity.
func (r *Resource[T]) Replace(data T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.data = data
	r.loading = false
	r.err = ""
}

// Snapshot returns a copy of the current state.
func (r *Resource[T]) Snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot[T]{Data: r.data, Loading: r.loading, Err: r.err}
}
