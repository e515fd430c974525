// Package syncer keeps polled, in-memory copies of backend collections.
//
// Each Resource fetches once on Start, then re-pulls the full list on a fixed
// interval for as long as its context lives. A failed refresh keeps the last
// good list and records the error; a refresh whose context was cancelled never
// touches state. Every fetch is tagged with a generation number and only a
// result newer than the last applied one is kept.
package syncer

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shenikar/drishti/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// Refresh outcomes, used as metric labels.
const (
	outcomeOK        = "ok"
	outcomeError     = "error"
	outcomeStale     = "stale"
	outcomeCancelled = "cancelled"
	outcomeSkipped   = "skipped"
)

// State is a point-in-time copy of a resource.
type State[T any] struct {
	Data       []T       `json:"data"`
	Loading    bool      `json:"loading"`
	Refreshing bool      `json:"refreshing"`
	Error      string    `json:"error,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FetchFunc pulls the full collection.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// KeyFunc returns the record id used by local upserts and removals.
type KeyFunc[T any] func(T) string

type Resource[T any] struct {
	name     string
	fetch    FetchFunc[T]
	key      KeyFunc[T]
	interval time.Duration
	logger   *logrus.Logger
	now      func() time.Time

	mu        sync.RWMutex
	state     State[T]
	loaded    bool
	issued    uint64 // последнее выданное поколение
	dataGen   uint64 // поколение, чьи данные сейчас в state
	errGen    uint64 // поколение, чья ошибка сейчас в state
	inFlight  atomic.Int32
	onApplied []func([]T)

	lifecycle sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewResource[T any](name string, fetch FetchFunc[T], key KeyFunc[T], interval time.Duration, logger *logrus.Logger) *Resource[T] {
	return &Resource[T]{
		name:     name,
		fetch:    fetch,
		key:      key,
		interval: interval,
		logger:   logger,
		now:      time.Now,
		state:    State[T]{Data: []T{}},
	}
}

func (r *Resource[T]) Name() string {
	return r.name
}

// OnApplied registers a callback run after every successful refresh or local
// write, with a copy of the new list.
func (r *Resource[T]) OnApplied(fn func([]T)) {
	r.mu.Lock()
	r.onApplied = append(r.onApplied, fn)
	r.mu.Unlock()
}

// State returns a copy of the current state.
func (r *Resource[T]) State() State[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st := r.state
	st.Data = append([]T(nil), r.state.Data...)
	if st.Data == nil {
		st.Data = []T{}
	}
	return st
}

// Data returns a copy of the cached list.
func (r *Resource[T]) Data() []T {
	return r.State().Data
}

// InFlight reports whether a fetch is running.
func (r *Resource[T]) InFlight() bool {
	return r.inFlight.Load() > 0
}

// Refresh re-pulls the whole list. The returned error is the fetch error, or
// ctx.Err() when the call was cancelled; a stale result returns nil.
func (r *Resource[T]) Refresh(ctx context.Context) error {
	gen := r.begin()
	data, err := r.fetch(ctx)
	return r.finish(ctx, gen, data, err)
}

func (r *Resource[T]) begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.issued++
	r.inFlight.Add(1)
	if r.loaded {
		r.state.Refreshing = true
	} else {
		r.state.Loading = true
	}
	return r.issued
}

func (r *Resource[T]) finish(ctx context.Context, gen uint64, data []T, fetchErr error) error {
	log := r.logger.WithFields(logrus.Fields{
		"resource":   r.name,
		"generation": gen,
	})

	r.mu.Lock()
	if r.inFlight.Add(-1) == 0 {
		r.state.Loading = false
		r.state.Refreshing = false
	}

	if ctx.Err() != nil || errors.Is(fetchErr, context.Canceled) {
		r.mu.Unlock()
		metrics.IncSyncRefresh(r.name, outcomeCancelled)
		log.Debug("Refresh cancelled, state untouched")
		if fetchErr != nil {
			return fetchErr
		}
		return ctx.Err()
	}

	if fetchErr != nil {
		if gen > r.dataGen && gen > r.errGen {
			r.state.Error = fetchErr.Error()
			r.errGen = gen
		}
		r.mu.Unlock()
		metrics.IncSyncRefresh(r.name, outcomeError)
		log.WithError(fetchErr).Warn("Refresh failed, keeping last good data")
		return fetchErr
	}

	if gen <= r.dataGen {
		r.mu.Unlock()
		metrics.IncSyncRefresh(r.name, outcomeStale)
		log.Debug("Discarding stale refresh result")
		return nil
	}

	if data == nil {
		data = []T{}
	}
	r.state.Data = data
	r.state.UpdatedAt = r.now()
	r.dataGen = gen
	if gen >= r.errGen {
		r.state.Error = ""
	}
	r.loaded = true
	snapshot, callbacks := r.snapshotLocked()
	r.mu.Unlock()

	metrics.IncSyncRefresh(r.name, outcomeOK)
	metrics.SetSyncRecords(r.name, len(snapshot))
	for _, fn := range callbacks {
		fn(snapshot)
	}
	return nil
}

func (r *Resource[T]) snapshotLocked() ([]T, []func([]T)) {
	snapshot := append([]T(nil), r.state.Data...)
	callbacks := append([]func([]T){}, r.onApplied...)
	return snapshot, callbacks
}

// Start fetches once and then polls every interval until ctx is done or Stop
// is called. A tick is skipped while another fetch is still in flight.
func (r *Resource[T]) Start(ctx context.Context) {
	r.lifecycle.Lock()
	defer r.lifecycle.Unlock()
	if r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})

	go r.poll(ctx, r.done)
}

func (r *Resource[T]) poll(ctx context.Context, done chan struct{}) {
	defer close(done)

	r.tick(ctx)
	if r.interval <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Resource[T]) tick(ctx context.Context) {
	if r.InFlight() {
		metrics.IncSyncRefresh(r.name, outcomeSkipped)
		return
	}
	_ = r.Refresh(ctx)
}

// Stop cancels polling and any fetch it started, and waits for the loop to exit.
func (r *Resource[T]) Stop() {
	r.lifecycle.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.lifecycle.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Upsert replaces the record with the same key or appends it. It is used
// after the server confirmed a write; fetches issued before it are discarded.
func (r *Resource[T]) Upsert(item T) {
	r.write(func(data []T) []T {
		id := r.key(item)
		for i := range data {
			if r.key(data[i]) == id {
				data[i] = item
				return data
			}
		}
		return append(data, item)
	})
}

// Remove drops the record with the given key.
func (r *Resource[T]) Remove(id string) {
	r.write(func(data []T) []T {
		out := data[:0]
		for _, item := range data {
			if r.key(item) != id {
				out = append(out, item)
			}
		}
		return out
	})
}

// Mutate applies fn to the cached record with the given key and returns the
// result. ok is false when the record is not cached.
func (r *Resource[T]) Mutate(id string, fn func(*T)) (T, bool) {
	var (
		out   T
		found bool
	)
	r.write(func(data []T) []T {
		for i := range data {
			if r.key(data[i]) == id {
				fn(&data[i])
				out, found = data[i], true
				break
			}
		}
		return data
	})
	return out, found
}

// Find returns the cached record with the given key.
func (r *Resource[T]) Find(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.state.Data {
		if r.key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (r *Resource[T]) write(fn func([]T) []T) {
	r.mu.Lock()
	data := append([]T(nil), r.state.Data...)
	r.state.Data = fn(data)
	if r.state.Data == nil {
		r.state.Data = []T{}
	}
	r.state.UpdatedAt = r.now()
	// всё, что было запрошено до локальной записи, уже устарело
	r.dataGen = r.issued
	snapshot, callbacks := r.snapshotLocked()
	r.mu.Unlock()

	metrics.SetSyncRecords(r.name, len(snapshot))
	for _, fn := range callbacks {
		fn(snapshot)
	}
}
