package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mmynk/dongledger/internal/models"
	"github.com/mmynk/dongledger/internal/storage"
)

// Book owns the current ledger state. Actions are applied one at a time;
// each change is handed to the store before the next action is accepted.
// A failed save is logged and the in-memory state stays authoritative.
type Book struct {
	mu      sync.Mutex
	state   models.State
	reducer *Reducer
	store   storage.Store
	logger  *slog.Logger

	actions      *prometheus.CounterVec
	saveFailures prometheus.Counter
}

// Option configures a Book.
type Option func(*bookOptions)

type bookOptions struct {
	logger     *slog.Logger
	registerer prometheus.Registerer
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(logger *slog.Logger) Option {
	return func(o *bookOptions) { o.logger = logger }
}

// WithRegisterer registers the book's metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *bookOptions) { o.registerer = reg }
}

// OpenBook loads the persisted state from store. A store with nothing saved
// yields a fresh ledger.
func OpenBook(ctx context.Context, store storage.Store, reducer *Reducer, opts ...Option) (*Book, error) {
	o := bookOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if reducer == nil {
		reducer = NewReducer(nil)
	}

	state := models.NewState()
	loaded, err := store.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		o.logger.Info("No saved state, starting fresh ledger")
	case err != nil:
		return nil, fmt.Errorf("failed to load state: %w", err)
	case loaded != nil:
		state = loaded.Normalize()
	}

	factory := promauto.With(o.registerer)
	return &Book{
		state:   state,
		reducer: reducer,
		store:   store,
		logger:  o.logger,
		actions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_actions_total",
			Help: "Dispatched actions by type and outcome.",
		}, []string{"type", "outcome"}),
		saveFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_save_failures_total",
			Help: "State snapshots that could not be persisted.",
		}),
	}, nil
}

// State returns a copy of the current state.
func (b *Book) State() models.State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Clone()
}

// Dispatch applies a and returns a copy of the resulting state.
func (b *Book) Dispatch(ctx context.Context, a Action) models.State {
	s, _ := b.Apply(ctx, a)
	return s
}

// Apply is Dispatch that also reports whether a changed the state.
// Ignored actions are not saved.
func (b *Book) Apply(ctx context.Context, a Action) (models.State, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if a == nil {
		return b.state.Clone(), false
	}

	label := a.Type()
	if _, ok := a.(Unknown); ok {
		label = "unknown"
	}

	next, changed := b.reducer.apply(b.state, a)
	if !changed {
		b.actions.WithLabelValues(label, "ignored").Inc()
		b.logger.Debug("Action ignored", "type", a.Type())
		return b.state.Clone(), false
	}
	b.actions.WithLabelValues(label, "applied").Inc()
	b.state = next

	// The caller going away must not abort the save.
	if err := b.store.Save(context.WithoutCancel(ctx), next); err != nil {
		b.saveFailures.Inc()
		b.logger.Error("Failed to save state", "type", a.Type(), "error", err)
	}
	return next.Clone(), true
}
