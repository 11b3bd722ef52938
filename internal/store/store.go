package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akomcomputer/shopsuite-backend/internal/snapshot"
	"github.com/akomcomputer/shopsuite-backend/pkg/config"
	"github.com/akomcomputer/shopsuite-backend/pkg/logger"
	"github.com/akomcomputer/shopsuite-backend/pkg/metrics"
	"github.com/akomcomputer/shopsuite-backend/pkg/models"
)

// Store is the single authoritative owner of every domain collection. All
// mutations go through its operations: derive, mutate under the lock, notify
// subscribers, persist the snapshot. Construct one in the composition root
// and inject it; there is no package-level instance.
type Store struct {
	mu        sync.Mutex
	state     *snapshot.State
	observers map[int]func()
	nextObsID int

	codec   *snapshot.Codec
	log     *logger.Logger
	metrics *metrics.StoreMetrics
	guards  config.GuardsConfig

	now   func() time.Time
	newID func() string
}

// Options wires the store's collaborators. Codec and Logger are required;
// Now and NewID default to the wall clock and uuid strings.
type Options struct {
	Codec   *snapshot.Codec
	Logger  *logger.Logger
	Metrics *metrics.StoreMetrics
	Guards  config.GuardsConfig
	Seeds   snapshot.State
	Now     func() time.Time
	NewID   func() string
}

// New loads the persisted snapshot (seeding defaults when absent) and
// returns a ready store.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.Codec == nil {
		return nil, fmt.Errorf("codec is required")
	}
	if opts.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	state, err := opts.Codec.Load(ctx, opts.Seeds)
	if err != nil {
		return nil, err
	}

	return &Store{
		state:     state,
		observers: make(map[int]func()),
		codec:     opts.Codec,
		log:       opts.Logger,
		metrics:   opts.Metrics,
		guards:    opts.Guards,
		now:       opts.Now,
		newID:     opts.NewID,
	}, nil
}

// Subscribe registers a zero-argument callback invoked after every mutation
// and returns its unsubscribe function. Callbacks must not call back into
// the store's mutators. Unsubscribing twice is harmless.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// commit runs after a mutation has been applied: bump the operation counter,
// fan out to subscribers, persist the snapshot. Persistence failures are
// logged and counted, never surfaced to the mutator's caller.
func (s *Store) commit(ctx context.Context, op string) {
	ctx = s.log.WithOperation(ctx, op)
	s.metrics.IncMutation(op)

	s.mu.Lock()
	state := s.copyStateLocked()
	observers := make([]func(), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn()
	}

	if err := s.codec.Save(ctx, state); err != nil {
		s.metrics.IncSnapshotFailure()
		s.log.Error(ctx, "snapshot save failed, in-memory state unaffected", err)
	}
}

func (s *Store) copyStateLocked() *snapshot.State {
	return &snapshot.State{
		Motos:          append([]models.InventoryItem(nil), s.state.Motos...),
		FBPosts:        append([]models.Lead(nil), s.state.FBPosts...),
		Customers:      append([]models.Customer(nil), s.state.Customers...),
		Products:       append([]models.Product(nil), s.state.Products...),
		Repairs:        append([]models.RepairTicket(nil), s.state.Repairs...),
		RepairLogs:     append([]models.RepairLog(nil), s.state.RepairLogs...),
		Sales:          append([]models.Sale(nil), s.state.Sales...),
		StockMovements: append([]models.StockMovement(nil), s.state.StockMovements...),
		SupportTickets: append([]models.SupportTicket(nil), s.state.SupportTickets...),
		Messages:       append([]models.Message(nil), s.state.Messages...),
		Settings:       s.state.Settings,
	}
}
