// Package app contains the application services that orchestrate business logic.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/example/carline/internal/core/car"
	"github.com/example/carline/internal/ctxutil"
	"github.com/example/carline/internal/ports/primary"
	"github.com/example/carline/internal/ports/secondary"
)

// CarStoreImpl implements the CarStore interface.
// It is not safe for concurrent use; hosts run it on one goroutine.
type CarStoreImpl struct {
	carRepo   secondary.CarRepository
	listeners []primary.Listener
	logger    zerolog.Logger
}

// NewCarStore creates a new CarStore with injected dependencies.
func NewCarStore(carRepo secondary.CarRepository, logger zerolog.Logger) *CarStoreImpl {
	return &CarStoreImpl{
		carRepo: carRepo,
		logger:  logger.With().Str("component", "store").Logger(),
	}
}

// Snapshot returns a copy of every car in creation order.
func (s *CarStoreImpl) Snapshot(ctx context.Context) ([]primary.Car, error) {
	records, err := s.carRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}

	cars := make([]primary.Car, len(records))
	for i, r := range records {
		cars[i] = recordToCar(r)
	}
	return cars, nil
}

// Submit creates a car, appends it and notifies every listener.
func (s *CarStoreImpl) Submit(ctx context.Context, req primary.SubmitRequest) (*primary.Car, error) {
	nextID, err := s.carRepo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate car ID: %w", err)
	}

	record := &secondary.CarRecord{
		ID:     nextID,
		Brand:  req.Brand,
		Model:  req.Model,
		Doors:  req.Doors,
		LineID: req.LineID,
		Status: string(car.StatusInProgress),
	}

	if err := s.carRepo.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to add car: %w", err)
	}

	s.logger.Debug().
		Int("id", record.ID).
		Str("line", record.LineID).
		Str("origin", ctxutil.OriginFromContext(ctx)).
		Msg("car added")

	created := recordToCar(record)
	if err := s.Publish(ctx); err != nil {
		return &created, err
	}
	return &created, nil
}

// Subscribe registers a listener for every future publish.
func (s *CarStoreImpl) Subscribe(listener primary.Listener) {
	s.listeners = append(s.listeners, listener)
}

// Publish hands each listener its own fresh snapshot, in registration order.
func (s *CarStoreImpl) Publish(ctx context.Context) error {
	for _, listener := range s.listeners {
		cars, err := s.Snapshot(ctx)
		if err != nil {
			return fmt.Errorf("failed to publish: %w", err)
		}
		listener(ctx, cars)
	}

	s.logger.Debug().Int("listeners", len(s.listeners)).Msg("published")
	return nil
}

// Helper methods

func recordToCar(r *secondary.CarRecord) primary.Car {
	return primary.Car{
		ID:     r.ID,
		Brand:  r.Brand,
		Model:  r.Model,
		Doors:  r.Doors,
		LineID: r.LineID,
		Status: r.Status,
	}
}

// Ensure CarStoreImpl implements the interface.
var _ primary.CarStore = (*CarStoreImpl)(nil)
