// Package memory contains slice-backed implementations of repository interfaces.
package memory

import (
	"context"

	"github.com/example/carline/internal/core/car"
	"github.com/example/carline/internal/ports/secondary"
)

// CarRepository implements secondary.CarRepository over a slice.
type CarRepository struct {
	cars  []secondary.CarRecord
	maxID int
}

// NewCarRepository creates an empty in-memory car repository.
func NewCarRepository() *CarRepository {
	return &CarRepository{}
}

// Append stores a copy of c.
func (r *CarRepository) Append(ctx context.Context, c *secondary.CarRecord) error {
	r.cars = append(r.cars, *c)
	if c.ID > r.maxID {
		r.maxID = c.ID
	}
	return nil
}

// List returns copies of all cars in insertion order.
func (r *CarRepository) List(ctx context.Context) ([]*secondary.CarRecord, error) {
	cars := make([]*secondary.CarRecord, len(r.cars))
	for i := range r.cars {
		c := r.cars[i]
		cars[i] = &c
	}
	return cars, nil
}

// NextID returns the id after the largest one stored.
func (r *CarRepository) NextID(ctx context.Context) (int, error) {
	return car.NextID(r.maxID), nil
}

// Ensure CarRepository implements the interface.
var _ secondary.CarRepository = (*CarRepository)(nil)
