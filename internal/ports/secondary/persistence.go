// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// CarRepository defines the secondary port for car storage.
// Implementations keep cars in memory only; nothing outlives the process.
type CarRepository interface {
	// Append stores a new car after every car stored before it.
	Append(ctx context.Context, car *CarRecord) error

	// List retrieves all cars in insertion order.
	List(ctx context.Context) ([]*CarRecord, error)

	// NextID returns an id no stored car has.
	NextID(ctx context.Context) (int, error)
}

// CarRecord represents a car as stored in the repository.
type CarRecord struct {
	ID     int
	Brand  string
	Model  string
	Doors  int
	LineID string
	Status string
}
