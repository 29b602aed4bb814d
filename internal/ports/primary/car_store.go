// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import "context"

// CarStore defines the primary port for the observable car collection.
// Callers serialize access: the store is confined to a single UI thread.
type CarStore interface {
	// Snapshot returns a copy of every car in creation order.
	Snapshot(ctx context.Context) ([]Car, error)

	// Submit creates a car from the request, appends it and publishes.
	// No validation happens here; the caller is trusted.
	Submit(ctx context.Context, req SubmitRequest) (*Car, error)

	// Subscribe registers a listener invoked on every future publish.
	Subscribe(listener Listener)

	// Publish invokes every listener, in registration order, with a fresh snapshot.
	Publish(ctx context.Context) error
}

// Listener receives the full snapshot after a mutation.
type Listener func(ctx context.Context, cars []Car)

// SubmitRequest contains parameters for creating a car.
type SubmitRequest struct {
	Brand  string
	Model  string
	Doors  int
	LineID string
}

// Car represents a car entity at the port boundary.
type Car struct {
	ID     int    `json:"id" yaml:"id"`
	Brand  string `json:"brand" yaml:"brand"`
	Model  string `json:"model" yaml:"model"`
	Doors  int    `json:"door" yaml:"door"`
	LineID string `json:"lineId" yaml:"lineId"`
	Status string `json:"status" yaml:"status"`
}
