// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/carline/internal/core/car"
	"github.com/example/carline/internal/ports/secondary"
)

// CarRepository implements secondary.CarRepository with SQLite.
type CarRepository struct {
	db *sql.DB
}

// NewCarRepository creates a new SQLite car repository.
func NewCarRepository(db *sql.DB) *CarRepository {
	return &CarRepository{db: db}
}

// Append persists a new car after all existing ones.
func (r *CarRepository) Append(ctx context.Context, c *secondary.CarRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO cars (id, brand, model, doors, line_id, status) VALUES (?, ?, ?, ?, ?, ?)",
		c.ID, c.Brand, c.Model, c.Doors, c.LineID, c.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}

	return nil
}

// List retrieves all cars in insertion order.
func (r *CarRepository) List(ctx context.Context) ([]*secondary.CarRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, brand, model, doors, line_id, status FROM cars ORDER BY seq ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	defer rows.Close()

	var cars []*secondary.CarRecord
	for rows.Next() {
		record := &secondary.CarRecord{}
		err := rows.Scan(&record.ID, &record.Brand, &record.Model, &record.Doors, &record.LineID, &record.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan car: %w", err)
		}
		cars = append(cars, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}

	return cars, nil
}

// NextID returns the next available car ID.
func (r *CarRepository) NextID(ctx context.Context) (int, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(id), 0) FROM cars",
	).Scan(&maxID)
	if err != nil {
		return 0, fmt.Errorf("failed to get next car ID: %w", err)
	}

	return car.NextID(maxID), nil
}

// Ensure CarRepository implements the interface.
var _ secondary.CarRepository = (*CarRepository)(nil)
