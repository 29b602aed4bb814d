// Package cli contains adapters that present the car store on a terminal.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/example/carline/internal/core/car"
	"github.com/example/carline/internal/ports/primary"
)

// CarAdapter is a thin adapter that translates terminal operations to
// CarStore calls. It depends only on the CarStore interface.
type CarAdapter struct {
	store primary.CarStore
	lines []string
	out   io.Writer
}

// NewCarAdapter creates a new CarAdapter for the given lines.
func NewCarAdapter(store primary.CarStore, lines []string, out io.Writer) *CarAdapter {
	return &CarAdapter{
		store: store,
		lines: lines,
		out:   out,
	}
}

// Watch subscribes the adapter so the board is printed after every publish.
func (a *CarAdapter) Watch() {
	a.store.Subscribe(func(ctx context.Context, cars []primary.Car) {
		a.printBoard(cars)
	})
}

// Board prints the latest car of every line.
func (a *CarAdapter) Board(ctx context.Context) error {
	cars, err := a.store.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to read cars: %w", err)
	}
	a.printBoard(cars)
	return nil
}

// List prints every car in creation order.
func (a *CarAdapter) List(ctx context.Context) ([]primary.Car, error) {
	cars, err := a.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}

	if len(cars) == 0 {
		fmt.Fprintln(a.out, "No cars found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Add your first car:")
		fmt.Fprintln(a.out, "  add Toyota Corolla 4 line1")
		return cars, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tBRAND\tMODEL\tDOORS\tLINE\tSTATUS")
	fmt.Fprintln(w, "--\t-----\t-----\t-----\t----\t------")

	for _, c := range cars {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
			c.ID,
			c.Brand,
			c.Model,
			c.Doors,
			c.LineID,
			c.Status,
		)
	}

	w.Flush()
	return cars, nil
}

// Export writes the snapshot as "json" or "yaml".
func (a *CarAdapter) Export(ctx context.Context, format string) error {
	cars, err := a.store.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to export cars: %w", err)
	}
	if cars == nil {
		cars = []primary.Car{}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(cars)
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(cars); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q (want json or yaml)", format)
	}
}

func (a *CarAdapter) printBoard(cars []primary.Car) {
	placements := make([]car.Placement, len(cars))
	for i, c := range cars {
		placements[i] = car.Placement{LineID: c.LineID, Status: car.Status(c.Status)}
	}

	for _, line := range a.lines {
		name := color.New(color.FgHiBlue, color.Bold).Sprint(line)
		idx := car.LatestOnLine(placements, line)
		if idx < 0 {
			fmt.Fprintf(a.out, "%s  %s\n", name, color.New(color.FgHiBlack).Sprint("(empty)"))
			continue
		}
		c := cars[idx]
		id := color.New(color.FgYellow).Sprintf("car-%d", c.ID)
		fmt.Fprintf(a.out, "%s  %s %s %s, %d doors\n", name, id, c.Brand, c.Model, c.Doors)
	}
}
