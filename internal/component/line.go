package component

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/example/carline/internal/core/car"
	"github.com/example/carline/internal/ports/primary"
	"github.com/example/carline/internal/ports/secondary"
)

// LineComponent shows the latest car assigned to one line. Its element id
// is the line id.
type LineComponent struct {
	*Base

	store  primary.CarStore
	logger zerolog.Logger
	slot   secondary.Element
}

// NewLineComponent attaches the line, titles it with its id and subscribes
// it to the store.
//
// The template must contain an h1 for the title and a .line-slot element
// that holds the current car.
func NewLineComponent(doc secondary.Document, store primary.CarStore, logger zerolog.Logger, m Mount) (*LineComponent, error) {
	base, err := NewBase(doc, m)
	if err != nil {
		return nil, err
	}

	l := &LineComponent{
		Base:   base,
		store:  store,
		logger: logger.With().Str("component", "line").Str("line", m.ElementID).Logger(),
	}

	heading, err := l.query("h1")
	if err != nil {
		return nil, err
	}
	heading.SetText(l.NewElementID)

	l.slot, err = l.query(".line-slot")
	if err != nil {
		return nil, err
	}
	l.slot.SetID(l.slotID())

	if err := l.Setup(); err != nil {
		return nil, err
	}
	return l, nil
}

// LineID returns the id of the line this component shows.
func (l *LineComponent) LineID() string {
	return l.NewElementID
}

// Setup subscribes the line to the store. The notification payload is not
// used; Render reads a fresh snapshot.
func (l *LineComponent) Setup() error {
	l.store.Subscribe(func(ctx context.Context, _ []primary.Car) {
		if err := l.Render(ctx); err != nil {
			l.logger.Error().Err(err).Msg("render failed")
		}
	})
	return nil
}

// Render paints the latest in-progress car on this line with a new
// DisplayComponent, replacing the previous one. When the line has no car the
// current display is left as it is.
func (l *LineComponent) Render(ctx context.Context) error {
	cars, err := l.store.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to read cars for %s: %w", l.NewElementID, err)
	}

	placements := make([]car.Placement, len(cars))
	for i, c := range cars {
		placements[i] = car.Placement{LineID: c.LineID, Status: car.Status(c.Status)}
	}
	idx := car.LatestOnLine(placements, l.NewElementID)
	if idx < 0 {
		return nil
	}
	latest := cars[idx]

	l.slot.SetText("")
	display, err := NewDisplayComponent(l.Document(), l.slotID(), fmt.Sprintf("car-%d", latest.ID), DisplayProps{
		Brand: latest.Brand,
		Model: latest.Model,
		Doors: latest.Doors,
	}, secondary.InsertInsideAtEnd)
	if err != nil {
		return err
	}
	return display.Render(ctx)
}

func (l *LineComponent) slotID() string {
	return l.NewElementID + "-slot"
}

// Ensure LineComponent implements the interface.
var _ Component = (*LineComponent)(nil)
