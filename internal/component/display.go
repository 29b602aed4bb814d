package component

import (
	"context"
	"strconv"

	"github.com/example/carline/internal/ports/secondary"
)

// DisplayTemplateID is the template every DisplayComponent instantiates.
const DisplayTemplateID = "car"

// DisplayProps are the values a DisplayComponent paints.
type DisplayProps struct {
	Brand string
	Model string
	Doors int
}

// DisplayComponent paints one car. It holds no state beyond its props.
type DisplayComponent struct {
	*Base
	props DisplayProps
}

// NewDisplayComponent instantiates the car template into the host.
func NewDisplayComponent(doc secondary.Document, hostID, elementID string, props DisplayProps, position secondary.Position) (*DisplayComponent, error) {
	base, err := NewBase(doc, Mount{
		TemplateID: DisplayTemplateID,
		HostID:     hostID,
		ElementID:  elementID,
		Position:   position,
	})
	if err != nil {
		return nil, err
	}
	return &DisplayComponent{Base: base, props: props}, nil
}

// Setup does nothing; a display has no behavior.
func (d *DisplayComponent) Setup() error { return nil }

// Render writes brand, model and door count into their slots.
func (d *DisplayComponent) Render(ctx context.Context) error {
	fields := []struct {
		selector string
		text     string
	}{
		{".car-brand", d.props.Brand},
		{".car-model", d.props.Model},
		{".car-door", strconv.Itoa(d.props.Doors)},
	}
	for _, f := range fields {
		el, err := d.query(f.selector)
		if err != nil {
			return err
		}
		el.SetText(f.text)
	}
	return nil
}

// Ensure DisplayComponent implements the interface.
var _ Component = (*DisplayComponent)(nil)
