package component

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/example/carline/internal/core/car"
	"github.com/example/carline/internal/core/validation"
	"github.com/example/carline/internal/ports/primary"
	"github.com/example/carline/internal/ports/secondary"
)

// FormFields are the document ids of the form's inputs.
type FormFields struct {
	Brand  string
	Model  string
	Doors  string
	LineID string
}

// DefaultFormFields returns the input ids used by the default page.
func DefaultFormFields() FormFields {
	return FormFields{Brand: "brand", Model: "model", Doors: "door", LineID: "lineId"}
}

// FormComponent validates user input and submits new cars to the store.
type FormComponent struct {
	*Base

	store  primary.CarStore
	logger zerolog.Logger

	brandInput secondary.Element
	modelInput secondary.Element
	doorInput  secondary.Element
	lineInput  secondary.Element
}

// NewFormComponent attaches the form, finds its inputs and registers the
// submit handler.
func NewFormComponent(doc secondary.Document, store primary.CarStore, logger zerolog.Logger, m Mount, fields FormFields) (*FormComponent, error) {
	base, err := NewBase(doc, m)
	if err != nil {
		return nil, err
	}

	f := &FormComponent{
		Base:   base,
		store:  store,
		logger: logger.With().Str("component", "form").Str("element", m.ElementID).Logger(),
	}

	inputs := []struct {
		id  string
		dst *secondary.Element
	}{
		{fields.Brand, &f.brandInput},
		{fields.Model, &f.modelInput},
		{fields.Doors, &f.doorInput},
		{fields.LineID, &f.lineInput},
	}
	for _, in := range inputs {
		el, err := lookup(doc, "field", in.id)
		if err != nil {
			return nil, err
		}
		*in.dst = el
	}

	if err := f.Setup(); err != nil {
		return nil, err
	}
	return f, nil
}

// Setup registers the submit handler on the form element. The handler is a
// closure over f, so it runs against this form however it is dispatched.
func (f *FormComponent) Setup() error {
	f.Document().AddEventListener(f.Element, "submit", func(e *secondary.Event) {
		e.PreventDefault()
		err := f.Submit(context.Background())
		var verr *ValidationError
		if err != nil && !errors.As(err, &verr) {
			f.logger.Error().Err(err).Msg("submit failed")
		}
	})
	return nil
}

// Submit validates the current field values and, if they pass, adds the car
// and clears brand, model and doors. The line field keeps its value.
// A *ValidationError is returned when a rule fails; the fields are kept.
func (f *FormComponent) Submit(ctx context.Context) error {
	brand, model, doors, lineID := f.inputs()

	guard := car.CanSubmit(car.SubmitContext{
		Brand:  brand,
		Model:  model,
		Doors:  doors,
		LineID: lineID,
	})
	if !guard.Allowed {
		f.logger.Warn().Strs("fields", guard.Fields).Msg("Inputs are not valid!")
		return &ValidationError{Fields: guard.Fields}
	}

	if _, err := f.store.Submit(ctx, primary.SubmitRequest{
		Brand:  brand,
		Model:  model,
		Doors:  int(doors.Num),
		LineID: lineID,
	}); err != nil {
		return err
	}

	f.clearInputs()
	return nil
}

// Fill writes values into the form's inputs, as a user typing would.
func (f *FormComponent) Fill(brand, model, doors, lineID string) {
	f.brandInput.SetValue(brand)
	f.modelInput.SetValue(model)
	f.doorInput.SetValue(doors)
	f.lineInput.SetValue(lineID)
}

// Render is a no-op; the form has no store-driven state.
func (f *FormComponent) Render(ctx context.Context) error { return nil }

func (f *FormComponent) inputs() (brand, model string, doors validation.Value, lineID string) {
	return f.brandInput.Value(),
		f.modelInput.Value(),
		car.ParseDoors(f.doorInput.Value()),
		f.lineInput.Value()
}

func (f *FormComponent) clearInputs() {
	f.brandInput.SetValue("")
	f.modelInput.SetValue("")
	f.doorInput.SetValue("")
}

// Ensure FormComponent implements the interface.
var _ Component = (*FormComponent)(nil)
