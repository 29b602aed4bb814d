// Package component builds UI fragments from document templates and keeps
// them in step with the car store.
//
// Every component instantiates exactly one template, attaches it to a host
// element once at construction, and exposes Setup and Render. Components are
// confined to the goroutine that owns the document and the store.
package component

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/carline/internal/ports/secondary"
)

// Component is the lifecycle every concrete component implements.
type Component interface {
	// Attach inserts the component's element into its host.
	Attach() error

	// Setup wires behavior (event handlers, subscriptions).
	Setup() error

	// Render paints the component's current state into its element.
	Render(ctx context.Context) error
}

// Mount says which template to instantiate and where to put it.
type Mount struct {
	TemplateID string
	HostID     string
	ElementID  string
	Position   secondary.Position // defaults to InsertInsideAtEnd
}

// Base holds the state shared by all components: the owned element and
// references to its host and source template.
type Base struct {
	TemplateID    string
	HostElementID string
	NewElementID  string
	Position      secondary.Position

	HostElement     secondary.Element
	TemplateElement secondary.Element
	Element         secondary.Element

	doc secondary.Document
}

// NewBase locates host and template, instantiates the template, gives the
// new element its id and attaches it.
func NewBase(doc secondary.Document, m Mount) (*Base, error) {
	if m.Position == "" {
		m.Position = secondary.InsertInsideAtEnd
	}
	if !m.Position.Valid() {
		return nil, fmt.Errorf("invalid insert position %q", m.Position)
	}

	host, err := lookup(doc, "host", m.HostID)
	if err != nil {
		return nil, err
	}
	tmpl, err := lookup(doc, "template", m.TemplateID)
	if err != nil {
		return nil, err
	}
	el, err := doc.InstantiateTemplate(m.TemplateID)
	if err != nil {
		return nil, &ElementNotFoundError{Kind: "template", ID: m.TemplateID, Err: err}
	}
	el.SetID(m.ElementID)

	b := &Base{
		TemplateID:      m.TemplateID,
		HostElementID:   m.HostID,
		NewElementID:    m.ElementID,
		Position:        m.Position,
		HostElement:     host,
		TemplateElement: tmpl,
		Element:         el,
		doc:             doc,
	}
	if err := b.Attach(); err != nil {
		return nil, err
	}
	return b, nil
}

// Attach inserts the element into the host at the configured position.
// NewBase calls it exactly once.
func (b *Base) Attach() error {
	if err := b.doc.InsertFragment(b.HostElement, b.Element, b.Position); err != nil {
		return fmt.Errorf("failed to attach #%s to #%s: %w", b.NewElementID, b.HostElementID, err)
	}
	return nil
}

// Document returns the document the component lives in.
func (b *Base) Document() secondary.Document {
	return b.doc
}

// query finds a required sub-element of the component's own element.
func (b *Base) query(selector string) (secondary.Element, error) {
	el, ok := b.Element.Query(selector)
	if !ok {
		return nil, &ElementNotFoundError{Kind: "selector", ID: selector}
	}
	return el, nil
}

func lookup(doc secondary.Document, kind, id string) (secondary.Element, error) {
	el, err := doc.FindElementByID(id)
	if err != nil {
		if errors.Is(err, secondary.ErrElementNotFound) {
			return nil, &ElementNotFoundError{Kind: kind, ID: id, Err: err}
		}
		return nil, fmt.Errorf("failed to find %s #%s: %w", kind, id, err)
	}
	return el, nil
}
