package secondary

import "errors"

// ErrElementNotFound is returned by Document lookups that match nothing.
var ErrElementNotFound = errors.New("element not found")

// Position is where a fragment is inserted relative to its host element.
type Position string

const (
	// InsertInsideAtStart inserts before the host's first child.
	InsertInsideAtStart Position = "afterbegin"
	// InsertInsideAtEnd inserts after the host's last child.
	InsertInsideAtEnd Position = "beforeend"
	// InsertOutsideBefore inserts as the host's previous sibling.
	InsertOutsideBefore Position = "beforebegin"
	// InsertOutsideAfter inserts as the host's next sibling.
	InsertOutsideAfter Position = "afterend"
)

// Valid reports whether p is one of the four insertion points.
func (p Position) Valid() bool {
	switch p {
	case InsertInsideAtStart, InsertInsideAtEnd, InsertOutsideBefore, InsertOutsideAfter:
		return true
	}
	return false
}

// Element is a handle on one node of the hosting document.
type Element interface {
	// ID returns the element's id attribute ("" if unset).
	ID() string

	// SetID sets the element's id attribute.
	SetID(id string)

	// Query returns the first descendant matching a simple selector:
	// "#id", ".class" or a tag name.
	Query(selector string) (Element, bool)

	// Text returns the concatenated text content.
	Text() string

	// SetText replaces all children with a single text node.
	SetText(text string)

	// Value returns the current value of a form field.
	Value() string

	// SetValue sets the current value of a form field.
	SetValue(value string)
}

// Event is delivered to event handlers.
type Event struct {
	Type   string
	Target Element

	defaultPrevented bool
}

// PreventDefault cancels the platform's default action for the event.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// EventHandler handles one dispatched event.
type EventHandler func(e *Event)

// Document defines the secondary port for the hosting UI platform.
// This abstracts the rendering primitives components are built on.
type Document interface {
	// FindElementByID returns the attached element with the given id.
	// Returns an error wrapping ErrElementNotFound if no element has that id.
	FindElementByID(id string) (Element, error)

	// InstantiateTemplate deep-clones the content of the named template and
	// returns its first element. The clone is detached until inserted.
	// Returns an error wrapping ErrElementNotFound if there is no such template.
	InstantiateTemplate(templateID string) (Element, error)

	// InsertFragment inserts fragment relative to host at the given position.
	InsertFragment(host, fragment Element, position Position) error

	// AddEventListener registers handler for events of the given type on el.
	AddEventListener(el Element, eventType string, handler EventHandler)

	// Dispatch delivers an event of the given type to el's handlers in
	// registration order. Returns false if a handler prevented the default.
	Dispatch(el Element, eventType string) bool
}
