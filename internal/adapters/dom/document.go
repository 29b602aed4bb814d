// Package dom implements the Document port over an HTML tree parsed with
// golang.org/x/net/html.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/example/carline/internal/ports/secondary"
)

// Document is a mutable HTML document with template and event support.
// It is not safe for concurrent use.
type Document struct {
	root      *html.Node
	listeners map[*html.Node]map[string][]secondary.EventHandler
}

// Parse reads a complete HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &Document{
		root:      root,
		listeners: make(map[*html.Node]map[string][]secondary.EventHandler),
	}, nil
}

// ParseString is Parse over a string.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// FindElementByID returns the first attached element whose id matches.
// Template content is not part of the document and is not searched.
func (d *Document) FindElementByID(id string) (secondary.Element, error) {
	n := find(d.root, byID(id))
	if n == nil {
		return nil, fmt.Errorf("#%s: %w", id, secondary.ErrElementNotFound)
	}
	return &Element{n: n}, nil
}

// InstantiateTemplate deep-clones the first element of a <template>'s content.
func (d *Document) InstantiateTemplate(templateID string) (secondary.Element, error) {
	tmpl := find(d.root, func(n *html.Node) bool {
		return n.DataAtom == atom.Template && attr(n, "id") == templateID
	})
	if tmpl == nil {
		return nil, fmt.Errorf("template #%s: %w", templateID, secondary.ErrElementNotFound)
	}

	for c := tmpl.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return &Element{n: clone(c)}, nil
		}
	}
	return nil, fmt.Errorf("template #%s has no element content: %w", templateID, secondary.ErrElementNotFound)
}

// InsertFragment moves fragment to the given position relative to host.
func (d *Document) InsertFragment(host, fragment secondary.Element, position secondary.Position) error {
	h, err := unwrap(host)
	if err != nil {
		return err
	}
	f, err := unwrap(fragment)
	if err != nil {
		return err
	}
	if h == f {
		return fmt.Errorf("cannot insert element into itself")
	}

	if (position == secondary.InsertOutsideBefore || position == secondary.InsertOutsideAfter) && h.Parent == nil {
		return fmt.Errorf("cannot insert %s a detached element", position)
	}

	switch position {
	case secondary.InsertInsideAtStart:
		detach(f)
		h.InsertBefore(f, h.FirstChild)
	case secondary.InsertInsideAtEnd:
		detach(f)
		h.AppendChild(f)
	case secondary.InsertOutsideBefore:
		detach(f)
		h.Parent.InsertBefore(f, h)
	case secondary.InsertOutsideAfter:
		detach(f)
		h.Parent.InsertBefore(f, h.NextSibling)
	default:
		return fmt.Errorf("invalid insert position %q", position)
	}
	return nil
}

// AddEventListener registers handler for eventType on el.
func (d *Document) AddEventListener(el secondary.Element, eventType string, handler secondary.EventHandler) {
	n, err := unwrap(el)
	if err != nil {
		return
	}
	byType, ok := d.listeners[n]
	if !ok {
		byType = make(map[string][]secondary.EventHandler)
		d.listeners[n] = byType
	}
	byType[eventType] = append(byType[eventType], handler)
}

// Dispatch runs el's handlers for eventType in registration order.
// Events do not bubble.
func (d *Document) Dispatch(el secondary.Element, eventType string) bool {
	n, err := unwrap(el)
	if err != nil {
		return true
	}
	ev := &secondary.Event{Type: eventType, Target: el}
	for _, h := range d.listeners[n][eventType] {
		h(ev)
	}
	return !ev.DefaultPrevented()
}

// Render writes the whole document.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// RenderElement writes the outer HTML of el.
func (d *Document) RenderElement(w io.Writer, el secondary.Element) error {
	n, err := unwrap(el)
	if err != nil {
		return err
	}
	return html.Render(w, n)
}

// String renders the document, for logs and tests.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Ensure Document implements the interface.
var _ secondary.Document = (*Document)(nil)

func unwrap(el secondary.Element) (*html.Node, error) {
	e, ok := el.(*Element)
	if !ok || e == nil || e.n == nil {
		return nil, fmt.Errorf("element %T does not belong to this document type", el)
	}
	return e.n, nil
}

func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

func clone(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(clone(child))
	}
	return c
}
