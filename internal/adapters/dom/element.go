package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/example/carline/internal/ports/secondary"
)

// Element wraps one element node.
type Element struct {
	n *html.Node
}

// ID returns the id attribute.
func (e *Element) ID() string { return attr(e.n, "id") }

// SetID sets the id attribute.
func (e *Element) SetID(id string) { setAttr(e.n, "id", id) }

// Query returns the first descendant matching "#id", ".class" or a tag name.
func (e *Element) Query(selector string) (secondary.Element, bool) {
	match := compile(selector)
	if match == nil {
		return nil, false
	}
	n := find(e.n, match)
	if n == nil {
		return nil, false
	}
	return &Element{n: n}, true
}

// Text returns the text content of the element and its descendants.
func (e *Element) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.n)
	return b.String()
}

// SetText replaces the element's children with one text node.
func (e *Element) SetText(text string) {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Value returns the value of an input or the text of a textarea.
func (e *Element) Value() string {
	if e.n.DataAtom == atom.Textarea {
		return e.Text()
	}
	return attr(e.n, "value")
}

// SetValue sets the value of an input or the text of a textarea.
func (e *Element) SetValue(value string) {
	if e.n.DataAtom == atom.Textarea {
		e.SetText(value)
		return
	}
	setAttr(e.n, "value", value)
}

// Ensure Element implements the interface.
var _ secondary.Element = (*Element)(nil)

// Helper functions

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func byID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool { return attr(n, "id") == id }
}

// compile turns a simple selector into a predicate. Returns nil for
// selectors it does not understand.
func compile(selector string) func(*html.Node) bool {
	selector = strings.TrimSpace(selector)
	switch {
	case selector == "" || strings.ContainsAny(selector, " >+~[:,"):
		return nil
	case strings.HasPrefix(selector, "#"):
		return byID(selector[1:])
	case strings.HasPrefix(selector, "."):
		class := selector[1:]
		return func(n *html.Node) bool { return hasClass(n, class) }
	default:
		tag := strings.ToLower(selector)
		return func(n *html.Node) bool { return n.Data == tag }
	}
}

// find returns the first element below n, in document order, matching pred.
// The content of <template> elements is skipped.
func find(n *html.Node, pred func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode && c.Type != html.DocumentNode {
			continue
		}
		if c.Type == html.ElementNode && pred(c) {
			return c
		}
		if c.DataAtom == atom.Template {
			continue
		}
		if found := find(c, pred); found != nil {
			return found
		}
	}
	return nil
}
