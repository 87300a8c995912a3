// Package dom wraps golang.org/x/net/html nodes with the handful of
// document operations the view layer needs: deep cloning, selector lookup,
// id/text/value access, adjacent insertion and serialisation.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Position selects where InsertAdjacent places a child.
type Position string

const (
	// AfterBegin inserts as the container's first child.
	AfterBegin Position = "afterbegin"
	// BeforeEnd inserts as the container's last child.
	BeforeEnd Position = "beforeend"
)

// Parse reads a complete HTML document.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}
	return doc, nil
}

// ParseString is Parse over a string.
func ParseString(markup string) (*html.Node, error) {
	return Parse(strings.NewReader(markup))
}

// Clone returns a deep copy of n. The copy is detached and shares no nodes or
// attribute slices with the original.
func Clone(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	out := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		out.Attr = make([]html.Attribute, len(n.Attr))
		copy(out.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		out.AppendChild(Clone(child))
	}
	return out
}

// CloneContent deep-copies the children of a <template> element into a new
// detached fragment node.
func CloneContent(tmpl *html.Node) *html.Node {
	fragment := &html.Node{Type: html.DocumentNode}
	if tmpl == nil {
		return fragment
	}
	for child := tmpl.FirstChild; child != nil; child = child.NextSibling {
		fragment.AppendChild(Clone(child))
	}
	return fragment
}

// FirstElementChild returns the first child of n that is an element.
func FirstElementChild(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			return child
		}
	}
	return nil
}

// Detach removes n from its parent, if any.
func Detach(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// IsElement reports whether n is an element, optionally of the given tag.
func IsElement(n *html.Node, tag ...atom.Atom) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	if len(tag) == 0 {
		return true
	}
	for _, a := range tag {
		if n.DataAtom == a {
			return true
		}
	}
	return false
}

// QuerySelector returns the first descendant of root matching the CSS
// selector, or nil. root itself is not considered.
func QuerySelector(root *html.Node, selector string) (*html.Node, error) {
	sel, err := compile(selector)
	if err != nil {
		return nil, err
	}
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if found := sel.MatchFirst(child); found != nil {
			return found, nil
		}
	}
	return nil, nil
}

// QuerySelectorAll returns every descendant of root matching the selector in
// document order.
func QuerySelectorAll(root *html.Node, selector string) ([]*html.Node, error) {
	sel, err := compile(selector)
	if err != nil {
		return nil, err
	}
	var out []*html.Node
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		out = append(out, sel.MatchAll(child)...)
	}
	return out, nil
}

// FindByID walks the tree rooted at n (n included) for an element whose id
// attribute equals id.
func FindByID(n *html.Node, id string) *html.Node {
	if n == nil || id == "" {
		return nil
	}
	if n.Type == html.ElementNode && Attr(n, "id") == id {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := FindByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

func compile(selector string) (cascadia.Selector, error) {
	sel, err := cascadia.Compile(strings.TrimSpace(selector))
	if err != nil {
		return nil, fmt.Errorf("dom: invalid selector %q: %w", selector, err)
	}
	return sel, nil
}

// Attr returns the value of the named attribute or "".
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func HasAttr(n *html.Node, key string) bool {
	if n == nil {
		return false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return true
		}
	}
	return false
}

// SetAttr sets or replaces the named attribute.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// ID returns the element id.
func ID(n *html.Node) string { return Attr(n, "id") }

// SetID assigns the element id.
func SetID(n *html.Node, id string) { SetAttr(n, "id", id) }

// Text returns the concatenated text of n and its descendants.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(Text(child))
	}
	return b.String()
}

// SetText replaces every child of n with a single text node. An empty string
// leaves n without children.
func SetText(n *html.Node, text string) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	if text == "" {
		return
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Value returns a form control's current value: the text of a <textarea>,
// the value attribute otherwise.
func Value(n *html.Node) string {
	if IsElement(n, atom.Textarea) {
		return Text(n)
	}
	return Attr(n, "value")
}

// SetValue writes a form control's value. For inputs the value attribute is
// kept present even when empty so the serialised control is explicitly blank.
func SetValue(n *html.Node, value string) {
	if IsElement(n, atom.Textarea) {
		SetText(n, value)
		return
	}
	SetAttr(n, "value", value)
}

// InsertAdjacent attaches child to container at pos. child is detached from
// any previous parent first.
func InsertAdjacent(container *html.Node, pos Position, child *html.Node) error {
	if container == nil || child == nil {
		return fmt.Errorf("dom: insert requires container and child")
	}
	Detach(child)
	switch pos {
	case AfterBegin:
		container.InsertBefore(child, container.FirstChild)
	case BeforeEnd:
		container.AppendChild(child)
	default:
		return fmt.Errorf("dom: unknown insert position %q", pos)
	}
	return nil
}

// Render serialises n (and its descendants) to w.
func Render(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return fmt.Errorf("dom: render: %w", err)
	}
	return nil
}

// RenderString serialises n to a string.
func RenderString(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderChildren serialises only the children of n.
func RenderChildren(w io.Writer, n *html.Node) error {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if err := Render(w, child); err != nil {
			return err
		}
	}
	return nil
}
