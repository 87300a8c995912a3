package projects

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formview/pkg/dom"
	"github.com/goliatone/go-formview/pkg/view"
)

// ListTemplateID is the template both project lists are cloned from.
const ListTemplateID = "project-list"

// Variant selects which project list a List renders.
type Variant string

const (
	VariantActive   Variant = "active"
	VariantFinished Variant = "finished"
)

// Variants lists the supported variants in mount order.
func Variants() []Variant {
	return []Variant{VariantActive, VariantFinished}
}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return v == VariantActive || v == VariantFinished
}

// Heading is the uppercase list title, e.g. "ACTIVE PROJECTS".
func (v Variant) Heading() string {
	return strings.ToUpper(string(v)) + " PROJECTS"
}

// ListID is the id given to the list's <ul>, e.g. "active-projects-list".
func (v Variant) ListID() string {
	return string(v) + "-projects-list"
}

// List is a headed, empty project list appended to its host.
type List struct {
	*view.Component

	variant Variant
	heading *html.Node
	items   *html.Node
}

// NewList mounts a list of the given variant as the last child of host.
func NewList(tmpl, host *html.Node, variant Variant, fns ...Option) (*List, error) {
	if !variant.Valid() {
		return nil, fmt.Errorf("projects: %w: unknown list variant %q", view.ErrSetup, variant)
	}
	opts := NewOptions(fns...)

	l := &List{variant: variant}
	component, err := view.Mount(tmpl, host,
		view.WithVariant(string(variant)),
		view.WithIDSuffix("projects"),
		view.WithPosition(dom.BeforeEnd),
		view.WithLogger(opts.Logger),
		view.WithHooks(view.Hooks{Render: l.renderContent}),
	)
	if err != nil {
		return nil, fmt.Errorf("projects: mount %s list: %w", variant, err)
	}
	l.Component = component
	return l, nil
}

// MustNewList is NewList that panics on a setup fault.
func MustNewList(tmpl, host *html.Node, variant Variant, fns ...Option) *List {
	l, err := NewList(tmpl, host, variant, fns...)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *List) renderContent(c *view.Component) error {
	var err error
	if l.items, err = c.Query("ul"); err != nil {
		return err
	}
	if l.heading, err = c.Query("h2"); err != nil {
		return err
	}
	dom.SetID(l.items, l.variant.ListID())
	dom.SetText(l.heading, l.variant.Heading())
	return nil
}

// Kind returns the list variant.
func (l *List) Kind() Variant { return l.variant }

// Heading returns the rendered heading text.
func (l *List) Heading() string { return dom.Text(l.heading) }

// ListID returns the id of the list element.
func (l *List) ListID() string { return dom.ID(l.items) }
