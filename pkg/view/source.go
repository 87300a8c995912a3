package view

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-formview/pkg/dom"
	rendertemplate "github.com/goliatone/go-formview/pkg/render/template"
)

// Document is a parsed page that supplies component templates and mount
// containers by id. It replaces ambient document lookups: callers resolve
// handles here and pass them to Mount explicitly.
type Document struct {
	root *html.Node
}

// NewDocument wraps an already parsed tree.
func NewDocument(root *html.Node) *Document {
	return &Document{root: root}
}

// ParseDocument parses markup into a Document.
func ParseDocument(markup string) (*Document, error) {
	root, err := dom.ParseString(markup)
	if err != nil {
		return nil, fmt.Errorf("view: parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	if d == nil {
		return nil
	}
	return d.root
}

// Template returns the <template> element with the given id.
func (d *Document) Template(id string) (*html.Node, error) {
	n := dom.FindByID(d.Root(), id)
	if !dom.IsElement(n, atom.Template) {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return n, nil
}

// Container returns the element with the given id, to be used as a mount
// point.
func (d *Document) Container(id string) (*html.Node, error) {
	n := dom.FindByID(d.Root(), id)
	if !dom.IsElement(n) || dom.IsElement(n, atom.Template) {
		return nil, fmt.Errorf("%w: %q", ErrContainerNotFound, id)
	}
	return n, nil
}

// MustTemplate is Template that panics on a setup fault.
func (d *Document) MustTemplate(id string) *html.Node {
	n, err := d.Template(id)
	if err != nil {
		panic(err)
	}
	return n
}

// MustContainer is Container that panics on a setup fault.
func (d *Document) MustContainer(id string) *html.Node {
	n, err := d.Container(id)
	if err != nil {
		panic(err)
	}
	return n
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	data     any
	sanitize bool
}

// WithData passes a context to the template engine.
func WithData(data any) LoadOption {
	return func(cfg *loadConfig) {
		cfg.data = data
	}
}

// WithSanitize runs the rendered markup through the template policy before it
// is parsed. Use it for template bundles that come from outside the binary.
func WithSanitize(enabled bool) LoadOption {
	return func(cfg *loadConfig) {
		cfg.sanitize = enabled
	}
}

// Load renders the named template with renderer and parses the output into a
// Document.
func Load(renderer rendertemplate.TemplateRenderer, name string, options ...LoadOption) (*Document, error) {
	if renderer == nil {
		return nil, fmt.Errorf("view: template renderer is nil")
	}
	cfg := loadConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	markup, err := renderer.RenderTemplate(strings.TrimSpace(name), cfg.data)
	if err != nil {
		return nil, fmt.Errorf("view: render %q: %w", name, err)
	}
	if cfg.sanitize {
		markup = SanitizeMarkup(markup)
	}
	return ParseDocument(markup)
}
