// Package view mounts template-derived subtrees into containers.
//
// A Component clones the content of a <template> element, keeps the single
// root element of the clone, assigns it an id, lets its owner configure it,
// inserts it into the container and finally renders its content. Each
// component mounts exactly once; there is no unmount.
package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"github.com/goliatone/go-formview/pkg/dom"
)

// Hooks are the lifecycle callbacks a specialised component supplies.
// Configure runs before the root is attached, Render right after.
type Hooks struct {
	Configure func(*Component) error
	Render    func(*Component) error
}

// Option configures a component before it mounts.
type Option func(*config)

type config struct {
	variant  string
	id       string
	suffix   string
	position dom.Position
	hooks    Hooks
	logger   zerolog.Logger
}

// WithVariant tags the component (e.g. "active"). The tag feeds the derived
// id and is available to render hooks.
func WithVariant(variant string) Option {
	return func(cfg *config) {
		cfg.variant = strings.TrimSpace(variant)
	}
}

// WithID sets the root id explicitly, overriding derivation.
func WithID(id string) Option {
	return func(cfg *config) {
		cfg.id = strings.TrimSpace(id)
	}
}

// WithIDSuffix sets the suffix joined to the variant to derive the root id,
// e.g. variant "active" and suffix "projects" give "active-projects".
func WithIDSuffix(suffix string) Option {
	return func(cfg *config) {
		cfg.suffix = strings.TrimSpace(suffix)
	}
}

// WithPosition chooses whether the root becomes the container's first
// (dom.AfterBegin) or last (dom.BeforeEnd) child. Defaults to dom.BeforeEnd.
func WithPosition(pos dom.Position) Option {
	return func(cfg *config) {
		if pos != "" {
			cfg.position = pos
		}
	}
}

// WithHooks installs the configure and render callbacks.
func WithHooks(hooks Hooks) Option {
	return func(cfg *config) {
		cfg.hooks = hooks
	}
}

// WithLogger attaches a logger used for lifecycle debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// Component owns one mounted subtree cloned from a template.
type Component struct {
	template  *html.Node
	container *html.Node
	element   *html.Node
	variant   string
	position  dom.Position
	logger    zerolog.Logger
}

// Mount clones tmpl's content, mounts the root into container and runs the
// hooks. Missing template, container or root element yield an error wrapping
// ErrSetup; so does any error returned by a hook.
func Mount(tmpl, container *html.Node, options ...Option) (*Component, error) {
	cfg := config{
		position: dom.BeforeEnd,
		logger:   zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	if tmpl == nil {
		return nil, fmt.Errorf("%w: nil template handle", ErrTemplateNotFound)
	}
	if container == nil {
		return nil, fmt.Errorf("%w: nil container handle", ErrContainerNotFound)
	}

	root := dom.FirstElementChild(dom.CloneContent(tmpl))
	if root == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoRootElement, dom.ID(tmpl))
	}
	dom.Detach(root)

	c := &Component{
		template:  tmpl,
		container: container,
		element:   root,
		variant:   cfg.variant,
		position:  cfg.position,
		logger:    cfg.logger,
	}

	if id := deriveID(cfg); id != "" {
		dom.SetID(root, id)
	}

	if cfg.hooks.Configure != nil {
		if err := cfg.hooks.Configure(c); err != nil {
			return nil, setupFault("configure", err)
		}
	}

	if err := dom.InsertAdjacent(container, c.position, root); err != nil {
		return nil, fmt.Errorf("%w: attach: %v", ErrSetup, err)
	}

	if cfg.hooks.Render != nil {
		if err := cfg.hooks.Render(c); err != nil {
			dom.Detach(root)
			return nil, setupFault("render", err)
		}
	}

	c.logger.Debug().
		Str("template", dom.ID(tmpl)).
		Str("id", dom.ID(root)).
		Str("variant", c.variant).
		Str("position", string(c.position)).
		Msg("component mounted")

	return c, nil
}

// MustMount is Mount that panics on failure.
func MustMount(tmpl, container *html.Node, options ...Option) *Component {
	c, err := Mount(tmpl, container, options...)
	if err != nil {
		panic(err)
	}
	return c
}

func deriveID(cfg config) string {
	if cfg.id != "" {
		return cfg.id
	}
	switch {
	case cfg.variant != "" && cfg.suffix != "":
		return cfg.variant + "-" + cfg.suffix
	case cfg.variant != "":
		return cfg.variant
	default:
		return cfg.suffix
	}
}

func setupFault(phase string, err error) error {
	if IsSetupFault(err) {
		return fmt.Errorf("view: %s: %w", phase, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrSetup, phase, err)
}

// Element returns the owned root element.
func (c *Component) Element() *html.Node { return c.element }

// Container returns the node the component is mounted in.
func (c *Component) Container() *html.Node { return c.container }

// Template returns the template the component was cloned from.
func (c *Component) Template() *html.Node { return c.template }

// Variant returns the variant tag, possibly empty.
func (c *Component) Variant() string { return c.variant }

// ID returns the root element id.
func (c *Component) ID() string { return dom.ID(c.element) }

// Position reports where the root was inserted.
func (c *Component) Position() dom.Position { return c.position }

// Logger returns the component logger.
func (c *Component) Logger() zerolog.Logger { return c.logger }

// Query finds a required sub-element of the root. A missing element is a
// setup fault.
func (c *Component) Query(selector string) (*html.Node, error) {
	n, err := dom.QuerySelector(c.element, selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSetup, err)
	}
	if n == nil {
		return nil, fmt.Errorf("%w: %q in #%s", ErrElementNotFound, selector, c.ID())
	}
	return n, nil
}

// MustQuery is Query that panics on failure.
func (c *Component) MustQuery(selector string) *html.Node {
	n, err := c.Query(selector)
	if err != nil {
		panic(err)
	}
	return n
}

// Render writes the component's root element markup to w.
func (c *Component) Render(w io.Writer) error {
	return dom.Render(w, c.element)
}
