package projects

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formview/pkg/dom"
	rendertemplate "github.com/goliatone/go-formview/pkg/render/template"
	"github.com/goliatone/go-formview/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formview/pkg/view"
)

// DefaultContainerID is the element the page mounts into.
const DefaultContainerID = "app"

// DefaultTitle is the page title used when none is configured.
const DefaultTitle = "Projects"

// Page is the assembled application: the form first, then the active and the
// finished project lists, all inside one container.
type Page struct {
	doc       *view.Document
	container *html.Node
	events    *dom.EventTarget
	form      *Input
	lists     []*List
	opts      Options
}

// Mount builds the page from the templates in doc.
func Mount(doc *view.Document, fns ...Option) (*Page, error) {
	if doc == nil {
		return nil, fmt.Errorf("projects: %w: nil document", view.ErrSetup)
	}
	opts := NewOptions(fns...)

	container, err := doc.Container(opts.ContainerID)
	if err != nil {
		return nil, err
	}
	inputTmpl, err := doc.Template(InputTemplateID)
	if err != nil {
		return nil, err
	}
	listTmpl, err := doc.Template(ListTemplateID)
	if err != nil {
		return nil, err
	}

	p := &Page{
		doc:       doc,
		container: container,
		events:    dom.NewEventTarget(),
		opts:      opts,
	}

	// Options already carry defaults, so pass them through unchanged.
	pass := func(o *Options) { *o = opts }

	if p.form, err = NewInput(inputTmpl, container, p.events, pass); err != nil {
		return nil, err
	}
	for _, variant := range Variants() {
		list, err := NewList(listTmpl, container, variant, pass)
		if err != nil {
			return nil, err
		}
		p.lists = append(p.lists, list)
	}

	opts.Logger.Debug().
		Str("container", opts.ContainerID).
		Int("lists", len(p.lists)).
		Msg("page mounted")
	return p, nil
}

// MustMount is Mount that panics on a setup fault.
func MustMount(doc *view.Document, fns ...Option) *Page {
	p, err := Mount(doc, fns...)
	if err != nil {
		panic(err)
	}
	return p
}

// Form returns the project form.
func (p *Page) Form() *Input { return p.form }

// Lists returns the mounted lists in order.
func (p *Page) Lists() []*List {
	out := make([]*List, len(p.lists))
	copy(out, p.lists)
	return out
}

// List returns the list with the given variant, or nil.
func (p *Page) List(variant Variant) *List {
	for _, l := range p.lists {
		if l.Kind() == variant {
			return l
		}
	}
	return nil
}

// Events returns the event target the form listens on.
func (p *Page) Events() *dom.EventTarget { return p.events }

// Document returns the document the page was mounted into.
func (p *Page) Document() *view.Document { return p.doc }

// Container returns the mount container.
func (p *Page) Container() *html.Node { return p.container }

// Render writes the container's children, i.e. the mounted components.
func (p *Page) Render(w io.Writer) error {
	return dom.RenderChildren(w, p.container)
}

// RenderString is Render into a string.
func (p *Page) RenderString() (string, error) {
	var b strings.Builder
	if err := p.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// LayoutData is the context passed to the page layout template.
type LayoutData struct {
	Title  string
	Notice string
}

// RenderLayout renders the mounted components into the page layout template,
// optionally showing a notice above them.
func (p *Page) RenderLayout(renderer rendertemplate.TemplateRenderer, data LayoutData, out ...io.Writer) (string, error) {
	if renderer == nil {
		return "", fmt.Errorf("projects: template renderer is nil")
	}
	app, err := p.RenderString()
	if err != nil {
		return "", err
	}
	ctx := map[string]any{
		"notice": data.Notice,
		"app":    app,
	}
	if title := strings.TrimSpace(data.Title); title != "" {
		ctx["app_title"] = title
	}
	return renderer.RenderTemplate(PageTemplate, ctx, out...)
}

// NewRenderer returns a template engine over the bundled templates, or over
// dir when it is not empty.
func NewRenderer(dir string) (*gotemplate.Engine, error) {
	globals := gotemplate.WithGlobalData(map[string]any{"app_title": DefaultTitle})
	if strings.TrimSpace(dir) != "" {
		return gotemplate.New(gotemplate.WithBaseDir(dir), globals)
	}
	return gotemplate.New(gotemplate.WithFS(TemplatesFS()), globals)
}

// DocumentData is the context for the components template.
type DocumentData struct {
	Title       string
	Action      string
	SubmitLabel string
}

func (d DocumentData) context() map[string]any {
	ctx := map[string]any{}
	if title := strings.TrimSpace(d.Title); title != "" {
		ctx["app_title"] = title
	}
	if d.Action != "" {
		ctx["action"] = d.Action
	}
	if d.SubmitLabel != "" {
		ctx["submit_label"] = d.SubmitLabel
	}
	return ctx
}

// LoadDocument renders the components template with renderer and parses it.
func LoadDocument(renderer rendertemplate.TemplateRenderer, data DocumentData, sanitize bool) (*view.Document, error) {
	return view.Load(renderer, ComponentsTemplate,
		view.WithData(data.context()),
		view.WithSanitize(sanitize),
	)
}

// MountDefault loads the bundled templates and mounts a page from them.
func MountDefault(fns ...Option) (*Page, error) {
	renderer, err := NewRenderer("")
	if err != nil {
		return nil, fmt.Errorf("projects: %w: %v", view.ErrSetup, err)
	}
	doc, err := LoadDocument(renderer, DocumentData{}, false)
	if err != nil {
		return nil, fmt.Errorf("projects: %w: %v", view.ErrSetup, err)
	}
	return Mount(doc, fns...)
}
