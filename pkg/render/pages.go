package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-formview/pkg/projects"
	rendertemplate "github.com/goliatone/go-formview/pkg/render/template"
)

// Renderer names registered by NewDefaultRegistry.
const (
	FormatHTML     = "html"
	FormatFragment = "fragment"
	FormatJSON     = "json"
)

// NewDefaultRegistry registers the html, fragment and json renderers. The
// html renderer lays the page out with templates.
func NewDefaultRegistry(templates rendertemplate.TemplateRenderer) *Registry {
	reg := NewRegistry()
	reg.MustRegister(&LayoutRenderer{Templates: templates})
	reg.MustRegister(FragmentRenderer{})
	reg.MustRegister(JSONRenderer{})
	return reg
}

// LayoutRenderer renders the full page document.
type LayoutRenderer struct {
	Templates rendertemplate.TemplateRenderer
}

func (r *LayoutRenderer) Name() string        { return FormatHTML }
func (r *LayoutRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (r *LayoutRenderer) Render(ctx context.Context, page *projects.Page, options Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("render: page is required")
	}
	out, err := page.RenderLayout(r.Templates, projects.LayoutData{Title: options.Title, Notice: options.Notice})
	if err != nil {
		return nil, fmt.Errorf("render: layout: %w", err)
	}
	return []byte(out), nil
}

// FragmentRenderer renders only the mounted components.
type FragmentRenderer struct{}

func (FragmentRenderer) Name() string        { return FormatFragment }
func (FragmentRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (FragmentRenderer) Render(ctx context.Context, page *projects.Page, _ Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("render: page is required")
	}
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return nil, fmt.Errorf("render: fragment: %w", err)
	}
	return buf.Bytes(), nil
}

// PageState is the JSON view of a page.
type PageState struct {
	Form   FormState           `json:"form"`
	Lists  []ListState         `json:"lists"`
	Notice string              `json:"notice,omitempty"`
	Errors map[string][]string `json:"errors,omitempty"`
}

// FormState carries the form id and the current control values.
type FormState struct {
	ID     string          `json:"id"`
	Values projects.Fields `json:"values"`
}

// ListState describes one mounted list.
type ListState struct {
	ID      string `json:"id"`
	Variant string `json:"variant"`
	Heading string `json:"heading"`
	ListID  string `json:"listId"`
}

// State captures page as a PageState.
func State(page *projects.Page, options Options) PageState {
	state := PageState{
		Form: FormState{
			ID:     page.Form().ID(),
			Values: page.Form().Values(),
		},
		Notice: options.Notice,
		Errors: options.Errors,
	}
	for _, l := range page.Lists() {
		state.Lists = append(state.Lists, ListState{
			ID:      l.ID(),
			Variant: string(l.Kind()),
			Heading: l.Heading(),
			ListID:  l.ListID(),
		})
	}
	return state
}

// JSONRenderer renders the page state as JSON.
type JSONRenderer struct{}

func (JSONRenderer) Name() string        { return FormatJSON }
func (JSONRenderer) ContentType() string { return "application/json" }

func (JSONRenderer) Render(ctx context.Context, page *projects.Page, options Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("render: page is required")
	}
	data, err := json.MarshalIndent(State(page, options), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: encode json: %w", err)
	}
	return append(data, '\n'), nil
}
