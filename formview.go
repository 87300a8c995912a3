// Package formview is the top-level entry point for the project intake form.
// It re-exports the types most callers need and offers one-call helpers that
// mount the bundled templates.
package formview

import (
	"github.com/goliatone/go-formview/pkg/projects"
	"github.com/goliatone/go-formview/pkg/validation"
	"github.com/goliatone/go-formview/pkg/view"
)

// Record is the validated output of a successful submission.
type Record = projects.Record

// Fields carries raw form control contents.
type Fields = projects.Fields

// Page is the mounted form plus its two project lists.
type Page = projects.Page

// Option configures a Page.
type Option = projects.Option

// ConstraintSet aliases validation.ConstraintSet for callers validating
// values outside the form.
type ConstraintSet = validation.ConstraintSet

// ErrSetup is wrapped by every missing template, container or element error.
var ErrSetup = view.ErrSetup

// Validate reports whether value satisfies every constraint in set.
func Validate(set ConstraintSet) bool {
	return validation.Validate(set)
}

// NewPage mounts the form and both lists from the bundled templates.
func NewPage(options ...Option) (*Page, error) {
	return projects.MountDefault(options...)
}

// GenerateHTML mounts a page from the bundled templates and renders it into
// the page layout. It is the simplest entry point for callers that just want
// HTML output.
func GenerateHTML(title string, options ...Option) ([]byte, error) {
	page, err := projects.MountDefault(options...)
	if err != nil {
		return nil, err
	}
	renderer, err := projects.NewRenderer("")
	if err != nil {
		return nil, err
	}
	out, err := page.RenderLayout(renderer, projects.LayoutData{Title: title})
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
