package testsupport

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/goliatone/go-formview/pkg/view"
)

// ComponentsMarkup is a minimal page carrying both component templates and
// the mount container, matching the embedded default template.
const ComponentsMarkup = `<!DOCTYPE html>
<html><head><title>Projects</title></head><body>
<template id="project-input">
  <form>
    <div class="form-control">
      <label for="title">Title</label>
      <input type="text" id="title" name="title">
    </div>
    <div class="form-control">
      <label for="description">Description</label>
      <textarea id="description" name="description" rows="3"></textarea>
    </div>
    <div class="form-control">
      <label for="people">People</label>
      <input type="number" id="people" name="people" step="1" min="0" max="10">
    </div>
    <button type="submit">ADD PROJECT</button>
  </form>
</template>
<template id="project-list">
  <section class="projects">
    <header><h2></h2></header>
    <ul></ul>
  </section>
</template>
<div id="app"></div>
</body></html>`

// MustParseDocument parses markup into a view.Document or fails the test.
func MustParseDocument(t *testing.T, markup string) *view.Document {
	t.Helper()

	doc, err := view.ParseDocument(markup)
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
