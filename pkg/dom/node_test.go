package dom_test

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formview/pkg/dom"
)

const fixture = `<!DOCTYPE html>
<html><body>
<template id="card">
  <section class="card"><h2></h2><ul></ul></section>
</template>
<form id="f"><input id="title" value="x"><textarea id="desc">hello</textarea></form>
<div id="app"><p id="first">one</p></div>
</body></html>`

func mustParse(t *testing.T) *html.Node {
	t.Helper()
	doc, err := dom.ParseString(fixture)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestCloneContent_IsIndependent(t *testing.T) {
	doc := mustParse(t)
	tmpl := dom.FindByID(doc, "card")
	if tmpl == nil {
		t.Fatalf("template not found")
	}
	before, err := dom.RenderString(tmpl)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	first := dom.FirstElementChild(dom.CloneContent(tmpl))
	second := dom.FirstElementChild(dom.CloneContent(tmpl))
	if first == nil || second == nil {
		t.Fatalf("expected root elements in both clones")
	}

	h2, err := dom.QuerySelector(first, "h2")
	if err != nil || h2 == nil {
		t.Fatalf("query h2: %v", err)
	}
	dom.SetText(h2, "FIRST")
	dom.SetID(first, "first-card")

	otherH2, _ := dom.QuerySelector(second, "h2")
	if got := dom.Text(otherH2); got != "" {
		t.Fatalf("second clone was mutated: %q", got)
	}
	if dom.ID(second) != "" {
		t.Fatalf("second clone id was mutated: %q", dom.ID(second))
	}

	after, _ := dom.RenderString(tmpl)
	if before != after {
		t.Fatalf("template mutated\nbefore: %s\n after: %s", before, after)
	}
}

func TestClone_CopiesAttributes(t *testing.T) {
	doc := mustParse(t)
	input := dom.FindByID(doc, "title")
	copyNode := dom.Clone(input)
	dom.SetAttr(copyNode, "value", "changed")

	if got := dom.Attr(input, "value"); got != "x" {
		t.Fatalf("original attribute changed: %q", got)
	}
	if copyNode.Parent != nil {
		t.Fatalf("clone must be detached")
	}
}

func TestQuerySelector(t *testing.T) {
	doc := mustParse(t)
	form := dom.FindByID(doc, "f")

	found, err := dom.QuerySelector(form, "#desc")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if dom.ID(found) != "desc" {
		t.Fatalf("expected #desc, got %v", found)
	}

	missing, err := dom.QuerySelector(form, "select")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing element")
	}

	self, _ := dom.QuerySelector(form, "form")
	if self != nil {
		t.Fatalf("root must not match itself")
	}

	if _, err := dom.QuerySelector(form, "[["); err == nil {
		t.Fatalf("expected selector error")
	}

	all, err := dom.QuerySelectorAll(form, "input, textarea")
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 controls, got %d", len(all))
	}
}

func TestValueAndSetValue(t *testing.T) {
	doc := mustParse(t)
	input := dom.FindByID(doc, "title")
	area := dom.FindByID(doc, "desc")

	if got := dom.Value(input); got != "x" {
		t.Fatalf("input value = %q", got)
	}
	if got := dom.Value(area); got != "hello" {
		t.Fatalf("textarea value = %q", got)
	}

	dom.SetValue(input, "")
	dom.SetValue(area, "")
	if dom.Value(input) != "" || dom.Value(area) != "" {
		t.Fatalf("expected cleared values")
	}
	if !dom.HasAttr(input, "value") {
		t.Fatalf("cleared input keeps an explicit value attribute")
	}
	if area.FirstChild != nil {
		t.Fatalf("cleared textarea must have no children")
	}
}

func TestInsertAdjacent(t *testing.T) {
	doc := mustParse(t)
	app := dom.FindByID(doc, "app")

	head := &html.Node{Type: html.ElementNode, Data: "header"}
	tail := &html.Node{Type: html.ElementNode, Data: "footer"}

	if err := dom.InsertAdjacent(app, dom.AfterBegin, head); err != nil {
		t.Fatalf("insert afterbegin: %v", err)
	}
	if err := dom.InsertAdjacent(app, dom.BeforeEnd, tail); err != nil {
		t.Fatalf("insert beforeend: %v", err)
	}
	if app.FirstChild != head || app.LastChild != tail {
		t.Fatalf("unexpected child order")
	}
	if err := dom.InsertAdjacent(app, dom.Position("middle"), &html.Node{Type: html.ElementNode, Data: "x"}); err == nil {
		t.Fatalf("expected error for unknown position")
	}

	var b strings.Builder
	if err := dom.RenderChildren(&b, app); err != nil {
		t.Fatalf("render children: %v", err)
	}
	if got, want := b.String(), `<header></header><p id="first">one</p><footer></footer>`; got != want {
		t.Fatalf("render mismatch\nwant: %s\n got: %s", want, got)
	}
}
